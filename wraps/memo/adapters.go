package memo

import (
	"github.com/on-the-ground/wrap_ive_go/shared/helper"
	"github.com/on-the-ground/wrap_ive_go/wraps"
)

// The Func family memoizes pure typed functions directly, returning the
// same-shaped function plus the Cache behind it. Recursive targets work by
// assigning to a predeclared variable:
//
//	var fib func(int) int
//	fib, _ = memo.Func1("fib", func(n int) int {
//		if n <= 1 {
//			return 1
//		}
//		return fib(n-1) + fib(n-2)
//	})

func Func1[I1, O any](name string, fn func(I1) O, opts ...Option) (func(I1) O, *Cache) {
	wrapped, cache := Wrap(wraps.Lift1(name, "", fn), opts...)
	return func(i1 I1) O {
		return helper.MustGetTypedValue[O](func() (any, error) {
			return wrapped.Invoke(i1)
		})
	}, cache
}

func Func2[I1, I2, O any](name string, fn func(I1, I2) O, opts ...Option) (func(I1, I2) O, *Cache) {
	wrapped, cache := Wrap(wraps.Lift2(name, "", fn), opts...)
	return func(i1 I1, i2 I2) O {
		return helper.MustGetTypedValue[O](func() (any, error) {
			return wrapped.Invoke(i1, i2)
		})
	}, cache
}

func Func3[I1, I2, I3, O any](name string, fn func(I1, I2, I3) O, opts ...Option) (func(I1, I2, I3) O, *Cache) {
	wrapped, cache := Wrap(wraps.Lift3(name, "", fn), opts...)
	return func(i1 I1, i2 I2, i3 I3) O {
		return helper.MustGetTypedValue[O](func() (any, error) {
			return wrapped.Invoke(i1, i2, i3)
		})
	}, cache
}

func Func4[I1, I2, I3, I4, O any](name string, fn func(I1, I2, I3, I4) O, opts ...Option) (func(I1, I2, I3, I4) O, *Cache) {
	wrapped, cache := Wrap(wraps.Lift4(name, "", fn), opts...)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O {
		return helper.MustGetTypedValue[O](func() (any, error) {
			return wrapped.Invoke(i1, i2, i3, i4)
		})
	}, cache
}

type pair[O1, O2 any] struct {
	fst O1
	snd O2
}

func Func1x2[I1, O1, O2 any](name string, fn func(I1) (O1, O2), opts ...Option) (func(I1) (O1, O2), *Cache) {
	lifted := wraps.Lift1(name, "", func(i1 I1) pair[O1, O2] {
		o1, o2 := fn(i1)
		return pair[O1, O2]{fst: o1, snd: o2}
	})
	wrapped, cache := Wrap(lifted, opts...)
	return func(i1 I1) (O1, O2) {
		p := helper.MustGetTypedValue[pair[O1, O2]](func() (any, error) {
			return wrapped.Invoke(i1)
		})
		return p.fst, p.snd
	}, cache
}

func Func2x2[I1, I2, O1, O2 any](name string, fn func(I1, I2) (O1, O2), opts ...Option) (func(I1, I2) (O1, O2), *Cache) {
	lifted := wraps.Lift2(name, "", func(i1 I1, i2 I2) pair[O1, O2] {
		o1, o2 := fn(i1, i2)
		return pair[O1, O2]{fst: o1, snd: o2}
	})
	wrapped, cache := Wrap(lifted, opts...)
	return func(i1 I1, i2 I2) (O1, O2) {
		p := helper.MustGetTypedValue[pair[O1, O2]](func() (any, error) {
			return wrapped.Invoke(i1, i2)
		})
		return p.fst, p.snd
	}, cache
}
