package wraps

import "fmt"

// The Lift family adapts pure typed functions onto the variadic call core,
// recording the declared arity from the static signature. Misuse of the
// lifted Func (wrong argument count) fails fast with ErrArity; argument
// types are asserted, so passing a value of the wrong type panics the same
// way calling the typed function would fail to compile.

func Lift1[I1, O any](name, doc string, fn func(I1) O) Func {
	return New(name, doc, 1, func(args []Arg, _ Kwargs) (Arg, error) {
		if len(args) != 1 {
			return nil, arityErr(name, 1, len(args))
		}
		return fn(args[0].(I1)), nil
	})
}

func Lift2[I1, I2, O any](name, doc string, fn func(I1, I2) O) Func {
	return New(name, doc, 2, func(args []Arg, _ Kwargs) (Arg, error) {
		if len(args) != 2 {
			return nil, arityErr(name, 2, len(args))
		}
		return fn(args[0].(I1), args[1].(I2)), nil
	})
}

func Lift3[I1, I2, I3, O any](name, doc string, fn func(I1, I2, I3) O) Func {
	return New(name, doc, 3, func(args []Arg, _ Kwargs) (Arg, error) {
		if len(args) != 3 {
			return nil, arityErr(name, 3, len(args))
		}
		return fn(args[0].(I1), args[1].(I2), args[2].(I3)), nil
	})
}

func Lift4[I1, I2, I3, I4, O any](name, doc string, fn func(I1, I2, I3, I4) O) Func {
	return New(name, doc, 4, func(args []Arg, _ Kwargs) (Arg, error) {
		if len(args) != 4 {
			return nil, arityErr(name, 4, len(args))
		}
		return fn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4)), nil
	})
}

func arityErr(name string, want, got int) error {
	return fmt.Errorf("%w: %s expects %d positional arguments, got %d", ErrArity, name, want, got)
}
