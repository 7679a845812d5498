package memo

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/on-the-ground/wrap_ive_go/wraps"
)

// record is one completed invocation: the exact arguments the call was made
// with and the result it produced. Immutable once appended.
type record struct {
	digest uint64
	args   []wraps.Arg
	kw     wraps.Kwargs
	result wraps.Arg
}

// Cache owns the memoized results of exactly one wrapped Func. Records keep
// insertion order and are never pruned. Lookup scans for the first record
// whose arguments match the call's by value equality, narrowed to a digest
// bucket first. Invariant: no two records share value-equal arguments,
// because insertion only happens on a miss.
type Cache struct {
	id      string
	name    string
	logger  *zap.Logger
	records []record
	index   map[uint64][]int
	hits    uint64
	misses  uint64
}

type memoOptions struct {
	logger *zap.Logger
}

type Option func(*memoOptions)

// WithLogger routes hit/miss diagnostics to the given logger instead of a nop.
func WithLogger(logger *zap.Logger) Option {
	return func(o *memoOptions) { o.logger = logger }
}

// Wrap memoizes target. On each call the owned Cache is consulted first; a
// hit returns the stored result without re-invoking target, a miss invokes
// target, stores the new record, and returns the result. Errors from target
// propagate unmodified and are never cached.
//
// The returned Func reports target's name and documentation; the returned
// Cache is the inspection surface for the wrapper instance.
func Wrap(target wraps.Func, opts ...Option) (wraps.Func, *Cache) {
	o := memoOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	cache := &Cache{
		id:     uuid.New().String(),
		name:   target.Name,
		logger: o.logger,
		index:  make(map[uint64][]int),
	}
	cache.logger.Debug("created memo cache",
		zap.String("cacheId", cache.id),
		zap.String("function", cache.name),
	)

	wrapped := wraps.Preserve(func(args []wraps.Arg, kw wraps.Kwargs) (wraps.Arg, error) {
		digest := digestOf(args, kw)
		if result, ok := cache.lookup(digest, args, kw); ok {
			cache.hits++
			cache.logger.Debug("memo hit",
				zap.String("cacheId", cache.id),
				zap.String("function", cache.name),
				zap.String("args", wraps.FormatArgs(args)),
			)
			return result, nil
		}

		cache.misses++
		cache.logger.Debug("memo miss",
			zap.String("cacheId", cache.id),
			zap.String("function", cache.name),
			zap.String("args", wraps.FormatArgs(args)),
		)
		result, err := target.InvokeKw(kw, args...)
		if err != nil {
			return nil, err
		}
		cache.insert(digest, args, kw, result)
		return result, nil
	}, target)

	return wrapped, cache
}

// Disabled matches Wrap's shape while stripping the behavior: assign it in
// place of Wrap to turn memoization off without touching call sites. The
// returned Cache stays empty.
func Disabled(target wraps.Func, opts ...Option) (wraps.Func, *Cache) {
	return target, &Cache{
		id:     uuid.New().String(),
		name:   target.Name,
		logger: zap.NewNop(),
		index:  make(map[uint64][]int),
	}
}

// lookup returns the stored result of the first record whose arguments
// equal the call's by value. The digest bucket is tried first; on a bucket
// miss the whole record list is scanned in insertion order, because
// pointer-bearing arguments render by address and so value-equal calls can
// carry different digests. Equality alone decides; the digest only
// accelerates. A hit found by the full scan is indexed under the call's
// digest so the next identical call stays on the fast path.
func (c *Cache) lookup(digest uint64, args []wraps.Arg, kw wraps.Kwargs) (wraps.Arg, bool) {
	for _, i := range c.index[digest] {
		rec := c.records[i]
		if argsEqual(rec.args, args) && kwargsEqual(rec.kw, kw) {
			return rec.result, true
		}
	}
	for i, rec := range c.records {
		if argsEqual(rec.args, args) && kwargsEqual(rec.kw, kw) {
			c.index[digest] = append(c.index[digest], i)
			return rec.result, true
		}
	}
	return nil, false
}

func (c *Cache) insert(digest uint64, args []wraps.Arg, kw wraps.Kwargs, result wraps.Arg) {
	rec := record{
		digest: digest,
		args:   append([]wraps.Arg(nil), args...),
		kw:     cloneKwargs(kw),
		result: result,
	}
	c.records = append(c.records, rec)
	c.index[digest] = append(c.index[digest], len(c.records)-1)
}

// Len returns the number of cached records.
func (c *Cache) Len() int { return len(c.records) }

// Hits returns how many calls were served from the cache.
func (c *Cache) Hits() uint64 { return c.hits }

// Misses returns how many calls reached the wrapped function.
func (c *Cache) Misses() uint64 { return c.misses }

// ID returns the wrapper instance id.
func (c *Cache) ID() string { return c.id }

// digestOf hashes the rendered argument tuple. Identically-rendered calls
// land in one bucket, which covers value arguments; pointers render by
// address, so lookup never trusts the digest beyond the fast path.
func digestOf(args []wraps.Arg, kw wraps.Kwargs) uint64 {
	var b strings.Builder
	for _, a := range args {
		fmt.Fprintf(&b, "%T=%v;", a, a)
	}
	if len(kw) > 0 {
		fmt.Fprintf(&b, "|%v", kw)
	}
	return xxhash.Sum64String(b.String())
}

// argsEqual is order-sensitive value equality over positional arguments.
func argsEqual(a, b []wraps.Arg) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// kwargsEqual matches on key set and values; a nil map equals an empty one.
func kwargsEqual(a, b wraps.Kwargs) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return reflect.DeepEqual(a, b)
}

func cloneKwargs(kw wraps.Kwargs) wraps.Kwargs {
	if len(kw) == 0 {
		return nil
	}
	cloned := make(wraps.Kwargs, len(kw))
	for k, v := range kw {
		cloned[k] = v
	}
	return cloned
}
