// Package memo memoizes a wrapped function so that it caches all return
// values for faster future lookups.
//
// Each Wrap owns exactly one Cache, so two wrapped functions never share or
// collide on cached results, whatever their names. Records key on the exact
// call arguments by value equality: positional order matters, and the
// named-options map matches on key set and values. An xxhash digest of the
// argument tuple narrows the scan; equality itself never relies on the
// digest.
//
// The cache has no eviction and no size bound. Results for value-equal but
// mutable arguments are a documented hazard, not a bug: two calls whose
// arguments are equal at call time share one record even if the values are
// mutated later.
//
// WARNING: do not memoize impure functions (e.g. those depending on time
// or I/O).
package memo
