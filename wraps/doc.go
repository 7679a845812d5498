// Package wraps provides a minimal, composable function-instrumentation model for Go.
//
// A wrapper is not just a convenience for adding behavior around a call.
// A wrapper is a tool that *forces the developer to ask*:
//
//	→ "Which concerns belong to this function, and which merely surround it?"
//	→ "What must stay observable when layers are stacked?"
//
// That question is not about decoration—it's about identity and contract.
//
// # The call unit
//
// Every layer shares one shape: a Func, carrying the identity of the
// innermost target (name, documentation, declared arity) and a variadic
// entry point. Wrappers are Func → Func transforms; stacking wrapper A then
// wrapper B over F yields B(A(F)), and at call time control flows
// outward-in through each layer before reaching F.
//
// Identity preservation is structural, not reflective: each layer is built
// with Preserve, which carries the target's name and documentation outward,
// so inspecting the outermost layer still reports the innermost function.
//
// # What this package exports
//
//   - Func, Call, Arg, Kwargs: the wrapped-callable model.
//   - New, NewVariadic, Lift1..Lift4: constructors and typed, generic
//     per-arity adapters over the variadic core.
//   - Preserve: identity propagation used by every wrapper package.
//   - Wrapper, Compose, Disable: layer composition and the no-op layer
//     that strips a behavior without touching call sites.
//
// The concrete cross-cutting layers live in the subpackages memo, count,
// nary, trace, and timing, with yaml-driven layering in profile.
//
// # Concurrency
//
// The call model is single-threaded and synchronous. Layer state (caches,
// counters, trace depth, recorded spans) is mutated in place without locks;
// invoking one wrapped Func from multiple goroutines is unsupported by
// contract, not guarded at runtime.
//
// WARNING: errors returned by a wrapped function pass through every layer
// unmodified. No layer catches, retries, or suppresses.
package wraps
