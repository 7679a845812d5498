package wraps

import (
	"fmt"
	"strings"
)

// Arg is one positional argument or result value flowing through a layer.
type Arg = any

// Kwargs is the explicit named-options structure standing in for keyword
// arguments. Only the generic invoke path and the memoizer key consume it;
// the nary and trace layers are positional-only.
type Kwargs map[string]Arg

// Call is the variadic entry point every layer shares.
type Call func(args []Arg, kw Kwargs) (Arg, error)

// ArityVariadic marks a target whose positional parameter count is not
// fixed. Such targets cannot be spread by the nary layer.
const ArityVariadic = -1

// ErrArity indicates a call with an argument count the target cannot accept.
var ErrArity = fmt.Errorf("argument count mismatch")

// Func is a callable unit: the identity of the innermost target plus the
// entry point of the outermost layer wrapped around it. The zero Func is
// not callable; construct with New, NewVariadic, Preserve, or a Lift.
type Func struct {
	Name  string
	Doc   string
	Arity int
	call  Call
}

// New builds a Func from an explicit call with a declared positional arity.
// The arity is fixed here once; layers never recompute it per call.
func New(name, doc string, arity int, call Call) Func {
	if call == nil {
		panic("wraps.New: nil call")
	}
	return Func{Name: name, Doc: doc, Arity: arity, call: call}
}

// NewVariadic builds a Func whose positional parameter count is open.
func NewVariadic(name, doc string, call Call) Func {
	return New(name, doc, ArityVariadic, call)
}

// Invoke calls the outermost layer with positional arguments only.
func (f Func) Invoke(args ...Arg) (Arg, error) {
	return f.call(args, nil)
}

// InvokeKw calls the outermost layer with positional arguments and an
// explicit named-options map.
func (f Func) InvokeKw(kw Kwargs, args ...Arg) (Arg, error) {
	return f.call(args, kw)
}

// Preserve builds the next layer outward: the wrapper's call under the
// target's identity, so that stacking any number of layers still reports
// the innermost function's name and documentation to callers inspecting
// the outermost one. No side effects beyond the metadata carry.
func Preserve(call Call, target Func) Func {
	if call == nil {
		panic("wraps.Preserve: nil call")
	}
	return Func{Name: target.Name, Doc: target.Doc, Arity: target.Arity, call: call}
}

// Wrapper is a single composable layer.
type Wrapper func(Func) Func

// Disable is the no-op layer. Assign it in place of any Wrapper to strip
// that behavior without touching call sites:
//
//	memoize := wraps.Disable
func Disable(f Func) Func { return f }

// Compose applies layers left to right: Compose(f, A, B) == B(A(f)), so the
// last wrapper given is the outermost at call time. Ordering is observable
// contract — an outer counter counts cache hits, an inner one does not.
func Compose(f Func, ws ...Wrapper) Func {
	for _, w := range ws {
		f = w(f)
	}
	return f
}

// FormatArgs renders positional arguments as a comma-joined list of their
// string forms. Trace lines rely on this exact rendering.
func FormatArgs(args []Arg) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprintf("%v", a)
	}
	return strings.Join(parts, ", ")
}
