package autosheet

import "strings"

// FuncContext is the evaluator context handed to every function
// implementation: the calling convention is always
// (evaluated arguments, context).
type FuncContext struct {
	Engine *Engine
	Sheet  string
}

// Function is the uniform contract every built-in and user-registered
// function implements. Implementations must be total on well-typed
// inputs; partial failure is signaled by returning a *EvalError, never by
// panicking (callSafely still guards against a panic escaping, but
// well-behaved implementations shouldn't rely on that).
type Function func(args []Value, ctx *FuncContext) Value

// registry is a case-insensitive name -> implementation map, with a
// parallel map preserving original-case names for enumeration. It carries
// no ID-interning or reference-counting lifecycle — just register and
// possibly replace.
type registry struct {
	impls        map[string]Function
	originalCase map[string]string
}

func newRegistry() *registry {
	return &registry{
		impls:        make(map[string]Function),
		originalCase: make(map[string]string),
	}
}

// register stores impl under name's upper-case key, replacing any prior
// implementation and original-case name under that key.
func (r *registry) register(name string, impl Function) {
	key := strings.ToUpper(name)
	r.impls[key] = impl
	r.originalCase[key] = name
}

func (r *registry) get(name string) (Function, bool) {
	impl, ok := r.impls[strings.ToUpper(name)]
	return impl, ok
}

func (r *registry) has(name string) bool {
	_, ok := r.impls[strings.ToUpper(name)]
	return ok
}

// names returns the original-case names of every registered function, in
// no particular order.
func (r *registry) names() []string {
	result := make([]string, 0, len(r.originalCase))
	for _, name := range r.originalCase {
		result = append(result, name)
	}
	return result
}
