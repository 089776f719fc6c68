/*
File    : go-scheme/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the chained name -> value bindings every
// Scheme evaluation runs against (spec.md §4.D). An Environment is a pair of
// (bindings, parent): lookup walks the parent chain on miss, bind always
// writes the local frame only, and Set (which package eval calls to evaluate
// set!) walks the chain to find the frame that already owns a name.
package environment

import (
	"github.com/akashmaji946/go-scheme/expr"
	"github.com/akashmaji946/go-scheme/schemeerr"
)

// Environment is a single lexical frame plus a link to its parent. The
// global environment is the one frame with a nil parent.
type Environment struct {
	bindings map[string]expr.Expr
	parent   *Environment
}

// NewGlobal creates the single distinguished global environment.
func NewGlobal() *Environment {
	return &Environment{bindings: make(map[string]expr.Expr)}
}

// NewChild creates a fresh environment whose parent is env. Every
// environment gets its own freshly allocated bindings map — sharing a
// default-argument map across instances (the bug spec.md §9 warns about)
// would alias every environment built this way.
func NewChild(parent *Environment) *Environment {
	return &Environment{bindings: make(map[string]expr.Expr), parent: parent}
}

// Extend creates a child environment with the given initial formal/actual
// bindings. Used on every procedure call (spec.md §4.D).
func Extend(parent *Environment, formals []*expr.Name, values []expr.Expr) *Environment {
	child := NewChild(parent)
	for i, formal := range formals {
		child.bindings[formal.Symbol] = values[i]
	}
	return child
}

// Bind stores value under name's normalized string in env's own frame,
// never the parent's. Binding the same name again replaces it.
func (env *Environment) Bind(name *expr.Name, value expr.Expr) {
	env.bindings[name.Symbol] = value
}

// Lookup returns the value bound to name in env or the nearest enclosing
// frame that binds it. A miss all the way to the global frame is a
// NameError.
func (env *Environment) Lookup(name *expr.Name) (expr.Expr, error) {
	for frame := env; frame != nil; frame = frame.parent {
		if v, ok := frame.bindings[name.Symbol]; ok {
			return v, nil
		}
	}
	return nil, schemeerr.NewNameError("Unbound name: %s", name.Symbol)
}

// Set walks the chain to find the nearest frame that already binds name and
// replaces its value there. Unlike Bind, it never creates a new binding —
// a miss all the way to the global frame is a NameError.
func (env *Environment) Set(name *expr.Name, value expr.Expr) error {
	for frame := env; frame != nil; frame = frame.parent {
		if _, ok := frame.bindings[name.Symbol]; ok {
			frame.bindings[name.Symbol] = value
			return nil
		}
	}
	return schemeerr.NewNameError("Unbound name: %s", name.Symbol)
}

// Parent returns env's enclosing environment, or nil for the global frame.
func (env *Environment) Parent() *Environment {
	return env.parent
}
