/*
File    : go-scheme/builtin/registry.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package builtin holds the concrete registry of host-implemented
// procedures required by spec.md §4.F: + - * / = < apply display eval exit
// cons car cdr load, plus force (SPEC_FULL.md §12, needed to observe a
// cons-stream/delay promise). Each file in this package registers its
// builtins into the package-level Builtins slice from an init() function,
// the same append-at-init shape as the teacher's std.Builtins registry.
package builtin

import (
	"github.com/akashmaji946/go-scheme/callable"
	"github.com/akashmaji946/go-scheme/environment"
	"github.com/akashmaji946/go-scheme/expr"
)

// Builtins is the global list of registered builtin procedures. Every file
// in this package appends to it from its own init().
var Builtins []*callable.Builtin

// register is the small helper every builtin-defining file in this package
// calls from init(), mirroring the teacher's lisp_builtin-style registration
// decorator (original_source/src/builtin.py's @lisp_builtin).
func register(name string, fn callable.BuiltinFn) {
	Builtins = append(Builtins, &callable.Builtin{Name: name, Fn: fn})
}

// Bind binds every registered builtin into env under its default name.
func Bind(env *environment.Environment) {
	for _, b := range Builtins {
		env.Bind(expr.NewName(b.Name), b)
	}
}
