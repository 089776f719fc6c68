/*
File    : go-scheme/loader/loader.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package loader implements the `load` builtin's collaborator: reading a
// `.scm` source file, parsing it in full, and running each top-level
// expression against a caller-supplied environment in order.
package loader

import (
	"os"

	"github.com/akashmaji946/go-scheme/callable"
	"github.com/akashmaji946/go-scheme/environment"
	"github.com/akashmaji946/go-scheme/expr"
	"github.com/akashmaji946/go-scheme/parser"
	"github.com/akashmaji946/go-scheme/schemeerr"
)

// Load reads "<path>.scm" relative to the process working directory, parses
// it in full, and evaluates every top-level expression it contains against
// env in order. It returns expr.Undefined on success. A missing or unreadable
// file surfaces as a schemeerr.IOError; a malformed program surfaces as
// whatever error its parsing or evaluation raised, unchanged.
func Load(path string, env *environment.Environment, eval callable.EvalFunc) (expr.Expr, error) {
	source, err := os.ReadFile(path + ".scm")
	if err != nil {
		return nil, schemeerr.NewIOError("could not load %q: %s", path, err)
	}

	forms, err := parser.Parse(string(source))
	if err != nil {
		return nil, err
	}

	for _, form := range forms {
		if _, err := eval(form, env); err != nil {
			return nil, err
		}
	}
	return expr.Undefined, nil
}
