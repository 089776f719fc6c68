/*
File    : go-scheme/builtin/load.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"github.com/akashmaji946/go-scheme/callable"
	"github.com/akashmaji946/go-scheme/environment"
	"github.com/akashmaji946/go-scheme/expr"
	"github.com/akashmaji946/go-scheme/loader"
	"github.com/akashmaji946/go-scheme/schemeerr"
)

func init() {
	register("load", loadExec)
}

func loadExec(args []expr.Expr, env *environment.Environment, eval callable.EvalFunc, apply callable.ApplyFunc) (expr.Expr, error) {
	if len(args) != 1 {
		return nil, schemeerr.NewValueError("load: expected exactly one argument")
	}
	path, ok := args[0].(*expr.StringLiteral)
	if !ok {
		return nil, schemeerr.NewValueError("load: expected a string path")
	}
	return loader.Load(path.Value, env, eval)
}
