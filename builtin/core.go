/*
File    : go-scheme/builtin/core.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"fmt"
	"os"

	"github.com/akashmaji946/go-scheme/callable"
	"github.com/akashmaji946/go-scheme/environment"
	"github.com/akashmaji946/go-scheme/expr"
	"github.com/akashmaji946/go-scheme/printer"
	"github.com/akashmaji946/go-scheme/schemeerr"
)

func init() {
	register("apply", applyExec)
	register("display", displayExec)
	register("eval", evalExec)
	register("exit", exitExec)
	register("cons", consExec)
	register("car", carExec)
	register("cdr", cdrExec)
	register("force", forceExec)
}

// listItems reports whether e is a proper list (an *expr.Combination) and
// returns its items.
func listItems(e expr.Expr) ([]expr.Expr, bool) {
	c, ok := e.(*expr.Combination)
	if !ok {
		return nil, false
	}
	return c.Items, true
}

func applyExec(args []expr.Expr, env *environment.Environment, eval callable.EvalFunc, apply callable.ApplyFunc) (expr.Expr, error) {
	if len(args) != 2 {
		return nil, schemeerr.NewValueError("apply: expected a procedure and an argument list")
	}
	items, ok := listItems(args[1])
	if !ok {
		return nil, schemeerr.NewValueError("apply: second argument must be a list")
	}
	return apply(args[0], items, env)
}

func displayExec(args []expr.Expr, env *environment.Environment, eval callable.EvalFunc, apply callable.ApplyFunc) (expr.Expr, error) {
	if len(args) != 1 {
		return nil, schemeerr.NewValueError("display: expected exactly one argument")
	}
	fmt.Fprint(os.Stdout, printer.Display(args[0]))
	return expr.Undefined, nil
}

func evalExec(args []expr.Expr, env *environment.Environment, eval callable.EvalFunc, apply callable.ApplyFunc) (expr.Expr, error) {
	if len(args) != 1 {
		return nil, schemeerr.NewValueError("eval: expected exactly one argument")
	}
	return eval(args[0], env)
}

func exitExec(args []expr.Expr, env *environment.Environment, eval callable.EvalFunc, apply callable.ApplyFunc) (expr.Expr, error) {
	code := 0
	if len(args) == 1 {
		if i, ok := args[0].(*expr.IntegerLiteral); ok {
			code = int(i.Value.Int64())
		}
	}
	os.Exit(code)
	return expr.Undefined, nil
}

func consExec(args []expr.Expr, env *environment.Environment, eval callable.EvalFunc, apply callable.ApplyFunc) (expr.Expr, error) {
	if len(args) != 2 {
		return nil, schemeerr.NewValueError("cons: expected exactly two arguments")
	}
	tailItems, ok := listItems(args[1])
	if !ok {
		return nil, schemeerr.NewValueError("cons: second argument must be a list")
	}
	items := make([]expr.Expr, 0, len(tailItems)+1)
	items = append(items, args[0])
	items = append(items, tailItems...)
	return &expr.Combination{Items: items}, nil
}

func carExec(args []expr.Expr, env *environment.Environment, eval callable.EvalFunc, apply callable.ApplyFunc) (expr.Expr, error) {
	if len(args) != 1 {
		return nil, schemeerr.NewValueError("car: expected exactly one argument")
	}
	items, ok := listItems(args[0])
	if !ok || len(items) == 0 {
		return nil, schemeerr.NewValueError("car: expected a non-empty list")
	}
	return items[0], nil
}

func cdrExec(args []expr.Expr, env *environment.Environment, eval callable.EvalFunc, apply callable.ApplyFunc) (expr.Expr, error) {
	if len(args) != 1 {
		return nil, schemeerr.NewValueError("cdr: expected exactly one argument")
	}
	items, ok := listItems(args[0])
	if !ok || len(items) == 0 {
		return nil, schemeerr.NewValueError("cdr: expected a non-empty list")
	}
	return &expr.Combination{Items: items[1:]}, nil
}

func forceExec(args []expr.Expr, env *environment.Environment, eval callable.EvalFunc, apply callable.ApplyFunc) (expr.Expr, error) {
	if len(args) != 1 {
		return nil, schemeerr.NewValueError("force: expected exactly one argument")
	}
	p, ok := args[0].(*callable.Promise)
	if !ok {
		return args[0], nil
	}
	return p.Force(eval)
}
