/*
File    : go-scheme/eval/eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator (spec.md §4.E): the
// single Eval dispatch, Call semantics for Lambda/Mu/Builtin/Macro, and the
// ~15 special forms. It is the one package that knows how to reclassify a
// raw Combination into one of expr's special-form variants and how to
// execute each of them; expr itself stays inert, and builtin's host
// procedures call back into this package only through the EvalFunc/ApplyFunc
// callbacks threaded through every Builtin invocation.
package eval

import (
	"github.com/akashmaji946/go-scheme/builtin"
	"github.com/akashmaji946/go-scheme/callable"
	"github.com/akashmaji946/go-scheme/environment"
	"github.com/akashmaji946/go-scheme/expr"
	"github.com/akashmaji946/go-scheme/schemeerr"
)

// NewGlobalEnvironment builds the single distinguished global environment
// with every registered builtin already bound.
func NewGlobalEnvironment() *environment.Environment {
	env := environment.NewGlobal()
	builtin.Bind(env)
	return env
}

// Eval is the evaluator's single entry point (spec.md §4.E): Name looks
// itself up, Combination is reclassified into a special form or a Call, and
// everything else — literals, Undefined, and already-evaluated callables —
// is self-evaluating.
func Eval(e expr.Expr, env *environment.Environment) (expr.Expr, error) {
	switch v := e.(type) {
	case *expr.Name:
		return env.Lookup(v)
	case *expr.Combination:
		return evalCombination(v, env)
	case *expr.Call:
		return evalCall(v, env)
	default:
		return e, nil
	}
}

// Apply synthesizes a Call with proc as operator and args as operands and
// evaluates it, matching the reference apply builtin's behavior exactly
// (original_source/src/builtin.py's __apply_exec): it does not bypass the
// normal Call dispatch, so each element of args is evaluated again as an
// operand of the synthetic call.
func Apply(proc expr.Expr, args []expr.Expr, env *environment.Environment) (expr.Expr, error) {
	items := make([]expr.Expr, 0, len(args)+1)
	items = append(items, proc)
	items = append(items, args...)
	return evalCall(expr.NewCall(items), env)
}

// evalCombination reclassifies a raw Combination by inspecting its head: a
// Name matching one of expr.Keywords becomes the corresponding special
// form, everything else is a Call.
func evalCombination(c *expr.Combination, env *environment.Environment) (expr.Expr, error) {
	name := c.HeadName()
	if name == nil || !expr.Keywords[name.Symbol] {
		return evalCall(expr.NewCall(c.Items), env)
	}

	switch name.Symbol {
	case "define":
		d, err := expr.NewDefineExpr(c.Items)
		if err != nil {
			return nil, err
		}
		return evalDefine(d, env)
	case "if":
		i, err := expr.NewIfExpr(c.Items)
		if err != nil {
			return nil, err
		}
		return evalIf(i, env)
	case "and":
		return evalAnd(expr.NewAndExpr(c.Items), env)
	case "or":
		return evalOr(expr.NewOrExpr(c.Items), env)
	case "let":
		l, err := expr.NewLetExpr(c.Items)
		if err != nil {
			return nil, err
		}
		return evalLet(l, env)
	case "begin":
		return evalBegin(expr.NewBeginExpr(c.Items), env)
	case "lambda":
		formals, body, err := expr.FormalsAndBody(c.Items)
		if err != nil {
			return nil, err
		}
		return &callable.Lambda{Formals: formals, Body: body, Closure: env}, nil
	case "mu":
		formals, body, err := expr.FormalsAndBody(c.Items)
		if err != nil {
			return nil, err
		}
		return &callable.Mu{Formals: formals, Body: body}, nil
	case "quote":
		q, err := expr.NewQuoteExpr(c.Items)
		if err != nil {
			return nil, err
		}
		return q.Datum(), nil
	case "cons-stream":
		cs, err := expr.NewConsStreamExpr(c.Items)
		if err != nil {
			return nil, err
		}
		return evalConsStream(cs, env)
	case "set!":
		s, err := expr.NewSetExpr(c.Items)
		if err != nil {
			return nil, err
		}
		return evalSet(s, env)
	case "quasiquote":
		qq, err := expr.NewQuasiQuoteExpr(c.Items)
		if err != nil {
			return nil, err
		}
		return partialUnquote(qq.Template(), env)
	case "unquote":
		return nil, schemeerr.NewSyntaxError("unquote: not valid outside quasiquote")
	case "unquote-splicing":
		return nil, schemeerr.NewSyntaxError("unquote-splicing: not valid outside quasiquote")
	case "define-macro":
		dm, err := expr.NewDefineMacroExpr(c.Items)
		if err != nil {
			return nil, err
		}
		return evalDefineMacro(dm, env)
	case "delay":
		dl, err := expr.NewDelayExpr(c.Items)
		if err != nil {
			return nil, err
		}
		return callable.NewPromise(dl.Operand(), env), nil
	}

	// Unreachable: every key in expr.Keywords is handled above.
	return evalCall(expr.NewCall(c.Items), env)
}

// evalEach evaluates every operand in env, left to right, stopping at the
// first error.
func evalEach(operands []expr.Expr, env *environment.Environment) ([]expr.Expr, error) {
	results := make([]expr.Expr, len(operands))
	for i, o := range operands {
		v, err := Eval(o, env)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// formalNames converts a formals Combination into the *expr.Name slice
// environment.Extend needs, failing if any formal is not a plain name.
func formalNames(formals *expr.Combination) ([]*expr.Name, error) {
	names := make([]*expr.Name, len(formals.Items))
	for i, item := range formals.Items {
		n, ok := item.(*expr.Name)
		if !ok {
			return nil, schemeerr.NewSyntaxError("bad formal parameter list")
		}
		names[i] = n
	}
	return names, nil
}

// evalCall evaluates the operator, then dispatches per spec.md §4.E's Call
// semantics: Lambda closes lexically over its captured environment, Mu
// closes dynamically over the caller's, Builtin invokes the host callable,
// and Macro evaluates its body against raw (unevaluated) operands to expand
// into a new expression, which is then evaluated in the caller's env.
func evalCall(c *expr.Call, env *environment.Environment) (expr.Expr, error) {
	operator, err := Eval(c.Operator(), env)
	if err != nil {
		return nil, err
	}

	switch op := operator.(type) {
	case *callable.Lambda:
		args, err := evalEach(c.Operands(), env)
		if err != nil {
			return nil, err
		}
		formals, err := formalNames(op.Formals)
		if err != nil {
			return nil, err
		}
		if len(formals) != len(args) {
			return nil, schemeerr.NewValueError("mismatching arguments for lambda")
		}
		child := environment.Extend(op.Closure, formals, args)
		return Eval(op.Body, child)

	case *callable.Mu:
		args, err := evalEach(c.Operands(), env)
		if err != nil {
			return nil, err
		}
		formals, err := formalNames(op.Formals)
		if err != nil {
			return nil, err
		}
		if len(formals) != len(args) {
			return nil, schemeerr.NewValueError("mismatching arguments for mu")
		}
		child := environment.Extend(env, formals, args)
		return Eval(op.Body, child)

	case *callable.Builtin:
		args, err := evalEach(c.Operands(), env)
		if err != nil {
			return nil, err
		}
		return op.Fn(args, env, Eval, Apply)

	case *callable.Macro:
		operands := c.Operands()
		formals, err := formalNames(op.Formals)
		if err != nil {
			return nil, err
		}
		if len(formals) != len(operands) {
			return nil, schemeerr.NewValueError("mismatching arguments for macro")
		}
		bodyEnv := environment.Extend(op.Closure, formals, operands)
		expansion, err := Eval(op.Body, bodyEnv)
		if err != nil {
			return nil, err
		}
		return Eval(expansion, env)

	default:
		return nil, schemeerr.NewValueError("%s not callable", operator.Variant())
	}
}
