/*
File    : go-scheme/callable/callable.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package callable holds the expr.Expr variants that must carry a captured
// *environment.Environment: Lambda and Macro (closure captured on first
// Eval), Mu (never captures), Builtin (host-implemented procedures), and
// Promise (the lazy tail of cons-stream/delay). Splitting these out of
// package expr mirrors the teacher's own split of "function" (which needs a
// *scope.Scope) out of "objects" (which does not) — it is what keeps
// package environment free of a dependency on expr's callable variants and
// lets expr stay a plain, inert data package.
package callable

import (
	"github.com/akashmaji946/go-scheme/environment"
	"github.com/akashmaji946/go-scheme/expr"
)

// EvalFunc is the evaluator's own Eval function, threaded into every
// Builtin call so that builtins needing to evaluate something back in
// Scheme (apply, eval, load) can do so without package builtin importing
// package eval (which imports package builtin to register the required
// builtin set — that would cycle).
type EvalFunc func(e expr.Expr, env *environment.Environment) (expr.Expr, error)

// ApplyFunc synthesizes a Call with proc as operator and args as operands
// and evaluates it, exactly as the apply builtin's reference behavior does:
// it does not skip the normal Call dispatch, so each element of args is
// itself evaluated again as an operand (self-evaluating for every ordinary
// value apply is used with). It is threaded into builtins the same way
// EvalFunc is, avoiding a separate internal call path for apply.
type ApplyFunc func(proc expr.Expr, args []expr.Expr, env *environment.Environment) (expr.Expr, error)

// BuiltinFn is the Go implementation behind one named builtin procedure.
type BuiltinFn func(args []expr.Expr, env *environment.Environment, eval EvalFunc, apply ApplyFunc) (expr.Expr, error)

// Lambda is a closure: formal parameters plus a body, captured against the
// environment active when the (lambda ...) form was evaluated. Package eval
// sets Closure when it builds the Lambda from that form, so every Lambda a
// program can call already carries its closure.
type Lambda struct {
	Formals *expr.Combination
	Body    expr.Expr
	Closure *environment.Environment
}

func (*Lambda) Variant() string { return "lambda" }

// Mu is a dynamically scoped callable: it never captures an environment.
// A call runs its body against a child of the *caller's* environment.
type Mu struct {
	Formals *expr.Combination
	Body    expr.Expr
}

func (*Mu) Variant() string { return "mu" }

// Macro is the callable produced by define-macro. Its operands are passed
// unevaluated (bound raw), its body runs against a child of its closure to
// produce a new expression, and that expression is then evaluated in the
// caller's environment.
type Macro struct {
	Formals *expr.Combination
	Body    expr.Expr
	Closure *environment.Environment
}

func (*Macro) Variant() string { return "macro" }

// Builtin pairs a default name with a host-implemented procedure.
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

func (*Builtin) Variant() string { return "builtin" }

// Promise is the lazy tail produced by cons-stream/delay: a thunk paired
// with the environment it closes over, forced at most once and memoized.
type Promise struct {
	Thunk  expr.Expr
	Env    *environment.Environment
	forced bool
	value  expr.Expr
}

func NewPromise(thunk expr.Expr, env *environment.Environment) *Promise {
	return &Promise{Thunk: thunk, Env: env}
}

func (*Promise) Variant() string { return "promise" }

// Force evaluates the promise's thunk on first call and memoizes the
// result; subsequent calls return the cached value without re-evaluating.
func (p *Promise) Force(eval EvalFunc) (expr.Expr, error) {
	if p.forced {
		return p.value, nil
	}
	v, err := eval(p.Thunk, p.Env)
	if err != nil {
		return nil, err
	}
	p.value = v
	p.forced = true
	return v, nil
}
