/*
File    : go-scheme/eval/special_forms.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-scheme/callable"
	"github.com/akashmaji946/go-scheme/environment"
	"github.com/akashmaji946/go-scheme/expr"
	"github.com/akashmaji946/go-scheme/schemeerr"
)

// evalDefine binds a name to the given value or procedure and returns the
// bound Name (spec.md §4.E), not the value — a deliberate match of the
// reference's DefineExpr.eval, which returns self[1] rather than the value.
func evalDefine(d *expr.DefineExpr, env *environment.Environment) (expr.Expr, error) {
	if name, ok := d.Target().(*expr.Name); ok {
		if len(d.Body()) != 1 {
			return nil, schemeerr.NewSyntaxError("invalid number of arguments for define")
		}
		value, err := Eval(d.ValueExpr(), env)
		if err != nil {
			return nil, err
		}
		env.Bind(name, value)
		return name, nil
	}

	comb, ok := d.Target().(*expr.Combination)
	if !ok || len(comb.Items) == 0 {
		return nil, schemeerr.NewValueError("bad procedure definition")
	}
	name, ok := comb.Head().(*expr.Name)
	if !ok {
		return nil, schemeerr.NewValueError("bad procedure definition")
	}
	lambda := &callable.Lambda{
		Formals: &expr.Combination{Items: comb.Items[1:]},
		Body:    expr.ImplicitBegin(d.Body()),
		Closure: env,
	}
	env.Bind(name, lambda)
	return name, nil
}

// evalDefineMacro binds name to a macro built either directly from the
// (define-macro (name formals...) body) shape, or — for the
// (define-macro name (lambda ...)) shape — from the lambda the value
// expression evaluates to.
func evalDefineMacro(d *expr.DefineMacroExpr, env *environment.Environment) (expr.Expr, error) {
	if name, ok := d.Target().(*expr.Name); ok {
		if len(d.Body()) != 1 {
			return nil, schemeerr.NewSyntaxError("invalid number of arguments for define-macro")
		}
		value, err := Eval(d.ValueExpr(), env)
		if err != nil {
			return nil, err
		}
		lambda, ok := value.(*callable.Lambda)
		if !ok {
			return nil, schemeerr.NewSyntaxError("bad macro definition")
		}
		macro := &callable.Macro{Formals: lambda.Formals, Body: lambda.Body, Closure: env}
		env.Bind(name, macro)
		return name, nil
	}

	comb, ok := d.Target().(*expr.Combination)
	if !ok || len(comb.Items) == 0 {
		return nil, schemeerr.NewSyntaxError("bad macro definition")
	}
	name, ok := comb.Head().(*expr.Name)
	if !ok {
		return nil, schemeerr.NewSyntaxError("bad macro definition")
	}
	macro := &callable.Macro{
		Formals: &expr.Combination{Items: comb.Items[1:]},
		Body:    expr.ImplicitBegin(d.Body()),
		Closure: env,
	}
	env.Bind(name, macro)
	return name, nil
}

// evalIf evaluates predicate, consequent, or alternative per spec.md §4.E's
// truthiness rule: only #f is false.
func evalIf(i *expr.IfExpr, env *environment.Environment) (expr.Expr, error) {
	predicate, err := Eval(i.Predicate(), env)
	if err != nil {
		return nil, err
	}
	if !expr.IsFalse(predicate) {
		return Eval(i.Consequent(), env)
	}
	return Eval(i.Alternative(), env)
}

// evalAnd evaluates operands left to right, stopping and returning the
// first #f; an empty and returns #t.
func evalAnd(a *expr.AndExpr, env *environment.Environment) (expr.Expr, error) {
	result := expr.Expr(expr.True)
	for _, operand := range a.Operands() {
		v, err := Eval(operand, env)
		if err != nil {
			return nil, err
		}
		result = v
		if expr.IsFalse(v) {
			return v, nil
		}
	}
	return result, nil
}

// evalOr evaluates operands left to right, stopping and returning the first
// non-#f value; an empty or returns #f.
func evalOr(o *expr.OrExpr, env *environment.Environment) (expr.Expr, error) {
	for _, operand := range o.Operands() {
		v, err := Eval(operand, env)
		if err != nil {
			return nil, err
		}
		if !expr.IsFalse(v) {
			return v, nil
		}
	}
	return expr.False, nil
}

// evalBegin evaluates every body expression in order and returns the last;
// an empty begin returns Undefined.
func evalBegin(b *expr.BeginExpr, env *environment.Environment) (expr.Expr, error) {
	body := b.Body()
	if len(body) == 0 {
		return expr.Undefined, nil
	}
	var result expr.Expr
	for _, e := range body {
		v, err := Eval(e, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// evalLet evaluates each binding value in the outer env, then evaluates body
// against a fresh child env binding every name to its value.
func evalLet(l *expr.LetExpr, env *environment.Environment) (expr.Expr, error) {
	bindings := l.Bindings()
	if bindings == nil {
		return nil, schemeerr.NewSyntaxError("bad let bindings")
	}
	child := environment.NewChild(env)
	for _, b := range bindings.Items {
		pair, ok := b.(*expr.Combination)
		if !ok || len(pair.Items) != 2 {
			return nil, schemeerr.NewSyntaxError("bad let binding")
		}
		name, ok := pair.Items[0].(*expr.Name)
		if !ok {
			return nil, schemeerr.NewSyntaxError("bad let binding")
		}
		value, err := Eval(pair.Items[1], env)
		if err != nil {
			return nil, err
		}
		child.Bind(name, value)
	}
	return Eval(l.Body(), child)
}

// evalSet walks the environment chain to find the nearest frame that
// already binds name and replaces its value there; unlike define, it never
// creates a new binding.
func evalSet(s *expr.SetExpr, env *environment.Environment) (expr.Expr, error) {
	name, ok := s.Target().(*expr.Name)
	if !ok {
		return nil, schemeerr.NewSyntaxError("bad set! target")
	}
	value, err := Eval(s.ValueExpr(), env)
	if err != nil {
		return nil, err
	}
	if err := env.Set(name, value); err != nil {
		return nil, err
	}
	return expr.Undefined, nil
}

// evalConsStream evaluates head eagerly and wraps tail in a promise forced
// on demand, returning a two-element Combination (head, promise) — the pair
// model every other list builtin also treats a Combination as.
func evalConsStream(c *expr.ConsStreamExpr, env *environment.Environment) (expr.Expr, error) {
	head, err := Eval(c.Head(), env)
	if err != nil {
		return nil, err
	}
	promise := callable.NewPromise(c.Tail(), env)
	return &expr.Combination{Items: []expr.Expr{head, promise}}, nil
}

// partialUnquote descends into a quasiquote template, replacing every
// sub-Combination shaped (unquote e) with eval(e, env) and splicing the
// evaluated list of every (unquote-splicing e) element into the enclosing
// list. Descent stops at an unquote boundary; there is no nesting-depth
// tracking in this dialect (spec.md §4.E).
func partialUnquote(e expr.Expr, env *environment.Environment) (expr.Expr, error) {
	comb, ok := e.(*expr.Combination)
	if !ok {
		return e, nil
	}
	if name := comb.HeadName(); name != nil && name.Symbol == "unquote" && len(comb.Items) == 2 {
		return Eval(comb.Items[1], env)
	}

	var result []expr.Expr
	for _, item := range comb.Items {
		if ic, ok := item.(*expr.Combination); ok {
			if n := ic.HeadName(); n != nil && n.Symbol == "unquote-splicing" && len(ic.Items) == 2 {
				spliced, err := Eval(ic.Items[1], env)
				if err != nil {
					return nil, err
				}
				list, ok := spliced.(*expr.Combination)
				if !ok {
					return nil, schemeerr.NewValueError("unquote-splicing: expected a list")
				}
				result = append(result, list.Items...)
				continue
			}
		}
		sub, err := partialUnquote(item, env)
		if err != nil {
			return nil, err
		}
		result = append(result, sub)
	}
	return &expr.Combination{Items: result}, nil
}
