/*
File    : go-scheme/builtin/arithmetic.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package builtin

import (
	"math/big"

	"github.com/akashmaji946/go-scheme/callable"
	"github.com/akashmaji946/go-scheme/environment"
	"github.com/akashmaji946/go-scheme/expr"
	"github.com/akashmaji946/go-scheme/schemeerr"
)

func init() {
	register("+", addExec)
	register("-", subExec)
	register("*", mulExec)
	register("/", divExec)
	register("=", eqExec)
	register("<", ltExec)
}

// asFloat reports whether e is numeric and returns its float64 value.
func asFloat(e expr.Expr) (float64, bool) {
	switch v := e.(type) {
	case *expr.IntegerLiteral:
		f, _ := new(big.Float).SetInt(v.Value).Float64()
		return f, true
	case *expr.FloatLiteral:
		return v.Value, true
	default:
		return 0, false
	}
}

// asRat reports whether e is numeric, returning its exact value as a
// *big.Rat (used to decide whether "/" produced an exact integer result).
func asRat(e expr.Expr) (*big.Rat, bool) {
	switch v := e.(type) {
	case *expr.IntegerLiteral:
		return new(big.Rat).SetInt(v.Value), true
	case *expr.FloatLiteral:
		r := new(big.Rat)
		r.SetFloat64(v.Value)
		return r, true
	default:
		return nil, false
	}
}

func isFloatExpr(e expr.Expr) bool {
	_, ok := e.(*expr.FloatLiteral)
	return ok
}

func anyFloat(args []expr.Expr) bool {
	for _, a := range args {
		if isFloatExpr(a) {
			return true
		}
	}
	return false
}

func requireNumeric(name string, args []expr.Expr) error {
	for _, a := range args {
		if _, ok := asFloat(a); !ok {
			return schemeerr.NewValueError("%s: non-numeric argument", name)
		}
	}
	return nil
}

func addExec(args []expr.Expr, env *environment.Environment, eval callable.EvalFunc, apply callable.ApplyFunc) (expr.Expr, error) {
	if err := requireNumeric("+", args); err != nil {
		return nil, err
	}
	if anyFloat(args) {
		sum := 0.0
		for _, a := range args {
			f, _ := asFloat(a)
			sum += f
		}
		return expr.NewFloatLiteral(sum), nil
	}
	sum := big.NewInt(0)
	for _, a := range args {
		sum.Add(sum, a.(*expr.IntegerLiteral).Value)
	}
	return expr.NewIntegerLiteral(sum), nil
}

func mulExec(args []expr.Expr, env *environment.Environment, eval callable.EvalFunc, apply callable.ApplyFunc) (expr.Expr, error) {
	if err := requireNumeric("*", args); err != nil {
		return nil, err
	}
	if anyFloat(args) {
		product := 1.0
		for _, a := range args {
			f, _ := asFloat(a)
			product *= f
		}
		return expr.NewFloatLiteral(product), nil
	}
	product := big.NewInt(1)
	for _, a := range args {
		product.Mul(product, a.(*expr.IntegerLiteral).Value)
	}
	return expr.NewIntegerLiteral(product), nil
}

func subExec(args []expr.Expr, env *environment.Environment, eval callable.EvalFunc, apply callable.ApplyFunc) (expr.Expr, error) {
	if len(args) == 0 {
		return nil, schemeerr.NewValueError("-: requires at least one argument")
	}
	if err := requireNumeric("-", args); err != nil {
		return nil, err
	}
	if anyFloat(args) {
		first, _ := asFloat(args[0])
		if len(args) == 1 {
			return expr.NewFloatLiteral(-first), nil
		}
		for _, a := range args[1:] {
			f, _ := asFloat(a)
			first -= f
		}
		return expr.NewFloatLiteral(first), nil
	}
	result := new(big.Int).Set(args[0].(*expr.IntegerLiteral).Value)
	if len(args) == 1 {
		return expr.NewIntegerLiteral(result.Neg(result)), nil
	}
	for _, a := range args[1:] {
		result.Sub(result, a.(*expr.IntegerLiteral).Value)
	}
	return expr.NewIntegerLiteral(result), nil
}

func divExec(args []expr.Expr, env *environment.Environment, eval callable.EvalFunc, apply callable.ApplyFunc) (expr.Expr, error) {
	if len(args) == 0 {
		return nil, schemeerr.NewValueError("/: requires at least one argument")
	}
	if err := requireNumeric("/", args); err != nil {
		return nil, err
	}

	operands := args
	if len(args) == 1 {
		operands = []expr.Expr{expr.NewIntegerLiteral(big.NewInt(1)), args[0]}
	}

	result, _ := asRat(operands[0])
	for _, a := range operands[1:] {
		r, _ := asRat(a)
		if r.Sign() == 0 {
			return nil, schemeerr.NewValueError("/: division by zero")
		}
		result = new(big.Rat).Quo(result, r)
	}

	if result.IsInt() && !anyFloat(operands) {
		return expr.NewIntegerLiteral(result.Num()), nil
	}
	f, _ := result.Float64()
	return expr.NewFloatLiteral(f), nil
}

func eqExec(args []expr.Expr, env *environment.Environment, eval callable.EvalFunc, apply callable.ApplyFunc) (expr.Expr, error) {
	if len(args) != 2 {
		return nil, schemeerr.NewValueError("mismatching arguments for =")
	}
	if err := requireNumeric("=", args); err != nil {
		return nil, err
	}
	a, _ := asRat(args[0])
	b, _ := asRat(args[1])
	return expr.Bool(a.Cmp(b) == 0), nil
}

func ltExec(args []expr.Expr, env *environment.Environment, eval callable.EvalFunc, apply callable.ApplyFunc) (expr.Expr, error) {
	if len(args) != 2 {
		return nil, schemeerr.NewValueError("mismatching arguments for <")
	}
	if err := requireNumeric("<", args); err != nil {
		return nil, err
	}
	a, _ := asRat(args[0])
	b, _ := asRat(args[1])
	return expr.Bool(a.Cmp(b) < 0), nil
}
