/*
File    : go-scheme/expr/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package expr defines the closed expression algebra: the tagged value
// family every Scheme form and every evaluation result belongs to. Code and
// data share this one family (quote/eval round-trip because of it) — the
// difference between "code" and "value" is exclusively which subset of
// variants a given expr happens to be.
//
// This package is deliberately inert: no variant here knows how to evaluate
// itself. Dispatch lives in package eval, which keeps the algebra closed
// (adding a new way to *evaluate* something never means touching this file)
// and lets Lambda/Mu/Macro/Builtin/Promise — which must hold a captured
// *environment.Environment — live in package callable without this package
// importing environment (environment already imports expr, to type its
// bindings map; importing it back here would cycle).
package expr

import (
	"math/big"
	"strings"
)

// Expr is implemented by every member of the expression algebra: Name,
// the four literal kinds, Undefined, Combination, Call, every special form,
// and (from package callable) Lambda, Mu, Macro, Builtin, and Promise.
//
// Variant is an exported tag purely so a type defined outside this package
// (package callable's closures) can still satisfy Expr — an unexported
// marker method would seal the interface to this package alone, which would
// force Lambda/Mu/Macro/Builtin/Promise's environment-holding fields into
// this package and recreate the cycle described above.
type Expr interface {
	Variant() string
}

// Name wraps a single identifier. Names are compared and looked up by their
// normalized (lowercased) string only — two names built from differently
// cased source text are the same Name.
type Name struct {
	Symbol string
}

// NewName builds a Name, normalizing the construction token to lower case.
func NewName(token string) *Name {
	return &Name{Symbol: strings.ToLower(token)}
}

func (*Name) Variant() string { return "name" }

// Equal reports whether two names refer to the same normalized identifier.
func (n *Name) Equal(other *Name) bool {
	return other != nil && n.Symbol == other.Symbol
}

// IntegerLiteral wraps an arbitrary-precision host integer.
type IntegerLiteral struct {
	Value *big.Int
}

func NewIntegerLiteral(v *big.Int) *IntegerLiteral { return &IntegerLiteral{Value: v} }
func (*IntegerLiteral) Variant() string            { return "integer" }

// FloatLiteral wraps a host IEEE-754 double.
type FloatLiteral struct {
	Value float64
}

func NewFloatLiteral(v float64) *FloatLiteral { return &FloatLiteral{Value: v} }
func (*FloatLiteral) Variant() string         { return "float" }

// StringLiteral wraps a host string: the characters between a string
// literal's enclosing quotes, with no escape processing.
type StringLiteral struct {
	Value string
}

func NewStringLiteral(v string) *StringLiteral { return &StringLiteral{Value: v} }
func (*StringLiteral) Variant() string         { return "string" }

// BooleanLiteral wraps #t / #f. True and False below are the two canonical
// instances; every BooleanLiteral a program observes is one of them, so
// comparing a BooleanLiteral pointer to False is a valid falsiness test, but
// callers should prefer comparing .Value for clarity.
type BooleanLiteral struct {
	Value bool
}

func (*BooleanLiteral) Variant() string { return "boolean" }

// True and False are the only two BooleanLiteral instances the evaluator
// and builtins ever need to construct.
var (
	True  = &BooleanLiteral{Value: true}
	False = &BooleanLiteral{Value: false}
)

// Bool returns True or False for a host bool.
func Bool(v bool) *BooleanLiteral {
	if v {
		return True
	}
	return False
}

// IsFalse reports whether e is the Scheme false value. Only #f is false —
// every other expr, including 0 and an empty Combination, is true.
func IsFalse(e Expr) bool {
	b, ok := e.(*BooleanLiteral)
	return ok && !b.Value
}

// undefinedExpr is the singleton result of statements with no meaningful
// value (display, a falling-through if, ...).
type undefinedExpr struct{}

func (*undefinedExpr) Variant() string { return "undefined" }

// Undefined is the single Undefined instance.
var Undefined Expr = &undefinedExpr{}

// Combination is an ordered sequence of sub-expressions — the raw
// parenthesized list before it is classified into a Call or a special form.
type Combination struct {
	Items []Expr
}

// NewCombination builds a Combination from the given sub-expressions.
func NewCombination(items ...Expr) *Combination {
	return &Combination{Items: items}
}

func (*Combination) Variant() string { return "combination" }

// Head returns the first sub-expression, or nil if the combination is empty.
func (c *Combination) Head() Expr {
	if len(c.Items) == 0 {
		return nil
	}
	return c.Items[0]
}

// HeadName returns the first sub-expression as a *Name, or nil if the
// combination is empty or does not start with a Name.
func (c *Combination) HeadName() *Name {
	n, _ := c.Head().(*Name)
	return n
}

// Call is a Combination recognized as a procedure application:
// (operator operand*).
type Call struct {
	Items []Expr
}

func (*Call) Variant() string { return "call" }

// Operator is the sub-expression evaluated to find the callable.
func (c *Call) Operator() Expr { return c.Items[0] }

// Operands are the sub-expressions evaluated (or, for a macro, left raw) and
// bound to the callable's formal parameters.
func (c *Call) Operands() []Expr { return c.Items[1:] }

// NewCall builds a Call from a combination's items, preserving share of
// Items rather than copying.
func NewCall(items []Expr) *Call {
	return &Call{Items: items}
}
