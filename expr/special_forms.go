/*
File    : go-scheme/expr/special_forms.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package expr

import "github.com/akashmaji946/go-scheme/schemeerr"

// Keywords lists every reserved first-position name that makes a
// Combination a special form instead of a Call. package eval consults this
// table before constructing one of the node types below.
var Keywords = map[string]bool{
	"define":           true,
	"if":               true,
	"and":              true,
	"or":               true,
	"let":              true,
	"begin":            true,
	"lambda":           true,
	"mu":               true,
	"quote":            true,
	"cons-stream":      true,
	"set!":             true,
	"quasiquote":       true,
	"unquote":          true,
	"unquote-splicing": true,
	"define-macro":     true,
	"delay":            true,
}

// fixedArity validates that a combination's keyword form has exactly want
// sub-expressions (the keyword itself included), per spec.md's "each has a
// fixed expected arity".
func fixedArity(formName string, items []Expr, want int) error {
	if len(items) != want {
		return schemeerr.NewSyntaxError("invalid number of arguments for %s", formName)
	}
	return nil
}

// minArity validates that a combination's keyword form has at least want
// sub-expressions (the keyword itself included), for forms whose tail is a
// variable-length body.
func minArity(formName string, items []Expr, want int) error {
	if len(items) < want {
		return schemeerr.NewSyntaxError("invalid number of arguments for %s", formName)
	}
	return nil
}

// ImplicitBegin folds a procedure body of one or more trailing forms into a
// single Expr: the lone form itself if there is only one, otherwise a begin
// over all of them, so a lambda/mu/procedure-define body may contain
// multiple expressions evaluated in order, returning the last.
func ImplicitBegin(forms []Expr) Expr {
	if len(forms) == 1 {
		return forms[0]
	}
	return &Combination{Items: append([]Expr{NewName("begin")}, forms...)}
}

// DefineExpr is (define name value) or (define (name formals...) body...).
// Desugaring the second shape into the first happens in package eval, since
// it requires building a LambdaExpr-shaped value, not just re-tagging data.
// The procedure shape may carry more than one trailing body form; the name
// shape takes exactly one value, which package eval enforces since arity
// alone can't tell the two shapes apart at construction time.
type DefineExpr struct {
	Items []Expr // [define, target, value...]
}

func NewDefineExpr(items []Expr) (*DefineExpr, error) {
	if err := minArity("define", items, 3); err != nil {
		return nil, err
	}
	return &DefineExpr{Items: items}, nil
}

func (*DefineExpr) Variant() string   { return "define" }
func (d *DefineExpr) Target() Expr    { return d.Items[1] }
func (d *DefineExpr) ValueExpr() Expr { return d.Items[2] }
func (d *DefineExpr) Body() []Expr    { return d.Items[2:] }

// IfExpr is (if predicate consequent alternative?); a missing alternative is
// padded with Undefined at construction time.
type IfExpr struct {
	Items []Expr // [if, predicate, consequent, alternative]
}

func NewIfExpr(items []Expr) (*IfExpr, error) {
	if len(items) == 3 {
		items = append(append([]Expr{}, items...), Undefined)
	}
	if err := fixedArity("if", items, 4); err != nil {
		return nil, err
	}
	return &IfExpr{Items: items}, nil
}

func (*IfExpr) Variant() string     { return "if" }
func (i *IfExpr) Predicate() Expr   { return i.Items[1] }
func (i *IfExpr) Consequent() Expr  { return i.Items[2] }
func (i *IfExpr) Alternative() Expr { return i.Items[3] }

// AndExpr is (and e1 ... en), left-to-right short-circuiting.
type AndExpr struct{ Items []Expr }

func NewAndExpr(items []Expr) *AndExpr { return &AndExpr{Items: items} }
func (*AndExpr) Variant() string       { return "and" }
func (a *AndExpr) Operands() []Expr    { return a.Items[1:] }

// OrExpr is (or e1 ... en), left-to-right short-circuiting.
type OrExpr struct{ Items []Expr }

func NewOrExpr(items []Expr) *OrExpr { return &OrExpr{Items: items} }
func (*OrExpr) Variant() string      { return "or" }
func (o *OrExpr) Operands() []Expr   { return o.Items[1:] }

// BeginExpr is (begin e1 ... en); evaluates each in order, returns the last.
type BeginExpr struct{ Items []Expr }

func NewBeginExpr(items []Expr) *BeginExpr { return &BeginExpr{Items: items} }
func (*BeginExpr) Variant() string         { return "begin" }
func (b *BeginExpr) Body() []Expr          { return b.Items[1:] }

// LetExpr is (let ((n1 v1) ... (nk vk)) body).
type LetExpr struct{ Items []Expr } // [let, bindings-combination, body]

func NewLetExpr(items []Expr) (*LetExpr, error) {
	if err := fixedArity("let", items, 3); err != nil {
		return nil, err
	}
	return &LetExpr{Items: items}, nil
}

func (*LetExpr) Variant() string { return "let" }
func (l *LetExpr) Bindings() *Combination {
	c, _ := l.Items[1].(*Combination)
	return c
}
func (l *LetExpr) Body() Expr { return l.Items[2] }

// QuoteExpr is (quote datum); evaluates to datum unevaluated.
type QuoteExpr struct{ Items []Expr }

func NewQuoteExpr(items []Expr) (*QuoteExpr, error) {
	if err := fixedArity("quote", items, 2); err != nil {
		return nil, err
	}
	return &QuoteExpr{Items: items}, nil
}

func (*QuoteExpr) Variant() string { return "quote" }
func (q *QuoteExpr) Datum() Expr   { return q.Items[1] }

// QuasiQuoteExpr is (quasiquote datum).
type QuasiQuoteExpr struct{ Items []Expr }

func NewQuasiQuoteExpr(items []Expr) (*QuasiQuoteExpr, error) {
	if err := fixedArity("quasiquote", items, 2); err != nil {
		return nil, err
	}
	return &QuasiQuoteExpr{Items: items}, nil
}

func (*QuasiQuoteExpr) Variant() string { return "quasiquote" }
func (q *QuasiQuoteExpr) Template() Expr { return q.Items[1] }

// UnquoteExpr is (unquote e), only meaningful inside a quasiquote template.
type UnquoteExpr struct{ Items []Expr }

func NewUnquoteExpr(items []Expr) (*UnquoteExpr, error) {
	if err := fixedArity("unquote", items, 2); err != nil {
		return nil, err
	}
	return &UnquoteExpr{Items: items}, nil
}

func (*UnquoteExpr) Variant() string  { return "unquote" }
func (u *UnquoteExpr) Operand() Expr  { return u.Items[1] }

// UnquoteSplicingExpr is (unquote-splicing e), only meaningful as a list
// element inside a quasiquote template.
type UnquoteSplicingExpr struct{ Items []Expr }

func NewUnquoteSplicingExpr(items []Expr) (*UnquoteSplicingExpr, error) {
	if err := fixedArity("unquote-splicing", items, 2); err != nil {
		return nil, err
	}
	return &UnquoteSplicingExpr{Items: items}, nil
}

func (*UnquoteSplicingExpr) Variant() string { return "unquote-splicing" }
func (u *UnquoteSplicingExpr) Operand() Expr  { return u.Items[1] }

// SetExpr is (set! name value): find the nearest frame already binding
// name and replace its value there, unlike define which always writes
// local.
type SetExpr struct{ Items []Expr }

func NewSetExpr(items []Expr) (*SetExpr, error) {
	if err := fixedArity("set!", items, 3); err != nil {
		return nil, err
	}
	return &SetExpr{Items: items}, nil
}

func (*SetExpr) Variant() string   { return "set!" }
func (s *SetExpr) Target() Expr    { return s.Items[1] }
func (s *SetExpr) ValueExpr() Expr { return s.Items[2] }

// DefineMacroExpr is (define-macro (name formals...) body...) or
// (define-macro name (lambda ...)); like define, but binds a macro.
type DefineMacroExpr struct{ Items []Expr }

func NewDefineMacroExpr(items []Expr) (*DefineMacroExpr, error) {
	if err := minArity("define-macro", items, 3); err != nil {
		return nil, err
	}
	return &DefineMacroExpr{Items: items}, nil
}

func (*DefineMacroExpr) Variant() string   { return "define-macro" }
func (d *DefineMacroExpr) Target() Expr    { return d.Items[1] }
func (d *DefineMacroExpr) ValueExpr() Expr { return d.Items[2] }
func (d *DefineMacroExpr) Body() []Expr    { return d.Items[2:] }

// ConsStreamExpr is (cons-stream head tail): head is evaluated eagerly,
// tail is wrapped in a promise forced on demand.
type ConsStreamExpr struct{ Items []Expr }

func NewConsStreamExpr(items []Expr) (*ConsStreamExpr, error) {
	if err := fixedArity("cons-stream", items, 3); err != nil {
		return nil, err
	}
	return &ConsStreamExpr{Items: items}, nil
}

func (*ConsStreamExpr) Variant() string { return "cons-stream" }
func (c *ConsStreamExpr) Head() Expr    { return c.Items[1] }
func (c *ConsStreamExpr) Tail() Expr    { return c.Items[2] }

// DelayExpr is (delay e): wraps e in a promise forced on demand.
type DelayExpr struct{ Items []Expr }

func NewDelayExpr(items []Expr) (*DelayExpr, error) {
	if err := fixedArity("delay", items, 2); err != nil {
		return nil, err
	}
	return &DelayExpr{Items: items}, nil
}

func (*DelayExpr) Variant() string { return "delay" }
func (d *DelayExpr) Operand() Expr { return d.Items[1] }

// FormalsAndBody below is shared by package eval to parse
// (lambda (formals...) body) / (mu (formals...) body) into the pieces
// package callable's Lambda/Mu types need, without expr needing to import
// callable.

// FormalsAndBody extracts the formals combination and body expression from
// a (lambda (formals...) body...) or (mu (formals...) body...) shaped
// combination; fewer than 3 items is a SyntaxError. A body of more than one
// trailing form is folded into an implicit begin.
func FormalsAndBody(items []Expr) (*Combination, Expr, error) {
	if err := minArity("lambda/mu", items, 3); err != nil {
		return nil, nil, err
	}
	formals, ok := items[1].(*Combination)
	if !ok {
		return nil, nil, schemeerr.NewSyntaxError("bad formal parameter list")
	}
	return formals, ImplicitBegin(items[2:]), nil
}
