/*
File    : go-scheme/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser folds a token stream into the expression algebra (spec.md
// §4.C). It produces only the "code" subset of expr.Expr — Combinations,
// Names, and literals — and desugars the four sugar markers into their
// (quote x) / (quasiquote x) / (unquote x) / (unquote-splicing x)
// combination form. Reclassifying a
// Combination into one of the ~15 special-form variants happens lazily
// inside package eval, not here (spec.md §4.C).
package parser

import (
	"math/big"
	"strconv"

	"github.com/akashmaji946/go-scheme/expr"
	"github.com/akashmaji946/go-scheme/lexer"
	"github.com/akashmaji946/go-scheme/schemeerr"
)

// sugarKeyword maps a sugar marker token to the special-form name it
// desugars into.
var sugarKeyword = map[lexer.TokenType]string{
	lexer.QUOTE:            "quote",
	lexer.QUASIQUOTE:       "quasiquote",
	lexer.UNQUOTE:          "unquote",
	lexer.UNQUOTE_SPLICING: "unquote-splicing",
}

// Parser consumes a flat token sequence and builds expression trees.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// NewParser builds a Parser over an already-lexed token sequence.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse lexes and parses src in one step, returning the ordered sequence of
// top-level expressions.
func Parse(src string) ([]expr.Expr, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseProgram()
}

// ParseProgram consumes the entire token stream and returns every top-level
// expression it contains.
func (p *Parser) ParseProgram() ([]expr.Expr, error) {
	var program []expr.Expr
	for !p.atEOF() {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		program = append(program, e)
	}
	return program, nil
}

func (p *Parser) atEOF() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) advance() lexer.Token {
	tok := p.tokens[p.pos]
	p.pos++
	return tok
}

// parseExpr parses and returns the next full expression.
func (p *Parser) parseExpr() (expr.Expr, error) {
	if p.atEOF() {
		return nil, schemeerr.NewSyntaxError("unexpected end of input")
	}

	tok := p.peek()
	switch tok.Type {
	case lexer.RPAREN:
		return nil, schemeerr.NewSyntaxError("unexpected `)`")
	case lexer.LPAREN:
		return p.parseCombination()
	case lexer.QUOTE, lexer.QUASIQUOTE, lexer.UNQUOTE, lexer.UNQUOTE_SPLICING:
		return p.parseSugar()
	default:
		p.advance()
		return classifyToken(tok)
	}
}

// parseCombination consumes a balanced "(" ... ")" and parses its interior
// into a Combination.
func (p *Parser) parseCombination() (expr.Expr, error) {
	p.advance() // consume '('
	var items []expr.Expr
	for {
		if p.atEOF() {
			return nil, schemeerr.NewSyntaxError("unbalanced combination expression")
		}
		if p.peek().Type == lexer.RPAREN {
			p.advance()
			return &expr.Combination{Items: items}, nil
		}
		item, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

// parseSugar reads the next full expression and wraps it as
// (quote x) / (quasiquote x) / (unquote x) / (unquote-splicing x).
func (p *Parser) parseSugar() (expr.Expr, error) {
	marker := p.advance()
	opName := sugarKeyword[marker.Type]
	if p.atEOF() || p.peek().Type == lexer.RPAREN {
		return nil, schemeerr.NewSyntaxError("no operand for %s", opName)
	}
	operand, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &expr.Combination{Items: []expr.Expr{expr.NewName(opName), operand}}, nil
}

// classifyToken builds a symbolic expression (a literal or a Name) from a
// single non-structural token: try integer, then float, then boolean, then
// string, else it is a Name.
func classifyToken(tok lexer.Token) (expr.Expr, error) {
	switch tok.Type {
	case lexer.STRING:
		return expr.NewStringLiteral(tok.Literal[1 : len(tok.Literal)-1]), nil
	case lexer.POUND:
		switch tok.Literal {
		case "#t":
			return expr.True, nil
		case "#f":
			return expr.False, nil
		default:
			return expr.NewName(tok.Literal), nil
		}
	default: // lexer.SYMBOL
		if i, ok := new(big.Int).SetString(tok.Literal, 10); ok {
			return expr.NewIntegerLiteral(i), nil
		}
		if f, err := strconv.ParseFloat(tok.Literal, 64); err == nil {
			return expr.NewFloatLiteral(f), nil
		}
		switch tok.Literal {
		case "true":
			return expr.True, nil
		case "false":
			return expr.False, nil
		}
		return expr.NewName(tok.Literal), nil
	}
}
