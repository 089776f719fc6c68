/*
File    : go-scheme/printer/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package printer renders expressions in source-faithful textual form
// (spec.md §4.G). Repr is used by the REPL and by quote/eval round-tripping
// (print(parse(s)) must equal s modulo whitespace/comments/case/sugar);
// Display is used only by the display builtin, and differs from Repr solely
// in printing strings without their surrounding quotes.
package printer

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/go-scheme/callable"
	"github.com/akashmaji946/go-scheme/expr"
)

// Repr renders e the way quote/the REPL show it: strings keep their
// surrounding quotes.
func Repr(e expr.Expr) string {
	return render(e, true)
}

// Display renders e the way the display builtin shows it: strings lose
// their surrounding quotes, everything else is identical to Repr.
func Display(e expr.Expr) string {
	return render(e, false)
}

func render(e expr.Expr, quoteStrings bool) string {
	switch v := e.(type) {
	case *expr.Name:
		return v.Symbol
	case *expr.IntegerLiteral:
		return v.Value.String()
	case *expr.FloatLiteral:
		return strconv.FormatFloat(v.Value, 'g', -1, 64)
	case *expr.StringLiteral:
		if quoteStrings {
			return `"` + v.Value + `"`
		}
		return v.Value
	case *expr.BooleanLiteral:
		if v.Value {
			return "#t"
		}
		return "#f"
	case *expr.Combination:
		return renderItems(v.Items, quoteStrings)
	case *expr.Call:
		return renderItems(v.Items, quoteStrings)
	case *callable.Lambda:
		return "(lambda " + render(v.Formals, quoteStrings) + " " + render(v.Body, quoteStrings) + ")"
	case *callable.Mu:
		return "(mu " + render(v.Formals, quoteStrings) + " " + render(v.Body, quoteStrings) + ")"
	case *callable.Macro:
		return "(define-macro " + render(v.Formals, quoteStrings) + " " + render(v.Body, quoteStrings) + ")"
	case *callable.Builtin:
		return "#[" + v.Name + "]"
	case *callable.Promise:
		return "#[promise]"
	default:
		if e == expr.Undefined {
			return "undefined"
		}
		return "undefined"
	}
}

func renderItems(items []expr.Expr, quoteStrings bool) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = render(item, quoteStrings)
	}
	return "(" + strings.Join(parts, " ") + ")"
}
