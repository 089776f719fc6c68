/*
File    : go-scheme/schemeerr/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package schemeerr defines the recoverable error kinds the interpreter core
// raises: SyntaxError, NameError, ValueError, and IOError. Each kind is a
// distinct Go type implementing the error interface plus Kind(), so the REPL
// and the file-mode runner can format failures as "<Kind>: <message>" without
// needing to catch and convert anything inside the evaluator itself.
package schemeerr

import "fmt"

// SyntaxError reports malformed tokens, unbalanced parens, bad special-form
// shape, or a sugar marker with no operand.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string { return e.Message }
func (e *SyntaxError) Kind() string  { return "SyntaxError" }

// NewSyntaxError builds a SyntaxError from a printf-style format.
func NewSyntaxError(format string, a ...interface{}) *SyntaxError {
	return &SyntaxError{Message: fmt.Sprintf(format, a...)}
}

// NameError reports an unbound name lookup or a set! target missing from
// every frame in the environment chain.
type NameError struct {
	Message string
}

func (e *NameError) Error() string { return e.Message }
func (e *NameError) Kind() string  { return "NameError" }

// NewNameError builds a NameError from a printf-style format.
func NewNameError(format string, a ...interface{}) *NameError {
	return &NameError{Message: fmt.Sprintf(format, a...)}
}

// ValueError reports a non-callable in operator position, an arity
// mismatch, a bad builtin argument type, or a malformed define target.
type ValueError struct {
	Message string
}

func (e *ValueError) Error() string { return e.Message }
func (e *ValueError) Kind() string  { return "ValueError" }

// NewValueError builds a ValueError from a printf-style format.
func NewValueError(format string, a ...interface{}) *ValueError {
	return &ValueError{Message: fmt.Sprintf(format, a...)}
}

// IOError reports that `load` could not open or read its source file.
type IOError struct {
	Message string
}

func (e *IOError) Error() string { return e.Message }
func (e *IOError) Kind() string  { return "IOError" }

// NewIOError builds an IOError from a printf-style format.
func NewIOError(format string, a ...interface{}) *IOError {
	return &IOError{Message: fmt.Sprintf(format, a...)}
}

// Kinded is implemented by every error this package defines. The REPL and
// cmd/goscheme use it to format "<Kind>: <message>"; any other error (none
// should escape the core, but the boundary checks defensively) falls back to
// its plain Error() string.
type Kinded interface {
	error
	Kind() string
}

// Format renders err the way the REPL prints a failed top-level form.
func Format(err error) string {
	if k, ok := err.(Kinded); ok {
		return k.Kind() + ": " + k.Error()
	}
	return err.Error()
}
