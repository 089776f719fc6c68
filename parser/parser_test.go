/*
File    : go-scheme/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/go-scheme/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleCall(t *testing.T) {
	got, err := Parse("(+ 2 3)")
	require.NoError(t, err)
	require.Len(t, got, 1)

	comb, ok := got[0].(*expr.Combination)
	require.True(t, ok)
	require.Len(t, comb.Items, 3)
	assert.Equal(t, "+", comb.Items[0].(*expr.Name).Symbol)
	assert.Equal(t, int64(2), comb.Items[1].(*expr.IntegerLiteral).Value.Int64())
	assert.Equal(t, int64(3), comb.Items[2].(*expr.IntegerLiteral).Value.Int64())
}

func TestParseNestedCombinations(t *testing.T) {
	got, err := Parse("(+(eval 2)(eval 3))")
	require.NoError(t, err)
	require.Len(t, got, 1)
	comb := got[0].(*expr.Combination)
	require.Len(t, comb.Items, 3)
	_, ok := comb.Items[1].(*expr.Combination)
	assert.True(t, ok)
}

func TestParseQuoteSugar(t *testing.T) {
	got, err := Parse("(define not_good_for_you 'sugar)")
	require.NoError(t, err)
	comb := got[0].(*expr.Combination)
	quoted := comb.Items[2].(*expr.Combination)
	assert.Equal(t, "quote", quoted.Items[0].(*expr.Name).Symbol)
	assert.Equal(t, "sugar", quoted.Items[1].(*expr.Name).Symbol)
}

func TestParseQuasiquoteUnquote(t *testing.T) {
	got, err := Parse("`(is partially ,ed)")
	require.NoError(t, err)
	qq := got[0].(*expr.Combination)
	assert.Equal(t, "quasiquote", qq.Items[0].(*expr.Name).Symbol)
	inner := qq.Items[1].(*expr.Combination)
	unq := inner.Items[2].(*expr.Combination)
	assert.Equal(t, "unquote", unq.Items[0].(*expr.Name).Symbol)
	assert.Equal(t, "ed", unq.Items[1].(*expr.Name).Symbol)
}

func TestParseUnquoteSplicing(t *testing.T) {
	got, err := Parse("`(1 ,@lst 4)")
	require.NoError(t, err)
	qq := got[0].(*expr.Combination)
	inner := qq.Items[1].(*expr.Combination)
	splice := inner.Items[1].(*expr.Combination)
	assert.Equal(t, "unquote-splicing", splice.Items[0].(*expr.Name).Symbol)
	assert.Equal(t, "lst", splice.Items[1].(*expr.Name).Symbol)
}

func TestParseStringLiteral(t *testing.T) {
	got, err := Parse(`"hello world"`)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got[0].(*expr.StringLiteral).Value)
}

func TestParseFloatLiteral(t *testing.T) {
	got, err := Parse("2.2")
	require.NoError(t, err)
	assert.Equal(t, 2.2, got[0].(*expr.FloatLiteral).Value)
}

func TestParseBooleanLiterals(t *testing.T) {
	got, err := Parse("#t #f true false")
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Same(t, expr.True, got[0])
	assert.Same(t, expr.False, got[1])
	assert.Same(t, expr.True, got[2])
	assert.Same(t, expr.False, got[3])
}

func TestParseUnexpectedCloseParen(t *testing.T) {
	_, err := Parse(")")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected `)`")
}

func TestParseUnbalancedCombination(t *testing.T) {
	_, err := Parse("(+ 1 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbalanced")
}

func TestParseSugarWithNoOperand(t *testing.T) {
	_, err := Parse("'")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no operand for quote")
}

func TestParseCaseNormalizesNames(t *testing.T) {
	got, err := Parse("(DEFINE string_CHEESE \"chEESy\")")
	require.NoError(t, err)
	comb := got[0].(*expr.Combination)
	assert.Equal(t, "define", comb.Items[0].(*expr.Name).Symbol)
	assert.Equal(t, "string_cheese", comb.Items[1].(*expr.Name).Symbol)
	assert.Equal(t, "chEESy", comb.Items[2].(*expr.StringLiteral).Value)
}
