/*
File    : go-scheme/environment/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package environment

import (
	"math/big"
	"testing"

	"github.com/akashmaji946/go-scheme/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intVal(n int64) *big.Int { return big.NewInt(n) }

func TestBindAndLookupLocal(t *testing.T) {
	env := NewGlobal()
	n := expr.NewName("x")
	env.Bind(n, expr.NewIntegerLiteral(intVal(5)))

	got, err := env.Lookup(n)
	require.NoError(t, err)
	assert.Equal(t, intVal(5), got.(*expr.IntegerLiteral).Value)
}

func TestLookupDelegatesToParent(t *testing.T) {
	parent := NewGlobal()
	parent.Bind(expr.NewName("x"), expr.NewStringLiteral("from-parent"))
	child := NewChild(parent)

	got, err := child.Lookup(expr.NewName("x"))
	require.NoError(t, err)
	assert.Equal(t, "from-parent", got.(*expr.StringLiteral).Value)
}

func TestLookupUnboundNameFails(t *testing.T) {
	env := NewGlobal()
	_, err := env.Lookup(expr.NewName("nope"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unbound name: nope")
}

func TestBindWritesLocalFrameOnly(t *testing.T) {
	parent := NewGlobal()
	child := NewChild(parent)
	child.Bind(expr.NewName("y"), expr.Undefined)

	_, err := parent.Lookup(expr.NewName("y"))
	require.Error(t, err, "define inside a nested call must not leak to the global frame")
}

func TestSetWalksChainAndReplaces(t *testing.T) {
	parent := NewGlobal()
	parent.Bind(expr.NewName("x"), expr.NewIntegerLiteral(intVal(1)))
	child := NewChild(parent)

	require.NoError(t, child.Set(expr.NewName("x"), expr.NewIntegerLiteral(intVal(2))))

	got, err := parent.Lookup(expr.NewName("x"))
	require.NoError(t, err)
	assert.Equal(t, intVal(2), got.(*expr.IntegerLiteral).Value)
}

func TestSetUnboundNameFails(t *testing.T) {
	env := NewGlobal()
	err := env.Set(expr.NewName("nope"), expr.Undefined)
	require.Error(t, err)
}

func TestExtendDoesNotAliasAcrossInstances(t *testing.T) {
	parent := NewGlobal()
	a := Extend(parent, []*expr.Name{expr.NewName("x")}, []expr.Expr{expr.NewIntegerLiteral(intVal(1))})
	b := Extend(parent, []*expr.Name{expr.NewName("x")}, []expr.Expr{expr.NewIntegerLiteral(intVal(2))})

	gotA, _ := a.Lookup(expr.NewName("x"))
	gotB, _ := b.Lookup(expr.NewName("x"))
	assert.Equal(t, intVal(1), gotA.(*expr.IntegerLiteral).Value)
	assert.Equal(t, intVal(2), gotB.(*expr.IntegerLiteral).Value)
}
