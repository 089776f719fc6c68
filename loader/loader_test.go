/*
File    : go-scheme/loader/loader_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akashmaji946/go-scheme/eval"
	"github.com/akashmaji946/go-scheme/expr"
	"github.com/akashmaji946/go-scheme/loader"
	"github.com/akashmaji946/go-scheme/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScm(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name+".scm")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return filepath.Join(dir, name)
}

func TestLoadRunsEveryTopLevelForm(t *testing.T) {
	dir := t.TempDir()
	path := writeScm(t, dir, "prog", "(define x 10) (define y (+ x 5))")

	env := eval.NewGlobalEnvironment()
	result, err := loader.Load(path, env, eval.Eval)
	require.NoError(t, err)
	assert.Equal(t, "undefined", printer.Repr(result))

	value, err := env.Lookup(expr.NewName("y"))
	require.NoError(t, err)
	assert.Equal(t, "15", printer.Repr(value))
}

func TestLoadMissingFileIsIOError(t *testing.T) {
	env := eval.NewGlobalEnvironment()
	_, err := loader.Load(filepath.Join(t.TempDir(), "no-such-program"), env, eval.Eval)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not load")
}

func TestLoadPropagatesEvalError(t *testing.T) {
	dir := t.TempDir()
	path := writeScm(t, dir, "broken", "(define x (/ 1 0))")

	env := eval.NewGlobalEnvironment()
	_, err := loader.Load(path, env, eval.Eval)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestLoadPropagatesParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeScm(t, dir, "unbalanced", "(+ 1 2")

	env := eval.NewGlobalEnvironment()
	_, err := loader.Load(path, env, eval.Eval)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unbalanced")
}
