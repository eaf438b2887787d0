package workload

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	w := New("fibonacci", "", Fibonacci)
	assert.Equal(t, "fibonacci.js", w.Origin)
	assert.Equal(t, Source, w.Kind)
	assert.False(t, w.IsCompiled("v8"))
}

func TestCompiled(t *testing.T) {
	w := New("fibonacci", "<input>", Fibonacci)
	c := w.Compiled("v8", []byte{0x01, 0x02}, nil)

	assert.Equal(t, Compiled, c.Kind)
	assert.Equal(t, w.Source, c.Source)
	assert.Equal(t, w.Origin, c.Origin)
	assert.True(t, c.IsCompiled("v8"))
	assert.False(t, c.IsCompiled("otto"))

	// the source variant is left untouched
	assert.Equal(t, Source, w.Kind)
	assert.Nil(t, w.Bytes)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "test.js")
	require.NoError(t, os.WriteFile(file, []byte("function main() { return 1; }\nmain();"), 0o644))

	w, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "test", w.Name)
	assert.Equal(t, "test.js", w.Origin)
	assert.Contains(t, w.Source, "function main()")
}

func TestLoadTypeScript(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "typed.ts")
	source := `import { foo } from "bar";
function add(a: number, b: number): number { return a + b; }
add(1, 2);`
	require.NoError(t, os.WriteFile(file, []byte(source), 0o644))

	w, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "typed", w.Name)
	assert.NotContains(t, w.Source, ": number")
	assert.NotContains(t, w.Source, "import")
	assert.Contains(t, w.Source, "function add(a, b)")
}

func TestLoadMissingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "missing.js")
	_, err := Load(file)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOpen))
	assert.Contains(t, err.Error(), file)
}

func TestBuiltin(t *testing.T) {
	cases := Builtin()
	require.Len(t, cases, 2)
	assert.Equal(t, "Simple Fibonacci Test", cases[0].Title)
	assert.Equal(t, "Complex Operation Test", cases[1].Title)
	for _, c := range cases {
		assert.Equal(t, Source, c.Workload.Kind)
		assert.Contains(t, c.Workload.Source, "console.log")
	}
}
