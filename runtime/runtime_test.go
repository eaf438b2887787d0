package runtime

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaoapp/jsbench/workload"
)

func TestOpen(t *testing.T) {
	for _, name := range Engines() {
		var buf bytes.Buffer
		engine, err := Open(Option{Engine: name, Console: "stdout", Writer: &buf})
		require.NoError(t, err, name)
		assert.Equal(t, name, engine.Name())

		w := workload.New("fibonacci", "<input>", workload.Fibonacci)
		compiled, err := engine.Compile(w)
		require.NoError(t, err, name)

		fromCompiled, err := engine.Eval(compiled)
		require.NoError(t, err, name)
		fromSource, err := engine.Eval(w)
		require.NoError(t, err, name)

		assert.EqualValues(t, 6765, fromCompiled, name)
		assert.Equal(t, fromSource, fromCompiled, name)
		assert.Equal(t, "6765\n6765\n", buf.String(), name)
		require.NoError(t, engine.Close())
	}
}

func TestOpenDefault(t *testing.T) {
	engine, err := Open(Option{})
	require.NoError(t, err)
	defer engine.Close()
	assert.Equal(t, "v8", engine.Name())
}

func TestOpenUnknown(t *testing.T) {
	_, err := Open(Option{Engine: "spidermonkey"})
	assert.Error(t, err)
}
