package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rogchap.com/v8go"
)

func prepare(t *testing.T) *v8go.Context {
	iso := v8go.NewIsolate()
	ctx := v8go.NewContext(iso)
	t.Cleanup(func() {
		ctx.Close()
		iso.Dispose()
	})
	return ctx
}

func eval(t *testing.T, ctx *v8go.Context, source string) interface{} {
	value, err := ctx.RunScript(source, "bridge.js")
	require.NoError(t, err)
	res, err := GoValue(value)
	require.NoError(t, err)
	return res
}

func TestGoValue(t *testing.T) {
	ctx := prepare(t)

	assert.Equal(t, nil, eval(t, ctx, `null`))
	assert.Equal(t, Undefined, eval(t, ctx, `undefined`))
	assert.Equal(t, true, eval(t, ctx, `1 < 2`))
	assert.Equal(t, 6765, eval(t, ctx, `6765`))
	assert.Equal(t, 0.5, eval(t, ctx, `1 / 2`))
	assert.Equal(t, "hello", eval(t, ctx, `"hello"`))
	assert.Equal(t, int64(9007199254740993), eval(t, ctx, `9007199254740993n`))
	assert.Equal(t, []interface{}{float64(1), "a"}, eval(t, ctx, `[1, "a"]`))
	assert.Equal(t, map[string]interface{}{"foo": "bar"}, eval(t, ctx, `({foo: "bar"})`))
}

func TestGoValueFunction(t *testing.T) {
	ctx := prepare(t)
	value, err := ctx.RunScript(`(function() {})`, "bridge.js")
	require.NoError(t, err)
	_, err = GoValue(value)
	assert.Error(t, err)
}

func TestStringify(t *testing.T) {
	ctx := prepare(t)
	cases := map[string]string{
		`"hello"`:        "hello",
		`6765`:           "6765",
		`({foo: "bar"})`: `{"foo":"bar"}`,
		`[1, 2]`:         "[1,2]",
		`undefined`:      "undefined",
		`null`:           "null",
		`true`:           "true",
	}
	for source, expected := range cases {
		value, err := ctx.RunScript(source, "bridge.js")
		require.NoError(t, err)
		assert.Equal(t, expected, Stringify(ctx, value), source)
	}
}
