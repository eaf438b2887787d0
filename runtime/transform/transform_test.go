package transform

import (
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeScript(t *testing.T) {
	inputCode := `
		import { helper } from "./helper";
		const message: string = "Hello, TypeScript!";
		console.log(message);
		add(a, b)
		hello( "World" )

		function add(a: number, b: number) {
			return a + b;
		}

		const hello = (name: string) => {
			console.log(hello, name)
		}
	`
	jsCode, err := TypeScript(inputCode, api.TransformOptions{
		Target:            api.ES2015,
		MinifyWhitespace:  true,
		MinifyIdentifiers: true,
		MinifySyntax:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, `const message="Hello, TypeScript!";console.log(message),add(a,b),hello("World");function add(o,n){return o+n}const hello=o=>{console.log(hello,o)};`+"\n", jsCode)
}

func TestTypeScriptDefaultTarget(t *testing.T) {
	jsCode, err := TypeScript(`let total: number = 0; for (let i = 0; i < 10; i++) { total += i; }`, api.TransformOptions{})
	require.NoError(t, err)
	assert.NotContains(t, jsCode, ": number")
	assert.Contains(t, jsCode, "let total = 0;")
}

func TestTypeScriptError(t *testing.T) {
	_, err := TypeScript(`function (a: number {`, api.TransformOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transform ts code error")
}
