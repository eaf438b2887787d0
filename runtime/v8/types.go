package v8

import (
	"io"

	"github.com/yaoapp/jsbench/runtime/console"
	"rogchap.com/v8go"
)

// Name the engine name
const Name = "v8"

// Option runtime option
type Option struct {
	Console string    `json:"console,omitempty" yaml:"console,omitempty"` // the console mode, silent or stdout. the default value is silent
	Jitless bool      `json:"jitless,omitempty" yaml:"jitless,omitempty"` // if true start V8 with --jitless, only the interpreter runs the scripts
	Flags   []string  `json:"flags,omitempty" yaml:"flags,omitempty"`     // extra V8 flags, applied before the first isolate is created
	Writer  io.Writer `json:"-" yaml:"-"`                                 // where the console writes, the default value is os.Stdout

	// CompilationCache keep the isolate compilation cache. It is off by
	// default: with the cache a source run twice is only parsed once
	CompilationCache bool `json:"compilation_cache,omitempty" yaml:"compilation_cache,omitempty"`
	mode             console.Mode
}

// Engine a V8 isolate with a single context
type Engine struct {
	iso      *v8go.Isolate
	ctx      *v8go.Context
	option   *Option
	rejected int
	closed   bool
}
