package runtime

import (
	"io"

	"github.com/yaoapp/jsbench/workload"
)

// Engine a JavaScript engine owned by one benchmark session
type Engine interface {
	Name() string
	Compile(w *workload.Workload) (*workload.Workload, error)
	Exec(w *workload.Workload) error
	Eval(w *workload.Workload) (interface{}, error)
	Close() error
}

// Option the engine option
type Option struct {
	Engine  string    `json:"engine,omitempty" yaml:"engine,omitempty"`   // v8 or otto. the default value is v8
	Console string    `json:"console,omitempty" yaml:"console,omitempty"` // silent or stdout. the default value is silent
	Jitless bool      `json:"jitless,omitempty" yaml:"jitless,omitempty"` // v8 only
	Flags   []string  `json:"flags,omitempty" yaml:"flags,omitempty"`     // v8 only
	Writer  io.Writer `json:"-" yaml:"-"`

	// CompilationCache v8 only, keep the isolate compilation cache. the default value is false
	CompilationCache bool `json:"compilation_cache,omitempty" yaml:"compilation_cache,omitempty"`
}
