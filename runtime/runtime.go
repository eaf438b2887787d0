// Package runtime opens the JavaScript engines the benchmarks run on.
package runtime

import (
	"fmt"

	"github.com/yaoapp/jsbench/runtime/otto"
	v8 "github.com/yaoapp/jsbench/runtime/v8"
	"github.com/yaoapp/kun/log"
)

// Engines the supported engine names
func Engines() []string {
	return []string{v8.Name, otto.Name}
}

// Open create a new engine, the caller must Close it
func Open(option Option) (Engine, error) {
	switch option.Engine {
	case v8.Name, "":
		engine, err := v8.New(&v8.Option{
			Console: option.Console,
			Jitless: option.Jitless,
			Flags:   option.Flags,
			Writer:  option.Writer,

			CompilationCache: option.CompilationCache,
		})
		if err != nil {
			return nil, err
		}
		return engine, nil

	case otto.Name:
		if option.Jitless || option.CompilationCache || len(option.Flags) > 0 {
			log.Warn("[runtime] otto has no JIT, the jitless, compilation cache and flags options are ignored")
		}
		engine, err := otto.New(&otto.Option{Console: option.Console, Writer: option.Writer})
		if err != nil {
			return nil, err
		}
		return engine, nil
	}
	return nil, fmt.Errorf("unknown engine %q (%v)", option.Engine, Engines())
}
