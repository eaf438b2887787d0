// Package workload holds the scripts a benchmark session executes, either as
// raw source text or as a form compiled by an engine.
package workload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/yaoapp/jsbench/runtime/transform"
	"github.com/yaoapp/kun/log"
)

// Kind the workload representation
type Kind uint8

const (
	// Source raw script text, parsed on every execution
	Source Kind = iota

	// Compiled the form an engine produced from the source
	Compiled
)

// ErrOpen the workload file could not be opened
var ErrOpen = fmt.Errorf("failed to open file")

// Workload a unit of script logic
type Workload struct {
	Name    string
	Origin  string
	Kind    Kind
	Source  string
	Engine  string      // the engine that produced the compiled form
	Bytes   []byte      // the serialized compiled form, if the engine has one
	Program interface{} // the in-memory compiled form, if the engine has one
}

// New create a source workload
func New(name string, origin string, source string) *Workload {
	if origin == "" {
		origin = name + ".js"
	}
	return &Workload{Name: name, Origin: origin, Kind: Source, Source: source}
}

// Load read the workload from a file, TypeScript files are transformed first
func Load(file string) (*Workload, error) {
	source, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (%s)", ErrOpen, file, err.Error())
	}

	code := string(source)
	if strings.HasSuffix(file, ".ts") {
		code, err = transform.TypeScript(code, api.TransformOptions{})
		if err != nil {
			return nil, fmt.Errorf("%s %s", file, err.Error())
		}
	}

	name := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	log.Trace("[workload] %s loaded from %s", name, file)
	return New(name, filepath.Base(file), code), nil
}

// Compiled returns the compiled variant of the workload, the source is kept
// because some engines validate the compiled form against it
func (w *Workload) Compiled(engine string, bytes []byte, program interface{}) *Workload {
	return &Workload{
		Name:    w.Name,
		Origin:  w.Origin,
		Kind:    Compiled,
		Source:  w.Source,
		Engine:  engine,
		Bytes:   bytes,
		Program: program,
	}
}

// IsCompiled check if the workload was compiled by the given engine
func (w *Workload) IsCompiled(engine string) bool {
	return w.Kind == Compiled && w.Engine == engine
}

// String the workload kind
func (kind Kind) String() string {
	switch kind {
	case Source:
		return "source"
	case Compiled:
		return "compiled"
	}
	return fmt.Sprintf("kind(%d)", uint8(kind))
}
