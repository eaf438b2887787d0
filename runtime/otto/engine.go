// Package otto runs the workloads on github.com/robertkrimen/otto, a pure Go
// ES5 interpreter. It has no JIT and no serialized compiled form, a compiled
// workload holds the parsed *otto.Script.
package otto

import (
	"fmt"
	"io"

	"github.com/robertkrimen/otto"
	"github.com/yaoapp/jsbench/runtime/console"
	"github.com/yaoapp/jsbench/workload"
	"github.com/yaoapp/kun/log"
)

// Name the engine name
const Name = "otto"

// Option runtime option
type Option struct {
	Console string    `json:"console,omitempty" yaml:"console,omitempty"`
	Writer  io.Writer `json:"-" yaml:"-"`
}

// Engine an otto vm
type Engine struct {
	vm     *otto.Otto
	closed bool
}

// New create an otto engine
func New(option *Option) (*Engine, error) {
	if option == nil {
		option = &Option{}
	}

	mode, err := console.ParseMode(option.Console)
	if err != nil {
		log.Warn("[otto] %s, use silent", err.Error())
	}

	vm := otto.New()
	err = setConsole(vm, console.New(mode, option.Writer))
	if err != nil {
		return nil, err
	}

	log.Trace("[otto] engine created (console: %s)", mode)
	return &Engine{vm: vm}, nil
}

// Name the engine name
func (engine *Engine) Name() string {
	return Name
}

// Compile parse the workload once
func (engine *Engine) Compile(w *workload.Workload) (*workload.Workload, error) {
	if engine.closed {
		return nil, fmt.Errorf("otto engine was closed")
	}

	script, err := engine.vm.Compile(w.Origin, w.Source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", w.Origin, err)
	}
	return w.Compiled(Name, nil, script), nil
}

// Exec run the workload once and drop the result
func (engine *Engine) Exec(w *workload.Workload) error {
	_, err := engine.run(w)
	return err
}

// Eval run the workload once and return the completion value
func (engine *Engine) Eval(w *workload.Workload) (interface{}, error) {
	value, err := engine.run(w)
	if err != nil {
		return nil, err
	}
	return value.Export()
}

// Close release the vm
func (engine *Engine) Close() error {
	engine.vm = nil
	engine.closed = true
	return nil
}

func (engine *Engine) run(w *workload.Workload) (otto.Value, error) {
	if engine.closed {
		return otto.UndefinedValue(), fmt.Errorf("otto engine was closed")
	}

	var src interface{} = w.Source
	if w.Kind == workload.Compiled {
		script, ok := w.Program.(*otto.Script)
		if !ok || !w.IsCompiled(Name) {
			return otto.UndefinedValue(), fmt.Errorf("%s was compiled by %s, not %s", w.Name, w.Engine, Name)
		}
		src = script
	}

	value, err := engine.vm.Run(src)
	if err != nil {
		return otto.UndefinedValue(), fmt.Errorf("%s: %w", w.Origin, err)
	}
	return value, nil
}
