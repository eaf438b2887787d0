package v8

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/yaoapp/jsbench/runtime/console"
	"github.com/yaoapp/jsbench/runtime/v8/bridge"
	objconsole "github.com/yaoapp/jsbench/runtime/v8/objects/console"
	"github.com/yaoapp/jsbench/workload"
	"github.com/yaoapp/kun/log"
	"rogchap.com/v8go"
)

// New create a V8 engine, the caller owns it and must Close it
func New(option *Option) (*Engine, error) {
	if option == nil {
		option = &Option{}
	}
	option.Validate()

	err := SetFlags(option.V8Flags()...)
	if err != nil {
		return nil, err
	}

	iso := newIsolate()
	tmpl := v8go.NewObjectTemplate(iso)
	err = tmpl.Set("console", objconsole.New(console.New(option.mode, option.Writer)).ExportObject(iso))
	if err != nil {
		iso.Dispose()
		return nil, err
	}

	ctx := v8go.NewContext(iso, tmpl)
	log.Trace("[V8] engine created (console: %s, flags: %v)", option.Console, option.V8Flags())
	return &Engine{iso: iso, ctx: ctx, option: option}, nil
}

// Name the engine name
func (engine *Engine) Name() string {
	return Name
}

// Compile the workload and serialize the compiled script as a code cache
func (engine *Engine) Compile(w *workload.Workload) (*workload.Workload, error) {
	if engine.closed {
		return nil, fmt.Errorf("v8 engine was closed")
	}

	script, err := engine.iso.CompileUnboundScript(w.Source, w.Origin, v8go.CompileOptions{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", w.Origin, err)
	}

	cache := script.CreateCodeCache()
	log.Trace("[V8] %s compiled, code cache %s", w.Name, humanize.Bytes(uint64(len(cache.Bytes))))
	return w.Compiled(Name, cache.Bytes, nil), nil
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
	return bridge.GoValue(value)
}

// Rejected the number of code caches V8 refused to consume
func (engine *Engine) Rejected() int {
	return engine.rejected
}

// Close dispose the context and the isolate
func (engine *Engine) Close() error {
	if engine.closed {
		return nil
	}

	stat := engine.iso.GetHeapStatistics()
	log.Trace("[V8] engine closed (used heap: %s, total heap: %s)", humanize.Bytes(stat.UsedHeapSize), humanize.Bytes(stat.TotalHeapSize))

	engine.ctx.Close()
	engine.iso.Dispose()
	engine.closed = true
	return nil
}

func (engine *Engine) run(w *workload.Workload) (*v8go.Value, error) {
	if engine.closed {
		return nil, fmt.Errorf("v8 engine was closed")
	}

	if w.Kind == workload.Source {
		value, err := engine.ctx.RunScript(w.Source, w.Origin)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", w.Origin, err)
		}
		return value, nil
	}

	if !w.IsCompiled(Name) {
		return nil, fmt.Errorf("%s was compiled by %s, not %s", w.Name, w.Engine, Name)
	}

	cached := &v8go.CompilerCachedData{Bytes: w.Bytes}
	script, err := engine.iso.CompileUnboundScript(w.Source, w.Origin, v8go.CompileOptions{CachedData: cached})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", w.Origin, err)
	}

	if cached.Rejected {
		engine.rejected++
		if engine.rejected == 1 {
			log.Warn("[V8] the code cache of %s was rejected, the script was compiled from source", w.Name)
		}
	}

	value, err := script.Run(engine.ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", w.Origin, err)
	}
	return value, nil
}
