package console

import (
	"github.com/yaoapp/jsbench/runtime/console"
	"github.com/yaoapp/jsbench/runtime/v8/bridge"
	"github.com/yaoapp/kun/log"
	"rogchap.com/v8go"
)

// Object Javascript API
type Object struct {
	printer *console.Printer
}

// New create a new Console Object
func New(printer *console.Printer) *Object {
	if printer == nil {
		printer = console.New(console.Silent, nil)
	}
	return &Object{printer: printer}
}

// ExportObject Export as a Console Object
// console.log("name", {"foo":"bar"} )
func (obj *Object) ExportObject(iso *v8go.Isolate) *v8go.ObjectTemplate {
	tmpl := v8go.NewObjectTemplate(iso)
	tmpl.Set("log", obj.print(iso))
	tmpl.Set("info", obj.print(iso))
	tmpl.Set("warn", obj.print(iso))
	tmpl.Set("error", obj.print(iso))
	return tmpl
}

// Set new obj instance
func (obj *Object) Set(name string, ctx *v8go.Context) error {
	instance, err := obj.ExportObject(ctx.Isolate()).NewInstance(ctx)
	if err != nil {
		return err
	}
	return ctx.Global().Set(name, instance)
}

func (obj *Object) print(iso *v8go.Isolate) *v8go.FunctionTemplate {
	return v8go.NewFunctionTemplate(iso, func(info *v8go.FunctionCallbackInfo) *v8go.Value {
		if !obj.printer.Enabled() {
			return v8go.Undefined(iso)
		}

		args := info.Args()
		parts := make([]string, 0, len(args))
		for _, arg := range args {
			parts = append(parts, bridge.Stringify(info.Context(), arg))
		}

		if err := obj.printer.Print(parts...); err != nil {
			log.Error("[V8] console: %s", err.Error())
			return bridge.JsException(info.Context(), err.Error())
		}
		return v8go.Undefined(iso)
	})
}
