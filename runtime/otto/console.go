package otto

import (
	"github.com/robertkrimen/otto"
	"github.com/yaoapp/jsbench/runtime/console"
)

// setConsole replace the built-in otto console, it prints to os.Stdout unconditionally
func setConsole(vm *otto.Otto, printer *console.Printer) error {
	obj, err := vm.Object(`({})`)
	if err != nil {
		return err
	}

	write := func(call otto.FunctionCall) otto.Value {
		if !printer.Enabled() {
			return otto.UndefinedValue()
		}

		parts := make([]string, 0, len(call.ArgumentList))
		for _, arg := range call.ArgumentList {
			parts = append(parts, stringify(call.Otto, arg))
		}

		if err := printer.Print(parts...); err != nil {
			panic(call.Otto.MakeCustomError("ConsoleError", err.Error()))
		}
		return otto.UndefinedValue()
	}

	for _, name := range []string{"log", "info", "warn", "error"} {
		if err := obj.Set(name, write); err != nil {
			return err
		}
	}
	return vm.Set("console", obj)
}

func stringify(vm *otto.Otto, value otto.Value) string {
	if value.IsString() || value.IsUndefined() || value.IsFunction() {
		return value.String()
	}

	res, err := vm.Call("JSON.stringify", nil, value)
	if err != nil || !res.IsString() {
		return value.String()
	}
	return res.String()
}
