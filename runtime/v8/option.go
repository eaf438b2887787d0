package v8

import (
	"fmt"
	"strings"
	"sync"

	"github.com/yaoapp/jsbench/runtime/console"
	"github.com/yaoapp/kun/log"
	"rogchap.com/v8go"
)

var flags = struct {
	sync.Mutex
	applied  []string
	isolates int
}{}

// Validate the option
func (option *Option) Validate() {

	mode, err := console.ParseMode(option.Console)
	if err != nil {
		log.Warn("[V8] %s, use silent", err.Error())
	}
	option.mode = mode
	option.Console = string(mode)

	for i, flag := range option.Flags {
		if !strings.HasPrefix(flag, "--") {
			log.Warn("[V8] the flag %s should be prefixed with --", flag)
			option.Flags[i] = "--" + strings.TrimLeft(flag, "-")
		}
	}
}

// V8Flags the flags the option asks for
func (option *Option) V8Flags() []string {
	res := []string{}
	if option.Jitless {
		res = append(res, "--jitless")
	}
	if !option.CompilationCache {
		res = append(res, "--no-compilation-cache")
	}
	return append(res, option.Flags...)
}

// SetFlags set the V8 flags. V8 flags are process wide and can not be changed
// once an isolate was created, the same flags may be set again
func SetFlags(values ...string) error {
	flags.Lock()
	defer flags.Unlock()

	if len(values) == 0 {
		return nil
	}

	if flags.isolates > 0 {
		if strings.Join(values, " ") == strings.Join(flags.applied, " ") {
			return nil
		}
		return fmt.Errorf("v8 flags %v can not be set after an isolate was created (applied: %v)", values, flags.applied)
	}

	log.Trace("[V8] set flags %v", values)
	v8go.SetFlags(values...)
	flags.applied = append([]string{}, values...)
	return nil
}

func newIsolate() *v8go.Isolate {
	flags.Lock()
	defer flags.Unlock()
	flags.isolates++
	return v8go.NewIsolate()
}
