package toc

import (
	"errors"
	"time"

	"github.com/dop251/goja"
)

// jsTimeout toc.js 的最长执行时间
var jsTimeout = 5 * time.Second

// evalJSModule 以 CommonJS 方式执行 toc.js，返回 module.exports
func evalJSModule(name string, data []byte) (map[string]any, error) {
	vm := goja.New()
	module := vm.NewObject()
	exports := vm.NewObject()
	if err := module.Set("exports", exports); err != nil {
		return nil, err
	}
	if err := vm.Set("module", module); err != nil {
		return nil, err
	}
	if err := vm.Set("exports", exports); err != nil {
		return nil, err
	}

	timer := time.AfterFunc(jsTimeout, func() {
		vm.Interrupt("timeout")
	})
	defer timer.Stop()

	if _, err := vm.RunScript(name, string(data)); err != nil {
		return nil, err
	}

	value := module.Get("exports")
	if value == nil || goja.IsUndefined(value) || goja.IsNull(value) {
		return nil, errors.New("module.exports is empty")
	}
	raw, ok := value.Export().(map[string]any)
	if !ok {
		return nil, errors.New("module.exports must be an object keyed by language")
	}
	return raw, nil
}
