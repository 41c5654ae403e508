package share

import "sync/atomic"

var debug atomic.Bool

// SetDebug 设置全局 debug 模式
func SetDebug(on bool) {
	debug.Store(on)
}

// GetDebug 返回是否处于 debug 模式
func GetDebug() bool {
	return debug.Load()
}
