//go:build wasm

package internal

import "sync"

// wasm is single-threaded, one shared runtime is enough
var (
	once          sync.Once
	globalRuntime *Runtime
)

func GetRuntime() *Runtime {
	once.Do(func() { globalRuntime = NewRuntime() })
	return globalRuntime
}
