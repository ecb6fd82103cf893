package context

import (
	"sync"
)

// globalContext holds the singleton instance of the process context
var globalContext *ProcessContext

// globalContextMu protects access to the global context instance
var globalContextMu sync.RWMutex

// globalContextOnce ensures singleton initialization happens only once
var globalContextOnce sync.Once

// GetGlobalContext returns the process context singleton in a thread-safe manner.
// If none has been set, it creates an unconfigured one.
func GetGlobalContext() *ProcessContext {
	globalContextOnce.Do(func() {
		globalContextMu.Lock()
		defer globalContextMu.Unlock()
		if globalContext == nil {
			globalContext = New()
		}
	})

	globalContextMu.RLock()
	defer globalContextMu.RUnlock()
	return globalContext
}

// SetGlobalContext replaces the process context singleton, typically once at startup after the
// role is known.
func SetGlobalContext(ctx *ProcessContext) {
	globalContextMu.Lock()
	defer globalContextMu.Unlock()
	globalContext = ctx
}

// ResetGlobalContext clears the singleton. Tests use it for a clean state.
func ResetGlobalContext() {
	globalContextMu.Lock()
	defer globalContextMu.Unlock()
	if globalContext != nil {
		globalContext.Close()
	}
	globalContext = nil
	globalContextOnce = sync.Once{}
}
