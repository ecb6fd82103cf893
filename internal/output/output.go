package output

import "sync"

var (
	globalPrinter = NewPrinter()
	globalMu      sync.RWMutex
)

// SetGlobalPrinter replaces the printer used by the package-level helpers.
func SetGlobalPrinter(printer *Printer) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalPrinter = printer
}

// GetGlobalPrinter returns the printer used by the package-level helpers.
func GetGlobalPrinter() *Printer {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalPrinter
}

// ConfigureGlobal replaces the global printer with one built from options.
func ConfigureGlobal(options ...Option) {
	SetGlobalPrinter(NewPrinter(options...))
}

func Print(text string) { GetGlobalPrinter().Print(text) }

func Printf(format string, args ...interface{}) { GetGlobalPrinter().Printf(format, args...) }

func Println(text string) { GetGlobalPrinter().Println(text) }

func Info(text string) { GetGlobalPrinter().Info(text) }

func Success(text string) { GetGlobalPrinter().Success(text) }

func Warning(text string) { GetGlobalPrinter().Warning(text) }

func Error(text string) { GetGlobalPrinter().Error(text) }

func JSON(v interface{}) error { return GetGlobalPrinter().JSON(v) }
