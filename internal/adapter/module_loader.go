package adapter

import "errors"

var (
	// ErrSymbolNotFound is returned by Module.Lookup for unknown symbols.
	ErrSymbolNotFound = errors.New("symbol not found")
	// ErrPluginsUnsupported is returned by GoPluginOpener on platforms without
	// Go plugin support.
	ErrPluginsUnsupported = errors.New("go plugins are not supported on this platform")
	// ErrNotAModule is returned when a candidate path is not a regular file.
	ErrNotAModule = errors.New("not a module file")
)

// Module is a loaded plugin module.
type Module interface {
	// Lookup returns an exported symbol of the module.
	Lookup(symbol string) (any, error)
	// Unload releases the module. Calling it twice is allowed.
	Unload() error
}

// ModuleOpener loads modules from disk. Implementations are not required to
// be reentrant; callers serialize access through a shared lock.
type ModuleOpener interface {
	Open(path string) (Module, error)
}
