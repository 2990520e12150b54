//go:build linux || darwin || freebsd

package adapter

import (
	"fmt"
	"plugin"
)

// GoPluginOpener loads modules built with -buildmode=plugin.
type GoPluginOpener struct{}

// NewGoPluginOpener constructs a GoPluginOpener.
func NewGoPluginOpener() *GoPluginOpener {
	return &GoPluginOpener{}
}

// Open loads the shared object at path.
func (o *GoPluginOpener) Open(path string) (Module, error) {
	raw, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open plugin %s: %w", path, err)
	}

	return &goPluginModule{raw: raw}, nil
}

type goPluginModule struct {
	raw *plugin.Plugin
}

func (p *goPluginModule) Lookup(symbol string) (any, error) {
	sym, err := p.raw.Lookup(symbol)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}

	return sym, nil
}

// Unload is a no-op: the Go runtime never unloads a plugin once opened.
func (p *goPluginModule) Unload() error {
	return nil
}
