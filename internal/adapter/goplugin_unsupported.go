//go:build !(linux || darwin || freebsd)

package adapter

import "fmt"

// GoPluginOpener loads modules built with -buildmode=plugin.
type GoPluginOpener struct{}

// NewGoPluginOpener constructs a GoPluginOpener.
func NewGoPluginOpener() *GoPluginOpener {
	return &GoPluginOpener{}
}

// Open always fails on this platform.
func (o *GoPluginOpener) Open(path string) (Module, error) {
	return nil, fmt.Errorf("open plugin %s: %w", path, ErrPluginsUnsupported)
}
