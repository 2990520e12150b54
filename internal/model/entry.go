// Package model defines the data structures shared by the plugin name cache.
package model

// CacheEntry maps a capability key to the module that provides it.
type CacheEntry struct {
	Key  string `json:"key" yaml:"key"`
	Path string `json:"path" yaml:"path"`
}

// DirInfo describes a plugin directory as seen by the resolver.
type DirInfo struct {
	Exists   bool
	Writable bool
}

// Manifest is the sidecar capability list read by the manifest loader.
type Manifest struct {
	Name         string   `yaml:"name"`
	Version      string   `yaml:"version"`
	Capabilities []string `yaml:"capabilities"`
}
