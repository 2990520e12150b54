package adapter

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
	m "pluginscout.dev/pkg/pluginscout/internal/model"
)

// ManifestSuffix is appended to a module path to locate its manifest.
const ManifestSuffix = ".yaml"

// DefaultCapabilitySymbol is the symbol under which modules export their
// capability list.
const DefaultCapabilitySymbol = "Capabilities"

// ManifestOpener treats a module as present when its file exists and reads
// its capabilities from the sidecar manifest <module>.yaml. It lets hosts
// that cannot load native code (or tests) exercise the cache.
type ManifestOpener struct {
	symbol string
}

// NewManifestOpener constructs a ManifestOpener that exposes capabilities
// under symbol. An empty symbol selects DefaultCapabilitySymbol.
func NewManifestOpener(symbol string) *ManifestOpener {
	if symbol == "" {
		symbol = DefaultCapabilitySymbol
	}

	return &ManifestOpener{symbol: symbol}
}

// Open validates the module file and parses its manifest.
func (o *ManifestOpener) Open(path string) (Module, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat module: %w", err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrNotAModule, path)
	}

	manifest, err := LoadManifest(path + ManifestSuffix)
	if err != nil {
		return nil, err
	}

	return &manifestModule{symbol: o.symbol, manifest: manifest}, nil
}

// LoadManifest reads and strictly decodes a capability manifest. Unknown
// keys are rejected so typos do not silently drop capabilities.
func LoadManifest(path string) (*m.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var manifest m.Manifest

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&manifest); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}

	if len(manifest.Capabilities) == 0 {
		return nil, fmt.Errorf("manifest %s missing required field: capabilities", path)
	}

	return &manifest, nil
}

type manifestModule struct {
	symbol   string
	manifest *m.Manifest
	unloaded bool
}

func (mm *manifestModule) Lookup(symbol string) (any, error) {
	if mm.unloaded || symbol != mm.symbol {
		return nil, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
	}

	return slices.Clone(mm.manifest.Capabilities), nil
}

func (mm *manifestModule) Unload() error {
	mm.unloaded = true
	return nil
}
