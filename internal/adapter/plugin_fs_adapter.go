// Package adapter contains the filesystem, module loading and directory
// watching collaborators used by the plugin name cache.
package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	m "pluginscout.dev/pkg/pluginscout/internal/model"
)

// ErrInvalidPattern is returned when a filename filter is not a valid glob.
var ErrInvalidPattern = errors.New("invalid filename filter")

// PluginFSAdapter hides directory access from the domain layer so scans can
// be tested without touching the disk.
type PluginFSAdapter interface {
	// ListCandidates returns dir+name for every regular file in dir whose
	// base name matches pattern, sorted by name. dir uses '/' separators and
	// ends with '/'.
	ListCandidates(dir string, pattern string) ([]string, error)

	// DirInfo reports whether dir exists and whether it can be written to.
	DirInfo(dir string) (m.DirInfo, error)
}

// LocalPluginFSAdapter is the os-backed PluginFSAdapter.
type LocalPluginFSAdapter struct{}

// NewLocalPluginFSAdapter constructs a LocalPluginFSAdapter.
func NewLocalPluginFSAdapter() *LocalPluginFSAdapter {
	return &LocalPluginFSAdapter{}
}

// ListCandidates lists plugin candidates in dir. os.ReadDir sorts by name, so
// the result order is lexical on every platform.
func (a *LocalPluginFSAdapter) ListCandidates(dir string, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}

	entries, err := os.ReadDir(filepath.FromSlash(dir))
	if err != nil {
		return nil, fmt.Errorf("read plugin dir: %w", err)
	}

	prefix := dir
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	candidates := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matched, matchErr := doublestar.Match(pattern, entry.Name())
		if matchErr != nil || !matched {
			continue
		}

		// Resolve symlinks so only regular files are offered to the loader.
		info, statErr := os.Stat(filepath.Join(filepath.FromSlash(dir), entry.Name()))
		if statErr != nil || !info.Mode().IsRegular() {
			continue
		}

		candidates = append(candidates, prefix+entry.Name())
	}

	return candidates, nil
}

// DirInfo stats dir and probes write access.
func (a *LocalPluginFSAdapter) DirInfo(dir string) (m.DirInfo, error) {
	osPath := filepath.FromSlash(dir)

	info, err := os.Stat(osPath)
	if err != nil {
		if os.IsNotExist(err) {
			return m.DirInfo{}, nil
		}

		return m.DirInfo{}, fmt.Errorf("stat plugin dir: %w", err)
	}

	if !info.IsDir() {
		return m.DirInfo{}, nil
	}

	return m.DirInfo{Exists: true, Writable: isWritable(osPath, info)}, nil
}
