package domain

import (
	"fmt"
	"io/fs"
	"path"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pluginscout.dev/pkg/pluginscout/internal/adapter"
	m "pluginscout.dev/pkg/pluginscout/internal/model"
)

// fakePluginFS is an in-memory PluginFSAdapter keyed by '/' directories.
type fakePluginFS struct {
	mu       sync.Mutex
	dirs     map[string][]string
	readOnly map[string]bool
	listed   []string
	listHook func(dir string)
}

func newFakePluginFS() *fakePluginFS {
	return &fakePluginFS{
		dirs:     make(map[string][]string),
		readOnly: make(map[string]bool),
	}
}

func (f *fakePluginFS) put(dir string, names ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.dirs[dir] = append(f.dirs[dir], names...)
}

func (f *fakePluginFS) replace(dir string, names ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.dirs[dir] = names
}

func (f *fakePluginFS) drop(dir string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.dirs, dir)
}

func (f *fakePluginFS) setListHook(hook func(dir string)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.listHook = hook
}

func (f *fakePluginFS) listCount(dir string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0

	for _, listed := range f.listed {
		if listed == dir {
			count++
		}
	}

	return count
}

func (f *fakePluginFS) ListCandidates(dir string, pattern string) ([]string, error) {
	f.mu.Lock()
	f.listed = append(f.listed, dir)
	names, ok := f.dirs[dir]
	names = slices.Clone(names)
	hook := f.listHook
	f.mu.Unlock()

	if hook != nil {
		hook(dir)
	}

	if !ok {
		return nil, fmt.Errorf("read plugin dir: %w", fs.ErrNotExist)
	}

	slices.Sort(names)

	var files []string

	for _, name := range names {
		if matched, _ := path.Match(pattern, name); matched {
			files = append(files, dir+name)
		}
	}

	return files, nil
}

func (f *fakePluginFS) DirInfo(dir string) (m.DirInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.dirs[dir]; !ok {
		return m.DirInfo{}, nil
	}

	return m.DirInfo{Exists: true, Writable: !f.readOnly[dir]}, nil
}

// fakeOpener serves modules whose capabilities are set per path.
type fakeOpener struct {
	mu       sync.Mutex
	modules  map[string][]string
	opened   []string
	openHook func(path string)
}

func newFakeOpener() *fakeOpener {
	return &fakeOpener{modules: make(map[string][]string)}
}

func (o *fakeOpener) provide(path string, keys ...string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.modules[path] = keys
}

func (o *fakeOpener) openCount(path string) int {
	o.mu.Lock()
	defer o.mu.Unlock()

	count := 0

	for _, opened := range o.opened {
		if opened == path {
			count++
		}
	}

	return count
}

func (o *fakeOpener) Open(path string) (adapter.Module, error) {
	o.mu.Lock()
	o.opened = append(o.opened, path)
	keys, ok := o.modules[path]
	hook := o.openHook
	o.mu.Unlock()

	if hook != nil {
		hook(path)
	}

	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}

	return &fakeModule{keys: keys}, nil
}

type fakeModule struct {
	keys     []string
	unloaded bool
}

func (fm *fakeModule) Lookup(symbol string) (any, error) {
	if symbol != adapter.DefaultCapabilitySymbol {
		return nil, fmt.Errorf("%w: %s", adapter.ErrSymbolNotFound, symbol)
	}

	return fm.keys, nil
}

func (fm *fakeModule) Unload() error {
	fm.unloaded = true
	return nil
}

type cacheFixture struct {
	fs     *fakePluginFS
	opener *fakeOpener
	opts   Options
	cache  Cache
}

// newCacheFixture builds a cache over in-memory collaborators with a private
// lock so tests do not contend on ProcessLock.
func newCacheFixture(t *testing.T, configure func(opts *Options)) *cacheFixture {
	t.Helper()

	f := &cacheFixture{fs: newFakePluginFS(), opener: newFakeOpener()}
	f.opts = Options{
		FilenameFilter: func() string { return "*.so" },
		Opener:         f.opener,
		Query:          SymbolQuery(adapter.DefaultCapabilitySymbol),
		FS:             f.fs,
		Lock:           NewSharedLock(),
		CancelTimeout:  time.Second,
	}

	if configure != nil {
		configure(&f.opts)
	}

	cache, err := NewCache(f.opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	f.cache = cache

	return f
}
