package domain

import (
	"log/slog"
	"runtime"
	"slices"
	"strings"

	m "pluginscout.dev/pkg/pluginscout/internal/model"
)

// entryStore is the capability key to module path map. Every access goes
// through the shared lock.
type entryStore struct {
	lock     *SharedLock
	entries  map[string]string
	foldCase bool
}

func newEntryStore(lock *SharedLock) *entryStore {
	return &entryStore{
		lock:     lock,
		entries:  make(map[string]string),
		foldCase: caseInsensitivePaths(runtime.GOOS),
	}
}

func caseInsensitivePaths(goos string) bool {
	return goos == "windows" || goos == "darwin"
}

func (s *entryStore) find(key string) string {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.entries[key]
}

// insert maps every key to path unless the key already has a provider.
// cancelled is checked under the lock; when it reports true nothing is
// inserted and insert returns false.
func (s *entryStore) insert(keys []string, path string, cancelled func() bool) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if cancelled != nil && cancelled() {
		return false
	}

	for _, key := range keys {
		if existing, ok := s.entries[key]; ok {
			if existing != path {
				slog.Debug("Capability already provided", "key", key, "provider", existing, "ignored", path)
			}

			continue
		}

		s.entries[key] = path
	}

	return true
}

func (s *entryStore) remove(key string) bool {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.entries[key]; !ok {
		return false
	}

	delete(s.entries, key)

	return true
}

// removePrefix drops every entry whose path starts with prefix and returns
// how many were dropped.
func (s *entryStore) removePrefix(prefix string) int {
	s.lock.Lock()
	defer s.lock.Unlock()

	removed := 0

	for key, path := range s.entries {
		if hasPathPrefix(path, prefix, s.foldCase) {
			delete(s.entries, key)
			removed++
		}
	}

	return removed
}

func (s *entryStore) snapshot() []m.CacheEntry {
	s.lock.Lock()
	defer s.lock.Unlock()

	entries := make([]m.CacheEntry, 0, len(s.entries))
	for key, path := range s.entries {
		entries = append(entries, m.CacheEntry{Key: key, Path: path})
	}

	slices.SortFunc(entries, func(a, b m.CacheEntry) int {
		return strings.Compare(a.Key, b.Key)
	})

	return entries
}

func hasPathPrefix(path, prefix string, foldCase bool) bool {
	if len(path) < len(prefix) {
		return false
	}

	if foldCase {
		return strings.EqualFold(path[:len(prefix)], prefix)
	}

	return path[:len(prefix)] == prefix
}
