package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"pluginscout.dev/pkg/pluginscout/internal/adapter"
)

// ErrInvalidHandle is returned by Handle.Lookup when the module failed to
// load or was already unloaded.
var ErrInvalidHandle = errors.New("invalid module handle")

// Handle is a module opened by a LockedLoader. It is only usable inside the
// callback it was passed to.
type Handle struct {
	path     string
	module   adapter.Module
	unloaded bool
}

// Path returns the module path the handle was opened for.
func (h *Handle) Path() string {
	return h.path
}

// Valid reports whether the module is loaded.
func (h *Handle) Valid() bool {
	return h.module != nil && !h.unloaded
}

// Lookup resolves an exported symbol of the module.
func (h *Handle) Lookup(symbol string) (any, error) {
	if !h.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidHandle, h.path)
	}

	return h.module.Lookup(symbol)
}

// Unload releases the module early. The loader skips its own unload
// afterwards.
func (h *Handle) Unload() error {
	if !h.Valid() {
		return nil
	}

	h.unloaded = true

	return h.module.Unload()
}

// LockedLoader opens modules one at a time under a SharedLock.
type LockedLoader struct {
	lock   *SharedLock
	opener adapter.ModuleOpener
}

// NewLockedLoader constructs a LockedLoader. A nil lock selects ProcessLock.
func NewLockedLoader(lock *SharedLock, opener adapter.ModuleOpener) *LockedLoader {
	if lock == nil {
		lock = ProcessLock()
	}

	return &LockedLoader{lock: lock, opener: opener}
}

// WithLoader opens the module at path, passes it to fn and unloads it
// afterwards unless fn already did. The shared lock is held for the whole
// call and released on every exit path, panics included. A module that
// fails to open is passed as an invalid Handle. fn must not call back into
// anything guarded by the same lock.
func WithLoader[T any](l *LockedLoader, path string, fn func(h *Handle) T) T {
	l.lock.Lock()
	defer l.lock.Unlock()

	h := l.open(path)
	defer l.release(h)

	return fn(h)
}

// QueryCapabilities runs query against the module at path. A panicking
// query is reported as a failed load.
func (l *LockedLoader) QueryCapabilities(path string, query CapabilityQuery) (keys []string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("Plugin capability query panicked", "path", path, "panic", r)

			keys, ok = nil, false
		}
	}()

	type result struct {
		keys []string
		ok   bool
	}

	res := WithLoader(l, path, func(h *Handle) result {
		k, found := query(h)
		return result{keys: k, ok: found}
	})

	return res.keys, res.ok
}

func (l *LockedLoader) open(path string) *Handle {
	module, err := l.opener.Open(path)
	if err != nil {
		slog.Debug("Failed to load plugin module", "path", path, "error", err)
		return &Handle{path: path}
	}

	return &Handle{path: path, module: module}
}

func (l *LockedLoader) release(h *Handle) {
	if err := h.Unload(); err != nil {
		slog.Debug("Failed to unload plugin module", "path", h.path, "error", err)
	}
}

// CapabilityQuery extracts the capability keys a module provides. ok is
// false when the module provides nothing, including when h is invalid.
type CapabilityQuery func(h *Handle) (keys []string, ok bool)

// SymbolQuery reads the capability list from an exported symbol of type
// func() []string, *[]string or []string.
func SymbolQuery(symbol string) CapabilityQuery {
	return func(h *Handle) ([]string, bool) {
		if !h.Valid() {
			return nil, false
		}

		value, err := h.Lookup(symbol)
		if err != nil {
			slog.Debug("Plugin does not export capabilities", "path", h.Path(), "symbol", symbol, "error", err)
			return nil, false
		}

		switch v := value.(type) {
		case func() []string:
			return slices.Clone(v()), true
		case *[]string:
			if v == nil {
				return nil, false
			}

			return slices.Clone(*v), true
		case []string:
			return slices.Clone(v), true
		default:
			slog.Debug("Unexpected capability symbol type", "path", h.Path(), "symbol", symbol, "type", fmt.Sprintf("%T", value))
			return nil, false
		}
	}
}
