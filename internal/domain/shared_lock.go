// Package domain implements the plugin discovery cache: a capability key to
// module path map kept current by directory scans.
package domain

import "sync"

// SharedLock serializes module loading and cache state. Every LockedLoader,
// scan worker and cache built against the same SharedLock excludes the
// others, because module loaders are rarely safe to call concurrently.
type SharedLock struct {
	mu sync.Mutex
}

var processLock = &SharedLock{}

// ProcessLock returns the lock shared by the whole process. It is the
// default for components that are not given one.
func ProcessLock() *SharedLock {
	return processLock
}

// NewSharedLock returns a lock independent from ProcessLock.
func NewSharedLock() *SharedLock {
	return &SharedLock{}
}

// Lock acquires the lock.
func (l *SharedLock) Lock() {
	l.mu.Lock()
}

// Unlock releases the lock.
func (l *SharedLock) Unlock() {
	l.mu.Unlock()
}
