package domain

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pluginscout.dev/pkg/pluginscout/internal/adapter"
	adaptermocks "pluginscout.dev/pkg/pluginscout/internal/adapter/mocks"
)

func TestWithLoader_UnloadsAfterCallback(t *testing.T) {
	module := adaptermocks.NewMockModule(t)
	module.EXPECT().Lookup("Capabilities").Return([]string{"A"}, nil).Once()
	module.EXPECT().Unload().Return(nil).Once()

	opener := adaptermocks.NewMockModuleOpener(t)
	opener.EXPECT().Open("/p/a.so").Return(module, nil).Once()

	loader := NewLockedLoader(NewSharedLock(), opener)

	got := WithLoader(loader, "/p/a.so", func(h *Handle) any {
		assert.True(t, h.Valid())
		assert.Equal(t, "/p/a.so", h.Path())

		value, err := h.Lookup("Capabilities")
		require.NoError(t, err)

		return value
	})

	assert.Equal(t, []string{"A"}, got)
}

func TestWithLoader_CallbackUnloadIsNotRepeated(t *testing.T) {
	module := adaptermocks.NewMockModule(t)
	module.EXPECT().Unload().Return(nil).Once()

	opener := adaptermocks.NewMockModuleOpener(t)
	opener.EXPECT().Open("/p/a.so").Return(module, nil).Once()

	loader := NewLockedLoader(NewSharedLock(), opener)

	WithLoader(loader, "/p/a.so", func(h *Handle) bool {
		require.NoError(t, h.Unload())
		assert.False(t, h.Valid())

		_, err := h.Lookup("Capabilities")
		assert.ErrorIs(t, err, ErrInvalidHandle)

		return true
	})
}

func TestWithLoader_OpenFailureYieldsInvalidHandle(t *testing.T) {
	opener := adaptermocks.NewMockModuleOpener(t)
	opener.EXPECT().Open("/p/broken.so").Return(nil, errors.New("bad ELF header")).Once()

	loader := NewLockedLoader(NewSharedLock(), opener)

	valid := WithLoader(loader, "/p/broken.so", func(h *Handle) bool {
		_, err := h.Lookup("Capabilities")
		assert.ErrorIs(t, err, ErrInvalidHandle)

		return h.Valid()
	})

	assert.False(t, valid)
}

func TestWithLoader_ReleasesLockOnPanic(t *testing.T) {
	lock := NewSharedLock()
	opener := newFakeOpener()
	opener.provide("/p/a.so", "A")

	loader := NewLockedLoader(lock, opener)

	assert.Panics(t, func() {
		WithLoader(loader, "/p/a.so", func(h *Handle) int { panic("query blew up") })
	})

	require.True(t, lock.mu.TryLock(), "lock must be released after a panic")
	lock.Unlock()
}

func TestWithLoader_SerializesCallers(t *testing.T) {
	opener := newFakeOpener()
	opener.provide("/p/a.so", "A")

	loader := NewLockedLoader(NewSharedLock(), opener)

	var (
		inside  atomic.Int32
		overlap atomic.Bool
		wg      sync.WaitGroup
	)

	for range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			WithLoader(loader, "/p/a.so", func(h *Handle) struct{} {
				if inside.Add(1) > 1 {
					overlap.Store(true)
				}

				inside.Add(-1)

				return struct{}{}
			})
		}()
	}

	wg.Wait()
	assert.False(t, overlap.Load())
	assert.Equal(t, 16, opener.openCount("/p/a.so"))
}

func TestNewLockedLoader_DefaultsToProcessLock(t *testing.T) {
	loader := NewLockedLoader(nil, newFakeOpener())
	assert.Same(t, ProcessLock(), loader.lock)
}

func TestQueryCapabilities_RecoversPanics(t *testing.T) {
	lock := NewSharedLock()
	opener := newFakeOpener()
	opener.provide("/p/a.so", "A")

	loader := NewLockedLoader(lock, opener)

	keys, ok := loader.QueryCapabilities("/p/a.so", func(h *Handle) ([]string, bool) {
		panic("corrupt module")
	})

	assert.False(t, ok)
	assert.Nil(t, keys)
	require.True(t, lock.mu.TryLock())
	lock.Unlock()
}

func TestSymbolQuery(t *testing.T) {
	list := []string{"A", "B"}

	tests := []struct {
		name   string
		value  any
		err    error
		want   []string
		wantOK bool
	}{
		{name: "function", value: func() []string { return []string{"A", "B"} }, want: list, wantOK: true},
		{name: "pointer to slice", value: &list, want: list, wantOK: true},
		{name: "slice", value: list, want: list, wantOK: true},
		{name: "nil pointer", value: (*[]string)(nil), wantOK: false},
		{name: "wrong type", value: 42, wantOK: false},
		{name: "missing symbol", err: adapter.ErrSymbolNotFound, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			module := adaptermocks.NewMockModule(t)
			module.EXPECT().Lookup("Capabilities").Return(tt.value, tt.err).Once()
			module.EXPECT().Unload().Return(nil).Once()

			opener := adaptermocks.NewMockModuleOpener(t)
			opener.EXPECT().Open("/p/a.so").Return(module, nil).Once()

			keys, ok := NewLockedLoader(NewSharedLock(), opener).
				QueryCapabilities("/p/a.so", SymbolQuery("Capabilities"))

			assert.Equal(t, tt.wantOK, ok)

			if tt.wantOK {
				assert.Equal(t, tt.want, keys)
			}
		})
	}
}

func TestSymbolQuery_InvalidHandle(t *testing.T) {
	keys, ok := SymbolQuery("Capabilities")(&Handle{path: "/p/missing.so"})
	assert.False(t, ok)
	assert.Nil(t, keys)
}
