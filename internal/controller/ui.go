// Package controller renders plugin cache state for the terminal.
package controller

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	m "pluginscout.dev/pkg/pluginscout/internal/model"
)

const defaultRefreshInterval = 500 * time.Millisecond

// Snapshot is the cache state shown by Watch.
type Snapshot struct {
	Entries []m.CacheEntry
	Watched []string
	Status  m.WorkerStatus
}

// UI displays cache contents and lookups.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayEntries(ctx context.Context, entries []m.CacheEntry) error
	DisplayResolution(ctx context.Context, key string, path string) error
	DisplayStatus(ctx context.Context, status m.WorkerStatus) error
	// Watch redraws whatever source returns until ctx is done or the user
	// quits.
	Watch(ctx context.Context, source func() Snapshot) error
}

// Option configures a UI.
type Option func(*config)

type config struct {
	refresh time.Duration
}

// WithRefreshInterval sets how often Watch polls its source.
func WithRefreshInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.refresh = d
		}
	}
}

func newConfig(opts []Option) config {
	c := config{refresh: defaultRefreshInterval}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// NewUI returns the interactive TUI when attached to a terminal and the
// plain SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool, opts ...Option) UI {
	if isTTY {
		return NewTUI(cmd.OutOrStdout(), cmd.InOrStdin(), opts...)
	}

	return NewSimpleUI(cmd, opts...)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
