package controller

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	m "pluginscout.dev/pkg/pluginscout/internal/model"
)

// SimpleUI implements UI using the cobra command's output.
type SimpleUI struct {
	cmd *cobra.Command
	cfg config
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, opts ...Option) *SimpleUI {
	return &SimpleUI{cmd: cmd, cfg: newConfig(opts)}
}

// DisplayEntries prints the cache contents as a table.
func (s *SimpleUI) DisplayEntries(ctx context.Context, entries []m.CacheEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderEntriesTable(entries))

	return nil
}

// DisplayResolution prints the module providing key.
func (s *SimpleUI) DisplayResolution(ctx context.Context, key string, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\t%s\n", key, path)

	return nil
}

// DisplayStatus prints a one line summary of the scan worker.
func (s *SimpleUI) DisplayStatus(ctx context.Context, status m.WorkerStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", formatStatus(status))

	return nil
}

// Watch prints a fresh table each time the cache contents change.
func (s *SimpleUI) Watch(ctx context.Context, source func() Snapshot) error {
	ticker := time.NewTicker(s.cfg.refresh)
	defer ticker.Stop()

	var last []m.CacheEntry

	printed := false

	for {
		snapshot := source()
		if !printed || !slices.Equal(last, snapshot.Entries) {
			s.printf("[%s] %s\n", time.Now().Format(time.TimeOnly), formatStatus(snapshot.Status))
			s.printf("%s\n", renderEntriesTable(snapshot.Entries))

			last = snapshot.Entries
			printed = true
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderEntriesTable(entries []m.CacheEntry) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Capability", "Provider"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	modules := make(map[string]struct{})

	for _, entry := range entries {
		table.Append([]string{entry.Key, entry.Path})

		modules[entry.Path] = struct{}{}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Keys %d", len(entries)),
		fmt.Sprintf("%d modules", len(modules)),
	})

	table.Render()

	return tableBuffer.String()
}

func formatStatus(status m.WorkerStatus) string {
	line := "worker " + status.State.String()

	if status.Current != "" {
		line += ", scanning " + status.Current
		if status.Stopping {
			line += " (stopping)"
		}
	}

	if n := len(status.Pending); n > 0 {
		line += fmt.Sprintf(", %d pending", n)
	}

	return line
}
