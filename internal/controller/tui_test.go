package controller

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "pluginscout.dev/pkg/pluginscout/internal/model"
)

func TestTUI_DisplayEntries(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf, nil)
	require.NoError(t, ui.DisplayEntries(context.Background(), sampleEntries()))

	assert.Contains(t, buf.String(), "Plugin capabilities")
	assert.Contains(t, buf.String(), "/plugins/alpha.so")
}

func TestTUI_DisplayResolution(t *testing.T) {
	var buf bytes.Buffer

	ui := NewTUI(&buf, nil)
	require.NoError(t, ui.DisplayResolution(context.Background(), "A", "/plugins/alpha.so"))

	assert.Contains(t, buf.String(), "A")
	assert.Contains(t, buf.String(), "/plugins/alpha.so")
}

func TestWatchModel_RefreshPullsSnapshot(t *testing.T) {
	calls := 0
	source := func() Snapshot {
		calls++
		if calls == 1 {
			return Snapshot{}
		}

		return Snapshot{
			Entries: sampleEntries(),
			Watched: []string{"/plugins/"},
			Status:  m.WorkerStatus{State: m.Running, Current: "/plugins/"},
		}
	}

	model := newWatchModel(source, defaultRefreshInterval)
	assert.Contains(t, model.View(), "TOTAL KEYS 0")

	updated, cmd := model.Update(refreshMsg{})
	assert.NotNil(t, cmd, "refresh schedules the next tick")

	view := updated.View()
	assert.Contains(t, view, "TOTAL KEYS 3")
	assert.Contains(t, view, "watching /plugins/")
	assert.Contains(t, view, "scanning /plugins/")
	assert.Equal(t, 2, calls)
}

func TestWatchModel_QuitKeys(t *testing.T) {
	keys := []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune("q")},
	}

	for _, key := range keys {
		t.Run(key.String(), func(t *testing.T) {
			model := newWatchModel(func() Snapshot { return Snapshot{} }, defaultRefreshInterval)

			updated, cmd := model.Update(key)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, updated.View())
		})
	}
}

func TestWatchModel_IgnoresOtherKeys(t *testing.T) {
	model := newWatchModel(func() Snapshot { return Snapshot{} }, defaultRefreshInterval)

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
	assert.NotEmpty(t, updated.View())
}
