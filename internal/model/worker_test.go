package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWorkerState_String(t *testing.T) {
	tests := []struct {
		state WorkerState
		want  string
	}{
		{Idle, "idle"},
		{Running, "running"},
		{ForceStopped, "force-stopped"},
		{WorkerState(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}
