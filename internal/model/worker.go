package model

// WorkerState is the lifecycle state of the scan worker.
type WorkerState int

const (
	// Idle means no scan is running and the queue is empty.
	Idle WorkerState = iota
	// Running means a scan is in progress or queued work is being drained.
	Running
	// ForceStopped means the last scan did not stop within the cancel timeout
	// and its goroutine was detached.
	ForceStopped
)

func (s WorkerState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case ForceStopped:
		return "force-stopped"
	default:
		return "unknown"
	}
}

// WorkerStatus is a point-in-time view of the scan worker.
type WorkerStatus struct {
	State    WorkerState
	Current  string
	Pending  []string
	Stopping bool
}
