package domain

import (
	"context"
	"log/slog"
	"slices"

	m "pluginscout.dev/pkg/pluginscout/internal/model"
)

// inlineWorker scans on the caller's goroutine. It has no queue: Enqueue
// returns once the scan is done. A directory already being scanned by
// another caller is not scanned twice.
type inlineWorker struct {
	lock   *SharedLock
	scan   func(run *scanRun)
	active map[string]*scanRun
	closed bool
}

func newInlineWorker(lock *SharedLock, scan func(run *scanRun)) *inlineWorker {
	return &inlineWorker{
		lock:   lock,
		scan:   scan,
		active: make(map[string]*scanRun),
	}
}

func (w *inlineWorker) Enqueue(dir string) {
	w.lock.Lock()

	if w.closed {
		w.lock.Unlock()
		slog.Debug("Ignoring scan request after stop", "dir", dir)

		return
	}

	if _, busy := w.active[dir]; busy {
		w.lock.Unlock()
		return
	}

	run := newScanRun(dir)
	w.active[dir] = run
	w.lock.Unlock()

	defer w.finish(run)

	w.scan(run)
}

func (w *inlineWorker) finish(run *scanRun) {
	w.lock.Lock()
	defer w.lock.Unlock()

	delete(w.active, run.dir)
	close(run.done)
}

// Cancel requests a stop without waiting; the scanning caller notices it
// before the next candidate.
func (w *inlineWorker) Cancel(dir string) {
	w.lock.Lock()
	defer w.lock.Unlock()

	if run, ok := w.active[dir]; ok {
		run.requestStop()
	}
}

func (w *inlineWorker) Stop() {
	w.lock.Lock()
	defer w.lock.Unlock()

	w.closed = true

	for _, run := range w.active {
		run.requestStop()
	}
}

func (w *inlineWorker) Status() m.WorkerStatus {
	w.lock.Lock()
	defer w.lock.Unlock()

	if len(w.active) == 0 {
		return m.WorkerStatus{State: m.Idle}
	}

	dirs := make([]string, 0, len(w.active))
	for dir := range w.active {
		dirs = append(dirs, dir)
	}

	slices.Sort(dirs)

	return m.WorkerStatus{
		State:    m.Running,
		Current:  dirs[0],
		Stopping: w.active[dirs[0]].stopped(),
	}
}

// WaitIdle returns at once: every scan completes before its Enqueue returns.
func (w *inlineWorker) WaitIdle(ctx context.Context) error {
	return ctx.Err()
}

var _ ScanWorker = (*inlineWorker)(nil)
