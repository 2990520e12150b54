package domain

import (
	"context"
	"log/slog"
	"slices"
	"time"

	m "pluginscout.dev/pkg/pluginscout/internal/model"
)

// ScanWorker executes directory scans one at a time.
type ScanWorker interface {
	// Enqueue schedules a scan of dir unless one is already waiting.
	Enqueue(dir string)
	// Cancel drops dir from the queue and stops its scan if it is running.
	Cancel(dir string)
	// Stop clears the queue and stops the running scan. Later Enqueue calls
	// are ignored.
	Stop()
	Status() m.WorkerStatus
	// WaitIdle blocks until no scan is queued or running, or ctx is done.
	WaitIdle(ctx context.Context) error
}

// backgroundWorker runs scans on a single goroutine. A goroutine that does
// not honour a stop request within timeout is detached: it is left to
// finish on its own, its results are discarded and a fresh goroutine takes
// over the queue.
type backgroundWorker struct {
	lock    *SharedLock
	scan    func(run *scanRun)
	timeout time.Duration

	queue   []string
	current *scanRun
	running bool
	// gen identifies the live goroutine; a goroutine whose generation is
	// stale has been detached.
	gen    uint64
	idle   chan struct{}
	forced bool
	closed bool
}

func newBackgroundWorker(lock *SharedLock, scan func(run *scanRun), timeout time.Duration) *backgroundWorker {
	return &backgroundWorker{
		lock:    lock,
		scan:    scan,
		timeout: timeout,
	}
}

func (w *backgroundWorker) Enqueue(dir string) {
	w.lock.Lock()
	defer w.lock.Unlock()

	if w.closed {
		slog.Debug("Ignoring scan request after stop", "dir", dir)
		return
	}

	if slices.Contains(w.queue, dir) {
		return
	}

	w.queue = append(w.queue, dir)

	if !w.running {
		w.startLocked()
	}
}

func (w *backgroundWorker) Cancel(dir string) {
	w.lock.Lock()

	w.queue = slices.DeleteFunc(w.queue, func(queued string) bool { return queued == dir })

	run := w.current
	if run == nil || run.dir != dir {
		w.lock.Unlock()
		return
	}

	run.requestStop()
	gen := w.gen
	w.lock.Unlock()

	w.awaitStop(run, gen)
}

func (w *backgroundWorker) Stop() {
	w.lock.Lock()

	w.closed = true
	w.queue = nil

	run := w.current
	gen := w.gen

	if run == nil && !w.running {
		w.becomeIdle()
	}

	if run != nil {
		run.requestStop()
	}

	w.lock.Unlock()

	if run != nil {
		w.awaitStop(run, gen)
	}
}

func (w *backgroundWorker) Status() m.WorkerStatus {
	w.lock.Lock()
	defer w.lock.Unlock()

	status := m.WorkerStatus{State: m.Idle}

	if len(w.queue) > 0 {
		status.Pending = slices.Clone(w.queue)
	}

	switch {
	case w.running:
		status.State = m.Running
	case w.forced:
		status.State = m.ForceStopped
	}

	if w.current != nil {
		status.Current = w.current.dir
		status.Stopping = w.current.stopped()
	}

	return status
}

func (w *backgroundWorker) WaitIdle(ctx context.Context) error {
	for {
		w.lock.Lock()
		idle := w.idle
		w.lock.Unlock()

		if idle == nil {
			return nil
		}

		select {
		case <-idle:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *backgroundWorker) startLocked() {
	if w.idle == nil {
		w.idle = make(chan struct{})
	}

	w.gen++
	w.running = true
	w.forced = false

	go w.loop(w.gen)
}

func (w *backgroundWorker) becomeIdle() {
	if w.idle != nil {
		close(w.idle)
		w.idle = nil
	}
}

func (w *backgroundWorker) loop(gen uint64) {
	for {
		run := w.next(gen)
		if run == nil {
			return
		}

		w.scan(run)
		close(run.done)
	}
}

// next pops the head of the queue and marks it current. It returns nil when
// the goroutine should exit.
func (w *backgroundWorker) next(gen uint64) *scanRun {
	w.lock.Lock()
	defer w.lock.Unlock()

	if w.gen != gen {
		return nil
	}

	w.current = nil

	if w.closed || len(w.queue) == 0 {
		w.running = false
		w.becomeIdle()

		return nil
	}

	dir := w.queue[0]
	w.queue = w.queue[1:]
	w.current = newScanRun(dir)

	return w.current
}

// awaitStop waits for run to return after a stop request. On timeout the
// goroutine running it is detached and, if work remains, replaced.
func (w *backgroundWorker) awaitStop(run *scanRun, gen uint64) {
	timer := time.NewTimer(w.timeout)
	defer timer.Stop()

	select {
	case <-run.done:
		return
	case <-timer.C:
	}

	w.lock.Lock()
	defer w.lock.Unlock()

	if w.gen != gen || w.current != run {
		return
	}

	slog.Warn("Plugin directory scan did not stop in time, detaching worker",
		"dir", run.dir, "timeout", w.timeout)

	w.gen++
	w.running = false
	w.current = nil
	w.forced = true

	if !w.closed && len(w.queue) > 0 {
		w.startLocked()
		return
	}

	w.becomeIdle()
}

var _ ScanWorker = (*backgroundWorker)(nil)
