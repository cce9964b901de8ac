package sync

import (
	"context"
	"time"
)

// Status is the snapshot broadcast to subscribers on every transition:
// operation start, successful completion, or failure.
type Status struct {
	LastSyncAt   *time.Time
	Err          error
	PendingCount int
	IsSyncing    bool
}

// Subscribe registers a callback invoked synchronously with every status
// snapshot. The returned disposer removes the callback and is idempotent.
func (e *Engine) Subscribe(fn func(Status)) func() {
	e.subMu.Lock()
	id := e.nextSubID
	e.nextSubID++
	e.subscribers[id] = fn
	e.subMu.Unlock()

	disposed := false
	return func() {
		e.subMu.Lock()
		defer e.subMu.Unlock()
		if disposed {
			return
		}
		disposed = true
		delete(e.subscribers, id)
	}
}

// broadcast computes a fresh snapshot and delivers it to every subscriber.
// Snapshot reads are best-effort: a failing store read degrades the counts,
// it never fails the operation being reported.
func (e *Engine) broadcast(ctx context.Context, isSyncing bool, opErr error) {
	status := Status{IsSyncing: isSyncing, Err: opErr}

	if pending, err := e.records.GetPending(ctx); err == nil {
		status.PendingCount = len(pending)
	} else {
		e.logger.Debug("status snapshot: pending count unavailable", "error", err)
	}

	if lastSyncAt, err := e.metadata.GetLastSyncAt(ctx); err == nil {
		status.LastSyncAt = lastSyncAt
	} else {
		e.logger.Debug("status snapshot: watermark unavailable", "error", err)
	}

	e.subMu.Lock()
	callbacks := make([]func(Status), 0, len(e.subscribers))
	for _, fn := range e.subscribers {
		callbacks = append(callbacks, fn)
	}
	e.subMu.Unlock()

	for _, fn := range callbacks {
		fn(status)
	}
}
