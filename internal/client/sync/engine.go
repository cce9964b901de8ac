// Package sync reconciles the device-local collection of receipts with the
// remote authoritative store. Push and pull never overlap: the engine
// serializes every operation behind a single in-flight handle, so the rest
// of the app can fire-and-forget background syncs without coordinating.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	httpapi "github.com/splittab/splittab/internal/client/api"
	"github.com/splittab/splittab/internal/client/codec"
	"github.com/splittab/splittab/internal/client/conflict"
	"github.com/splittab/splittab/internal/client/retry"
	"github.com/splittab/splittab/internal/client/storage"
	"github.com/splittab/splittab/internal/models"
	"github.com/splittab/splittab/pkg/api"
)

//go:generate moq -out token_provider_mock.go . TokenProvider

// TokenProvider supplies the bearer credential for each operation. A failure
// here is terminal for the operation: without a credential there is nothing
// to retry.
type TokenProvider interface {
	AccessToken(ctx context.Context) (string, error)
}

// PushResult reports one push operation.
type PushResult struct {
	Success bool
	Synced  int
	Errors  int
}

// PullResult reports one pull operation.
type PullResult struct {
	Success bool
	Pulled  int
}

// SyncResult reports one combined background sync cycle.
type SyncResult struct {
	Success bool
	Synced  int
	Pulled  int
}

// Engine orchestrates push, pull and combined sync. Constructed once at app
// boot and never torn down; its only mutable state besides the stores is the
// in-flight handle and the subscriber set, both owned fields.
type Engine struct {
	apiClient httpapi.ClientAPI
	records   storage.RecordStore
	metadata  storage.MetadataStore
	tokens    TokenProvider
	policy    *retry.Policy
	logger    *slog.Logger

	mu       stdsync.Mutex
	inFlight chan struct{}

	subMu       stdsync.Mutex
	subscribers map[int]func(Status)
	nextSubID   int

	// pause between push and pull in a combined cycle
	pause      time.Duration
	newBackOff func() backoff.BackOff
	now        func() time.Time
}

// NewEngine creates the sync engine.
func NewEngine(
	apiClient httpapi.ClientAPI,
	records storage.RecordStore,
	metadata storage.MetadataStore,
	tokens TokenProvider,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		apiClient:   apiClient,
		records:     records,
		metadata:    metadata,
		tokens:      tokens,
		policy:      retry.NewPolicy(0),
		logger:      logger,
		subscribers: make(map[int]func(Status)),
		pause:       250 * time.Millisecond,
		newBackOff:  func() backoff.BackOff { return retry.NewBackOff(0, 0) },
		now:         time.Now,
	}
}

// begin claims the single-flight slot. A caller that finds an operation in
// flight waits for it, re-checks once, and gives up if the slot is taken
// again: fail-fast, not queued.
func (e *Engine) begin() bool {
	e.mu.Lock()
	if e.inFlight == nil {
		e.inFlight = make(chan struct{})
		e.mu.Unlock()
		return true
	}
	done := e.inFlight
	e.mu.Unlock()

	<-done

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.inFlight == nil {
		e.inFlight = make(chan struct{})
		return true
	}
	return false
}

// end releases the single-flight slot and wakes waiters.
func (e *Engine) end() {
	e.mu.Lock()
	defer e.mu.Unlock()
	close(e.inFlight)
	e.inFlight = nil
}

// Push submits every dirty record to the server as one batch and applies the
// acknowledgment. Returns an error on auth, transport or storage failure so
// direct callers (a manual "retry now" action) can react specifically; a
// busy engine yields a zero result with no error.
func (e *Engine) Push(ctx context.Context) (*PushResult, error) {
	if !e.begin() {
		e.logger.Debug("push skipped, another operation in flight")
		return &PushResult{}, nil
	}
	defer e.end()

	e.broadcast(ctx, true, nil)

	result, err := e.push(ctx)
	e.broadcast(ctx, false, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Engine) push(ctx context.Context) (*PushResult, error) {
	token, err := e.tokens.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", httpapi.ErrUnauthorized, err)
	}

	pending, err := e.records.GetPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read pending records: %w", err)
	}

	// Records that exhausted their retry budget stay parked in error status
	// until the user retries them; only dirty records go out automatically.
	batch := make([]*models.Record, 0, len(pending))
	for _, rec := range pending {
		if rec.IsDirty() {
			batch = append(batch, rec)
		}
	}

	if len(batch) == 0 {
		e.logger.Debug("push: nothing to send")
		return &PushResult{Success: true}, nil
	}

	req := api.PushRequest{Receipts: codec.ToWireBatch(batch)}

	resp, err := e.apiClient.Push(ctx, token, req)
	if err != nil {
		// No store mutation has happened yet: a failed request leaves
		// every record exactly as it was.
		return nil, err
	}

	acked := ackedSet(batch, resp)

	synced, rejected := 0, 0
	for _, rec := range batch {
		if acked[rec.ID] {
			if err := e.markSynced(ctx, rec.ID); err != nil {
				return nil, err
			}
			synced++
			continue
		}
		if err := e.markRejected(ctx, rec.ID); err != nil {
			return nil, err
		}
		rejected++
	}

	e.logger.Info("push completed", "submitted", len(batch), "synced", synced, "rejected", rejected)

	return &PushResult{Success: true, Synced: synced, Errors: rejected}, nil
}

// ackedSet decides which submitted records the server accepted. An explicit
// id list wins when the server provides one. Otherwise the first Synced
// records in submission order are assumed acknowledged -- fragile if the
// server reorders or validates asynchronously, but it is all a count-only
// response allows.
// TODO: drop the positional fallback once the server always sends syncedIds.
func ackedSet(batch []*models.Record, resp *api.PushResponse) map[string]bool {
	acked := make(map[string]bool, len(batch))
	if resp.SyncedIDs != nil {
		for _, id := range resp.SyncedIDs {
			acked[id] = true
		}
		return acked
	}

	count := resp.Synced
	if count > len(batch) {
		count = len(batch)
	}
	for _, rec := range batch[:count] {
		acked[rec.ID] = true
	}
	return acked
}

// markSynced applies a push acknowledgment: clear the retry counter, flip to
// synced, stamp the sync time, drop any stale error message. Bookkeeping
// only, so UpdatedAt is untouched.
func (e *Engine) markSynced(ctx context.Context, id string) error {
	e.policy.Reset(id)

	status := models.StatusSynced
	noError := ""
	syncedAt := e.now().UTC()
	_, err := e.records.Update(ctx, id, storage.Patch{
		SyncStatus:   &status,
		SyncError:    &noError,
		LastSyncedAt: &syncedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to mark record %s synced: %w", id, err)
	}
	return nil
}

// markRejected burns one retry attempt. Inside the budget the record stays
// pending with a descriptive error; once the budget is exhausted it is
// parked in error status until the user intervenes.
func (e *Engine) markRejected(ctx context.Context, id string) error {
	attempt, exhausted := e.policy.Fail(id)

	status := models.StatusPending
	message := fmt.Sprintf("push rejected by server (attempt %d/%d)", attempt, e.policy.MaxAttempts())
	if exhausted {
		status = models.StatusError
		message = fmt.Sprintf("push failed after %d attempts", attempt)
		e.logger.Warn("record exhausted push retry budget", "record_id", id, "attempts", attempt)
	}

	_, err := e.records.Update(ctx, id, storage.Patch{
		SyncStatus: &status,
		SyncError:  &message,
	})
	if err != nil {
		return fmt.Errorf("failed to mark record %s rejected: %w", id, err)
	}
	return nil
}

// Pull fetches remote changes since the watermark and folds them into the
// local store through the conflict resolver. The watermark advances only
// after the whole batch processed cleanly; a pull that fails partway leaves
// it untouched so the next pull replays the same window.
func (e *Engine) Pull(ctx context.Context) (*PullResult, error) {
	if !e.begin() {
		e.logger.Debug("pull skipped, another operation in flight")
		return &PullResult{}, nil
	}
	defer e.end()

	e.broadcast(ctx, true, nil)

	result, err := e.pull(ctx)
	e.broadcast(ctx, false, err)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Engine) pull(ctx context.Context) (*PullResult, error) {
	token, err := e.tokens.AccessToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", httpapi.ErrUnauthorized, err)
	}

	since, err := e.metadata.GetLastSyncAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read sync watermark: %w", err)
	}

	resp, err := e.apiClient.Pull(ctx, token, since)
	if err != nil {
		return nil, err
	}

	pulled := 0
	for _, dto := range resp.Receipts {
		applied, err := e.applyRemote(ctx, dto)
		if err != nil {
			return nil, fmt.Errorf("failed to apply remote record %s: %w", dto.ID, err)
		}
		if applied {
			pulled++
		}
	}

	// Every record processed; only now is it safe to move the watermark.
	if resp.LastSyncAt != nil {
		if err := e.metadata.SaveLastSyncAt(ctx, *resp.LastSyncAt); err != nil {
			// Replay-safe: an unsaved watermark only means the next pull
			// re-fetches a window it already merged.
			e.logger.Warn("failed to save sync watermark", "error", err)
		}
	}

	e.logger.Info("pull completed", "received", len(resp.Receipts), "applied", pulled)

	return &PullResult{Success: true, Pulled: pulled}, nil
}

// applyRemote runs one pulled record through the conflict resolver and
// writes the outcome. Reports whether the remote payload landed locally.
func (e *Engine) applyRemote(ctx context.Context, dto api.Receipt) (bool, error) {
	candidate := codec.FromWire(dto)

	local, err := e.records.Get(ctx, candidate.ID)
	if err != nil && !errors.Is(err, storage.ErrRecordNotFound) {
		return false, err
	}

	outcome := conflict.Resolve(local, candidate)
	e.logger.Debug("resolved remote record", "record_id", candidate.ID, "outcome", outcome.String())

	syncedAt := candidate.LastSyncedAt
	if syncedAt == nil {
		t := e.now().UTC()
		syncedAt = &t
	}

	switch outcome {
	case conflict.Insert:
		if _, err := e.records.Save(ctx, candidate); err != nil {
			return false, err
		}
		return true, nil

	case conflict.KeepDirty:
		// Dirty records are never overwritten; only the server identity is
		// attached so the pending edits can still be pushed later.
		_, err := e.records.Update(ctx, candidate.ID, storage.Patch{
			ServerID:     &candidate.ServerID,
			LastSyncedAt: syncedAt,
		})
		return false, err

	case conflict.RemoteWins:
		status := models.StatusSynced
		noError := ""
		_, err := e.records.Update(ctx, candidate.ID, storage.Patch{
			Data:         &candidate.Data,
			UpdatedAt:    &candidate.UpdatedAt,
			SyncStatus:   &status,
			SyncError:    &noError,
			ServerID:     &candidate.ServerID,
			LastSyncedAt: syncedAt,
		})
		return err == nil, err

	case conflict.LocalWins:
		// The local payload is newer: keep it and flip to pending so the
		// next push republishes it under the adopted server id.
		status := models.StatusPending
		_, err := e.records.Update(ctx, candidate.ID, storage.Patch{
			SyncStatus: &status,
			ServerID:   &candidate.ServerID,
		})
		return false, err
	}

	return false, nil
}

// Sync runs a full background cycle: entitlement gate, push, a short pause,
// then pull, each side wrapped in exponential backoff. Unlike Push and Pull
// it never returns an error -- it is built for passive callers (a timer, an
// app-foreground hook) that must not crash on a failed attempt.
func (e *Engine) Sync(ctx context.Context) *SyncResult {
	token, err := e.tokens.AccessToken(ctx)
	if err != nil {
		e.logger.Warn("sync skipped, no credential", "error", err)
		return &SyncResult{}
	}

	gate, err := e.apiClient.SyncGate(ctx, token)
	if err != nil {
		e.logger.Warn("sync skipped, gate unreachable", "error", err)
		return &SyncResult{}
	}
	if !gate.Allowed {
		e.logger.Info("sync skipped, not allowed", "reason", gate.Reason)
		return &SyncResult{}
	}

	pushRes, err := e.pushWithRetry(ctx)
	if err != nil {
		e.logger.Warn("background push failed", "error", err)
		return &SyncResult{}
	}
	if !pushRes.Success {
		// Another operation held the slot; this cycle did not run.
		return &SyncResult{}
	}

	select {
	case <-time.After(e.pause):
	case <-ctx.Done():
		return &SyncResult{}
	}

	pullRes, err := e.pullWithRetry(ctx)
	if err != nil {
		e.logger.Warn("background pull failed", "error", err)
		return &SyncResult{Synced: pushRes.Synced}
	}
	if !pullRes.Success {
		return &SyncResult{Synced: pushRes.Synced}
	}

	return &SyncResult{Success: true, Synced: pushRes.Synced, Pulled: pullRes.Pulled}
}

func (e *Engine) pushWithRetry(ctx context.Context) (*PushResult, error) {
	var result *PushResult
	operation := func() error {
		res, err := e.Push(ctx)
		if err != nil {
			return permanentIfAuth(err)
		}
		result = res
		return nil
	}
	if err := backoff.Retry(operation, backoff.WithContext(e.newBackOff(), ctx)); err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Engine) pullWithRetry(ctx context.Context) (*PullResult, error) {
	var result *PullResult
	operation := func() error {
		res, err := e.Pull(ctx)
		if err != nil {
			return permanentIfAuth(err)
		}
		result = res
		return nil
	}
	if err := backoff.Retry(operation, backoff.WithContext(e.newBackOff(), ctx)); err != nil {
		return nil, err
	}
	return result, nil
}

// permanentIfAuth stops the backoff loop on terminal auth faults; retrying
// a rejected credential only defers the re-login prompt.
func permanentIfAuth(err error) error {
	if errors.Is(err, httpapi.ErrUnauthorized) {
		return backoff.Permanent(err)
	}
	return err
}

// RetryRecord is the explicit user action that gives an errored record a
// fresh retry budget and returns it to the next push batch.
func (e *Engine) RetryRecord(ctx context.Context, id string) error {
	e.policy.Reset(id)

	status := models.StatusPending
	noError := ""
	_, err := e.records.Update(ctx, id, storage.Patch{
		SyncStatus: &status,
		SyncError:  &noError,
	})
	if err != nil {
		return fmt.Errorf("failed to reset record %s: %w", id, err)
	}

	e.broadcast(ctx, false, nil)
	return nil
}
