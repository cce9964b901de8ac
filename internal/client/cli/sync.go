package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/splittab/splittab/internal/client/api"
)

// RunPush pushes pending receipts now. Unlike the background cycle this
// surfaces failures, so the user sees why a manual push did not land.
func (c *Cli) RunPush(ctx context.Context) error {
	result, err := c.engine.Push(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return fmt.Errorf("authentication required, run 'splittab login': %w", err)
		}
		return fmt.Errorf("push failed: %w", err)
	}
	if !result.Success {
		fmt.Fprintln(c.out, "Another sync is already running; nothing pushed.")
		return nil
	}

	fmt.Fprintf(c.out, "Pushed %d receipt(s), %d rejected.\n", result.Synced, result.Errors)
	return nil
}

// RunPull pulls remote changes now.
func (c *Cli) RunPull(ctx context.Context) error {
	result, err := c.engine.Pull(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return fmt.Errorf("authentication required, run 'splittab login': %w", err)
		}
		return fmt.Errorf("pull failed: %w", err)
	}
	if !result.Success {
		fmt.Fprintln(c.out, "Another sync is already running; nothing pulled.")
		return nil
	}

	fmt.Fprintf(c.out, "Pulled %d change(s) from the server.\n", result.Pulled)
	return nil
}

// RunSync runs a full cycle the way background callers do: gate check, push,
// pull, with backoff. It never errors; the result says whether it worked.
func (c *Cli) RunSync(ctx context.Context) error {
	fmt.Fprintln(c.out, "Starting synchronization...")

	result := c.engine.Sync(ctx)
	if !result.Success {
		fmt.Fprintln(c.out, "Sync did not complete; local data is untouched. See logs for details.")
		return nil
	}

	fmt.Fprintln(c.out, "Synchronization completed.")
	fmt.Fprintf(c.out, "Pushed to server:   %d receipt(s)\n", result.Synced)
	fmt.Fprintf(c.out, "Pulled from server: %d change(s)\n", result.Pulled)
	return nil
}
