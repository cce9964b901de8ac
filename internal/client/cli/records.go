package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/splittab/splittab/internal/models"
)

// RunAdd ingests a receipt payload (the output of the scanning pipeline) as
// a new pending record. path is a JSON file or '-' for stdin.
func (c *Cli) RunAdd(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: splittab add FILE")
	}

	var raw []byte
	var err error
	if args[0] == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read payload: %w", err)
	}

	if !json.Valid(raw) {
		return fmt.Errorf("payload is not valid JSON")
	}

	saved, err := c.records.Save(ctx, &models.Record{Data: raw})
	if err != nil {
		return fmt.Errorf("failed to save receipt: %w", err)
	}

	fmt.Fprintf(c.out, "Added receipt %s (%s)\n", saved.ID, saved.SyncStatus)
	return nil
}

// RunList prints every local receipt with its sync state.
func (c *Cli) RunList(ctx context.Context) error {
	records, err := c.records.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list receipts: %w", err)
	}

	if len(records) == 0 {
		fmt.Fprintln(c.out, "No receipts.")
		return nil
	}

	for _, rec := range records {
		line := fmt.Sprintf("%s  %-7s  updated %s", rec.ID, rec.SyncStatus, rec.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
		if rec.SyncError != "" {
			line += "  (" + rec.SyncError + ")"
		}
		fmt.Fprintln(c.out, line)
	}
	fmt.Fprintf(c.out, "%d receipt(s)\n", len(records))
	return nil
}

// RunDelete removes a local receipt.
func (c *Cli) RunDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: splittab delete ID")
	}
	if err := c.records.Delete(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete receipt: %w", err)
	}
	fmt.Fprintf(c.out, "Deleted %s\n", args[0])
	return nil
}

// RunRetry resets an errored receipt so the next push picks it up again.
func (c *Cli) RunRetry(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: splittab retry ID")
	}
	if err := c.engine.RetryRecord(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to retry receipt: %w", err)
	}
	fmt.Fprintf(c.out, "Receipt %s queued for the next push.\n", args[0])
	return nil
}
