package cli

import (
	"context"
	"fmt"
	"os"
)

// RunLogin stores an API token for sync. The token comes from the
// environment when set, otherwise from a no-echo prompt.
func (c *Cli) RunLogin(ctx context.Context) error {
	token := os.Getenv(TokenEnvVar)
	if token == "" {
		var err error
		token, err = readSecret("API token: ")
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}
	}
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := c.auth.SaveToken(ctx, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	fmt.Fprintln(c.out, "Token stored. You can now run 'splittab sync'.")
	return nil
}

// RunLogout removes the stored token.
func (c *Cli) RunLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	fmt.Fprintln(c.out, "Token removed.")
	return nil
}

// RunStatus prints auth state, pending count and the pull watermark.
func (c *Cli) RunStatus(ctx context.Context) error {
	authenticated, err := c.auth.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	pending, err := c.records.GetPending(ctx)
	if err != nil {
		return fmt.Errorf("failed to read pending records: %w", err)
	}

	lastSyncAt, err := c.meta.GetLastSyncAt(ctx)
	if err != nil {
		return fmt.Errorf("failed to read sync watermark: %w", err)
	}

	fmt.Fprintf(c.out, "Authenticated: %v\n", authenticated)
	fmt.Fprintf(c.out, "Pending:       %d receipt(s)\n", len(pending))
	if lastSyncAt != nil {
		fmt.Fprintf(c.out, "Last sync:     %s\n", lastSyncAt.Local())
	} else {
		fmt.Fprintln(c.out, "Last sync:     never")
	}
	return nil
}
