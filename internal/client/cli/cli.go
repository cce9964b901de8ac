// Package cli implements the splittab client commands. It is thin glue: all
// sync behavior lives in the engine, all persistence in the storage layer.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/splittab/splittab/internal/client/auth"
	"github.com/splittab/splittab/internal/client/storage"
	syncengine "github.com/splittab/splittab/internal/client/sync"
)

// TokenEnvVar overrides the interactive token prompt, for automation.
const TokenEnvVar = "SPLITTAB_TOKEN"

// Cli bundles the collaborators every command needs.
type Cli struct {
	engine  *syncengine.Engine
	auth    *auth.Service
	records storage.RecordStore
	meta    storage.MetadataStore
	out     io.Writer
}

// New creates the command dispatcher.
func New(engine *syncengine.Engine, authService *auth.Service, records storage.RecordStore, meta storage.MetadataStore) *Cli {
	return &Cli{
		engine:  engine,
		auth:    authService,
		records: records,
		meta:    meta,
		out:     os.Stdout,
	}
}

// PrintUsage writes command help to stdout.
func PrintUsage() {
	fmt.Println("Splittab Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  splittab [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version       Show version information")
	fmt.Println("  --server URL    Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH       Path to local database (default: splittab.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login           Store an API token (prompted, or " + TokenEnvVar + ")")
	fmt.Println("  logout          Remove the stored API token")
	fmt.Println("  status          Show auth state, pending count and last sync")
	fmt.Println("  add FILE        Add a receipt payload (JSON file, '-' for stdin)")
	fmt.Println("  list            List local receipts and their sync state")
	fmt.Println("  delete ID       Delete a local receipt")
	fmt.Println("  retry ID        Reset an errored receipt for another push")
	fmt.Println("  push            Push pending receipts now")
	fmt.Println("  pull            Pull remote changes now")
	fmt.Println("  sync            Run a full background-style sync cycle")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  splittab login")
	fmt.Println("  splittab add receipt.json")
	fmt.Println("  splittab sync")
	fmt.Println("  splittab --server https://api.splittab.example sync")
}

// readInput reads one trimmed line from stdin.
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readSecret reads a line without echoing it.
func readSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	secretBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secretBytes)), nil
}
