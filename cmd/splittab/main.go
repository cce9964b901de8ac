package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/splittab/splittab/internal/client/api"
	"github.com/splittab/splittab/internal/client/auth"
	"github.com/splittab/splittab/internal/client/cli"
	"github.com/splittab/splittab/internal/client/storage/boltdb"
	syncengine "github.com/splittab/splittab/internal/client/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", "http://localhost:8080", "Server URL")
	dbPath := flag.String("db", "splittab.db", "Path to local database")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx := context.Background()

	boltStorage, err := boltdb.New(ctx, *dbPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	apiClient := api.NewClient(*serverURL)
	authService := auth.NewService(boltStorage, logger)

	// One engine per process: the single-flight gate only means anything if
	// every caller shares it.
	engine := syncengine.NewEngine(apiClient, boltStorage, boltStorage, authService, logger)

	app := cli.New(engine, authService, boltStorage, boltStorage)

	if err := run(ctx, app, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, app *cli.Cli, command string, args []string) error {
	switch command {
	case "login":
		return app.RunLogin(ctx)
	case "logout":
		return app.RunLogout(ctx)
	case "status":
		return app.RunStatus(ctx)
	case "add":
		return app.RunAdd(ctx, args)
	case "list":
		return app.RunList(ctx)
	case "delete":
		return app.RunDelete(ctx, args)
	case "retry":
		return app.RunRetry(ctx, args)
	case "push":
		return app.RunPush(ctx)
	case "pull":
		return app.RunPull(ctx)
	case "sync":
		return app.RunSync(ctx)
	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func printVersion() {
	fmt.Printf("Splittab Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
