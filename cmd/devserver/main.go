package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/splittab/splittab/internal/devserver"
)

func main() {
	addr := flag.String("addr", ":8080", "Listen address")
	token := flag.String("token", "dev-token", "Bearer token the server accepts")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	server := devserver.New(*token, logger)

	logger.Info("devserver listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, server.Handler()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
