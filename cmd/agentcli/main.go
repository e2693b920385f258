// Command agentcli runs a single query through the agent without the
// HTTP layer. Useful for smoke-testing a local setup:
//
//	agentcli "What's the weather in London?"
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"weather-agent/internal/app"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <query>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	query := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if query == "" {
		flag.Usage()
		os.Exit(2)
	}

	// Human-readable logs by default when run interactively.
	if os.Getenv("LOG_FORMAT") == "" {
		os.Setenv("LOG_FORMAT", "text")
	}

	deps, err := app.Build()
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := deps.Cache.Close(); err != nil {
			deps.Log.Warn("cache close failed", "err", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ans, err := deps.Agent.Handle(ctx, query)
	if err != nil {
		deps.Log.Error("routing failed", "err", err)
		os.Exit(1)
	}
	fmt.Println(ans.Text)
}
