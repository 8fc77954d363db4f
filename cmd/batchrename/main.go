// Command batchrename is the CLI entrypoint for sanitized batch renaming of
// directory files, scene file objects and scene database objects.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/backmassage/batchrename/internal/cli"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "0.1.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	cli.Version = version
	cli.Commit = commit

	// Cancel on SIGINT/SIGTERM; the renamer stops before the next item and
	// reports the rest as skipped.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "batchrename: received interrupt, stopping after the current item")
			cancel()
		case <-ctx.Done():
		}
	}()

	return cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
