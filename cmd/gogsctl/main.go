// Command gogsctl is a command line client for the Gogs API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kbukum/gogskit/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps failures to distinct exit statuses for scripts.
func exitCode(err error) int {
	switch {
	case errors.IsInvalidArgument(err), errors.IsConfigurationError(err):
		return 2
	case errors.IsUnauthorized(err):
		return 3
	case errors.IsNotFound(err):
		return 4
	default:
		return 1
	}
}
