// Package internal contains the wsc command implementation.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/untillpro/goutils/logger"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// Run executes the CLI with args and returns the process exit code. Log lines
// go to stderr.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger.PrintLine = func(_ logger.TLogLevel, line string) {
		_, _ = fmt.Fprintln(stderr, line)
	}
	logger.SetLogLevel(logger.LogLevelInfo)

	rootCmd := NewRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}

	var failed *commandError
	if errors.As(err, &failed) {
		logger.Error(failed.Error())
		return ExitFailure
	}
	_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
	_, _ = fmt.Fprintln(stderr, rootCmd.UsageString())
	return ExitUsage
}

// commandError is a failure of the operation itself, as opposed to a usage error.
type commandError struct {
	err error
}

func (e *commandError) Error() string {
	return e.err.Error()
}

func (e *commandError) Unwrap() error {
	return e.err
}

func fail(err error) error {
	if err == nil {
		return nil
	}
	return &commandError{err: err}
}
