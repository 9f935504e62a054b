// Package log provides the logr-backed loggers used by the cds
// example programs. The container packages themselves never log.
package log

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// New returns a stdr.Logger that implements the logr.Logger
// interface, named "cds" and bounded to the given verbosity.
// Set v to 0 for info level messages, 1 for debug messages and 2 for
// trace level messages. Any other verbosity defaults to 0.
func New(v int) logr.Logger {
	logger := stdr.New(nil).WithName("cds")
	if v > 2 || v < 0 {
		v = 0
		logger.Info("Invalid verbosity, setting logger to display info level messages only.")
	}
	stdr.SetVerbosity(v)

	return logger
}

// NewContext returns a context carrying logger.
func NewContext(ctx context.Context, logger logr.Logger) context.Context {
	return logr.NewContext(ctx, logger)
}

// FromContext returns the logger contained in the context, named if
// name is not empty, or a fresh verbosity-0 logger when the context
// carries none.
func FromContext(ctx context.Context, name string) logr.Logger {
	logger, err := logr.FromContext(ctx)
	if err != nil {
		logger = New(0)
	}

	if name != "" {
		return logger.WithName(name)
	}
	return logger
}
