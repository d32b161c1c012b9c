package middleware

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// RunE is the body of a cobra command
type RunE func(cmd *cobra.Command, args []string) error

// Middleware wraps a command body
type Middleware func(next RunE) RunE

// LoggerFunc resolves the logger when the command runs, after flags are parsed
type LoggerFunc func() *slog.Logger

// Chain wraps run with the middlewares, the first one outermost
func Chain(run RunE, middlewares ...Middleware) RunE {
	for i := len(middlewares) - 1; i >= 0; i-- {
		run = middlewares[i](run)
	}
	return run
}
