package middleware

import (
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// PanicHandler turns a recovered panic into the command's error
type PanicHandler func(cmd *cobra.Command, recovered any) error

// Recovery creates panic recovery middleware with a custom panic handler
func Recovery(logger LoggerFunc, handler PanicHandler) Middleware {
	return func(next RunE) RunE {
		return func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if recovered := recover(); recovered != nil {
					logger().Error("panic recovered",
						slog.Any("error", recovered),
						slog.String("stack", string(debug.Stack())),
						slog.String("command", cmd.CommandPath()),
					)

					err = handler(cmd, recovered)
				}
			}()

			return next(cmd, args)
		}
	}
}

// DefaultPanicHandler reports the panic as an internal error
func DefaultPanicHandler(cmd *cobra.Command, recovered any) error {
	return fmt.Errorf("internal error in %s: %v", cmd.Name(), recovered)
}
