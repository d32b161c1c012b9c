package middleware

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"
)

// Logging creates middleware that logs each command run with its duration
func Logging(logger LoggerFunc) Middleware {
	return func(next RunE) RunE {
		return func(cmd *cobra.Command, args []string) error {
			start := time.Now()

			err := next(cmd, args)

			duration := time.Since(start)

			attrs := []any{
				slog.String("command", cmd.CommandPath()),
				slog.Int("args", len(args)),
				slog.Duration("duration", duration),
			}
			if err != nil {
				logger().Warn("command failed", append(attrs, slog.String("error", err.Error()))...)
				return err
			}
			logger().Info("command completed", attrs...)
			return nil
		}
	}
}
