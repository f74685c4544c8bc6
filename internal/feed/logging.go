package feed

import (
	"context"
	"log/slog"
)

// logWithEndpoint emits a log entry if logger is non-nil and always includes the endpoint name.
func logWithEndpoint(ctx context.Context, logger *slog.Logger, level slog.Level, endpoint string, msg string, args ...any) {
	if logger == nil {
		return
	}
	args = append(args, slog.String("endpoint", endpoint))
	logger.Log(ctx, level, msg, args...)
}
