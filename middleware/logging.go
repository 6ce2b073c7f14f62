package middleware

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/cascade/core/chain"
	"github.com/dmitrymomot/cascade/core/logger"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(c *chain.Context) bool
	// Logger receives request records. Required.
	Logger *slog.Logger
	// Level for successful requests (default: slog.LevelInfo); errors always
	// log at error level.
	Level slog.Level
}

// Logging records one line per request with method, path, status, and
// duration. Declined requests (no branch matched) are logged at debug level
// so fallthrough traffic stays visible without noise.
func Logging(log *slog.Logger) chain.Handler {
	return LoggingWithConfig(LoggingConfig{Logger: log, Level: slog.LevelInfo})
}

// LoggingWithConfig creates a logging middleware with custom configuration.
// Panics without a logger.
func LoggingWithConfig(cfg LoggingConfig) chain.Handler {
	if cfg.Logger == nil {
		panic("logging middleware: logger is required")
	}

	return func(next chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			if cfg.Skip != nil && cfg.Skip(c) {
				return next(c)
			}

			start := time.Now()
			res, err := next(c)
			elapsed := time.Since(start)

			attrs := []slog.Attr{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", c.Status()),
				logger.Duration(elapsed),
			}
			if id := GetRequestID(c); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}

			switch {
			case err != nil:
				attrs = append(attrs, logger.Error(err))
				cfg.Logger.LogAttrs(c, slog.LevelError, "request failed", attrs...)
			case res == nil:
				cfg.Logger.LogAttrs(c, slog.LevelDebug, "request unmatched", attrs...)
			default:
				cfg.Logger.LogAttrs(c, cfg.Level, "request completed", attrs...)
			}

			return res, err
		}
	}
}
