package middleware

import (
	"github.com/google/uuid"

	"github.com/dmitrymomot/cascade/core/chain"
)

// requestIDContextKey is used as a key for storing the request ID in context.
type requestIDContextKey struct{}

// RequestIDConfig configures the request ID middleware.
type RequestIDConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(c *chain.Context) bool
	// Generator creates new request IDs (default: UUID v4)
	Generator func() string
	// HeaderName specifies the header name for the request ID (default: "X-Request-ID")
	HeaderName string
	// UseExisting determines whether to reuse a request ID from the incoming request
	UseExisting bool
}

// RequestID assigns a UUID to each request, storing it in the context and
// echoing it in the response headers.
func RequestID() chain.Handler {
	return RequestIDWithConfig(RequestIDConfig{})
}

// RequestIDWithConfig creates a request ID middleware with custom configuration.
func RequestIDWithConfig(cfg RequestIDConfig) chain.Handler {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Request-ID"
	}
	if cfg.Generator == nil {
		cfg.Generator = func() string {
			return uuid.New().String()
		}
	}

	return func(next chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			if cfg.Skip != nil && cfg.Skip(c) {
				return next(c)
			}

			var requestID string
			if cfg.UseExisting {
				requestID = c.Request().Header.Get(cfg.HeaderName)
			}
			if requestID == "" {
				requestID = cfg.Generator()
			}

			c.SetValue(requestIDContextKey{}, requestID)
			c.ResponseWriter().Header().Set(cfg.HeaderName, requestID)
			return next(c)
		}
	}
}

// GetRequestID retrieves the request ID assigned by the middleware, or an
// empty string when the middleware did not run.
func GetRequestID(c *chain.Context) string {
	id, _ := c.Value(requestIDContextKey{}).(string)
	return id
}
