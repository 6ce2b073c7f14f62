package response

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/cascade/core/chain"
)

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// convertToHTTPError normalizes any error to an HTTPError.
func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}

	baseErr, ok := httpErrorsByStatus[status]
	if !ok {
		baseErr = ErrInternalServerError
	}
	return baseErr.WithError(err)
}

// render executes a terminal handler outside any pipeline, for use by error
// boundaries that already hold the context.
func render(c *chain.Context, h chain.Handler) {
	if _, err := h(func(c *chain.Context) (*chain.Context, error) { return c, nil })(c); err != nil {
		http.Error(c.ResponseWriter(), err.Error(), http.StatusInternalServerError)
	}
}

// ErrorHandler renders pipeline errors as plain text. It checks for the
// HTTPError type first, then the statusCode interface, and defaults to 500.
// Install it on the pipeline adapter via chain.WithErrorHandler.
func ErrorHandler(c *chain.Context, err error) {
	if c.ResponseStarted() {
		return
	}
	httpErr := convertToHTTPError(err)
	render(c, StringWithStatus(httpErr.Error(), httpErr.Status))
}

// JSONErrorHandler renders pipeline errors as structured JSON bodies.
func JSONErrorHandler(c *chain.Context, err error) {
	if c.ResponseStarted() {
		return
	}
	httpErr := convertToHTTPError(err)
	render(c, JSONWithStatus(httpErr, httpErr.Status))
}

// NotFound renders the standard 404 error as plain text; pass it to
// chain.WithNotFound for exhausted pipelines.
func NotFound(c *chain.Context) {
	ErrorHandler(c, ErrNotFound)
}

// NotFoundJSON renders the standard 404 error as JSON.
func NotFoundJSON(c *chain.Context) {
	JSONErrorHandler(c, ErrNotFound)
}
