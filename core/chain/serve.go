package chain

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// ErrorHandler renders an error produced by the pipeline. The default writes
// a plain-text response honoring the statusCode interface; applications
// install richer policies via WithErrorHandler.
type ErrorHandler func(c *Context, err error)

// adapter runs a composed handler as a standard http.Handler.
type adapter struct {
	fn           Func
	errorHandler ErrorHandler
	notFound     func(c *Context)
	logger       *slog.Logger
}

// Option configures the http.Handler adapter.
type Option func(*adapter)

// WithErrorHandler sets the error boundary for the pipeline. The pipeline
// itself never catches errors; this single collaborator decides how every
// failure is logged and rendered.
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *adapter) {
		if h != nil {
			a.errorHandler = h
		}
	}
}

// WithNotFound sets the fallthrough invoked when the whole pipeline declines.
func WithNotFound(fn func(c *Context)) Option {
	return func(a *adapter) {
		if fn != nil {
			a.notFound = fn
		}
	}
}

// WithLogger sets the logger used for panics that arrive after the response
// has started and therefore cannot be rendered.
func WithLogger(logger *slog.Logger) Option {
	return func(a *adapter) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// HTTPHandler adapts a composed pipeline to net/http. The terminal
// continuation returns the context as-is, so terminal handlers that have
// written a response surface as a present result. A declined request falls
// through to the not-found handler; errors and recovered panics go to the
// error boundary.
func HTTPHandler(h Handler, opts ...Option) http.Handler {
	a := &adapter{
		errorHandler: defaultErrorHandler,
		notFound: func(c *Context) {
			http.Error(c.ResponseWriter(), "Not Found", http.StatusNotFound)
		},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.fn = h(func(c *Context) (*Context, error) {
		return c, nil
	})
	return a
}

func (a *adapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c := NewContext(w, r)

	// Recover from panics to keep the host serving.
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{value: p, stack: debug.Stack()}
			if c.ResponseStarted() {
				a.logger.Error("panic after response started",
					"value", panicErr.value,
					"stack", string(panicErr.stack),
					"path", r.URL.Path,
					"method", r.Method,
					"status", c.Status(),
				)
				return
			}
			a.errorHandler(c, panicErr)
		}
	}()

	res, err := a.fn(c)
	if err != nil {
		if c.ResponseStarted() {
			a.logger.Error("pipeline error after response started",
				"error", err,
				"path", r.URL.Path,
				"method", r.Method,
				"status", c.Status(),
			)
			return
		}
		a.errorHandler(c, err)
		return
	}
	if res == nil && !c.ResponseStarted() {
		a.notFound(c)
	}
}

// defaultErrorHandler writes the error as plain text, honoring a custom
// status code when the error provides one.
func defaultErrorHandler(c *Context, err error) {
	if c.ResponseStarted() {
		return
	}
	status := http.StatusInternalServerError
	if sc, ok := err.(statusCode); ok {
		status = sc.StatusCode()
	}
	http.Error(c.ResponseWriter(), err.Error(), status)
}

// statusCode is an unexported interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}
