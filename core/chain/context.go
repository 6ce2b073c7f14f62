package chain

import (
	"net/http"
	"time"
)

// Context carries one in-flight request/response exchange through the
// pipeline. The host owns the underlying request and writer; the pipeline
// borrows them for the duration of a single traversal.
//
// Context implements context.Context by delegating to the request's context,
// so host cancellation and deadlines propagate into every handler.
type Context struct {
	w         *responseWriter
	r         *http.Request
	routePath string
	values    map[any]any
}

// NewContext wraps a response writer and request for pipeline execution.
// The matchable route path is initialized from the raw URL path to preserve
// percent-encoding for typed extraction.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	path := r.URL.Path
	if r.URL.RawPath != "" {
		path = r.URL.RawPath
	}
	if path == "" {
		path = "/"
	}
	return &Context{
		w:         newResponseWriter(w),
		r:         r,
		routePath: path,
	}
}

// Deadline delegates to the request's context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request's context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request's context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns request-scoped values set via SetValue, falling back to the
// request's context for everything else.
func (c *Context) Value(key any) any {
	if c.values != nil {
		if v, ok := c.values[key]; ok {
			return v
		}
	}
	return c.r.Context().Value(key)
}

// SetValue stores a request-scoped value on the context.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// Request returns the *http.Request associated with the context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the http.ResponseWriter associated with the context.
// The writer tracks whether a response has been started; see ResponseStarted.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// ResponseStarted reports whether a status line or body bytes have been
// written. Compose uses it to guarantee at most one committed response.
func (c *Context) ResponseStarted() bool {
	return c.w.Written()
}

// Status returns the HTTP status code written so far, or zero if the
// response has not started.
func (c *Context) Status() int {
	return c.w.Status()
}

// RoutePath returns the portion of the request path currently visible to
// route matching. Sub-routes narrow it for the duration of their inner
// handler; everything else sees the full raw URL path.
func (c *Context) RoutePath() string {
	return c.routePath
}

// SetRoutePath replaces the matchable route path and returns the previous
// value so callers can restore it. Used by sub-route scoping.
func (c *Context) SetRoutePath(path string) (prev string) {
	prev = c.routePath
	c.routePath = path
	return prev
}
