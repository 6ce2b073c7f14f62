// Package chain implements a combinator algebra over fallible request
// handlers. Many small handlers compose into one pipeline with
// short-circuit and fallthrough semantics: a handler either produces a
// resulting context, declines by returning nil, or fails with an error that
// propagates untouched to a single error boundary.
//
// # Model
//
// A Func is the continuation: given a *Context it returns the resulting
// context, or (nil, nil) to signal "did not participate". A Handler wraps a
// continuation and decides whether and how to run it:
//
//	greet := func(next chain.Func) chain.Func {
//		return func(c *chain.Context) (*chain.Context, error) {
//			c.ResponseWriter().Write([]byte("hello"))
//			return c, nil
//		}
//	}
//
// Compose chains two handlers; Choose tries an ordered list and keeps the
// first present result:
//
//	pipeline := chain.Choose(
//		route.Exact("/"),
//		route.Exact("/ping"),
//	)
//
// # Double-write prevention
//
// Compose inspects Context.ResponseStarted before invoking the second
// handler: once a status line or body byte has been written, the remaining
// inner handlers are skipped and control forwards to the outer continuation.
// The flag is owned by the package's response-writer wrapper, so the
// guarantee holds on any net/http host.
//
// # Serving
//
// HTTPHandler adapts a composed pipeline to net/http, supplying the terminal
// continuation, a not-found fallthrough for exhausted pipelines, panic
// recovery, and the pluggable error boundary:
//
//	srv := chain.HTTPHandler(pipeline,
//		chain.WithErrorHandler(response.JSONErrorHandler),
//	)
//	http.ListenAndServe(":8080", srv)
//
// The combinators themselves are synchronous and allocation-light; handlers
// suspend only at their own I/O boundaries, and cancellation is inherited
// from the request's context.
package chain
