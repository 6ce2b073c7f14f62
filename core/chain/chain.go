package chain

// Func is the continuation type: it processes a context and either produces
// a resulting context or declines to participate by returning (nil, nil).
// A non-nil error aborts the traversal and propagates untouched to the
// error boundary; the combinators below never catch it.
type Func func(c *Context) (*Context, error)

// Handler is a unit of request-processing logic parameterized over what runs
// next. Handlers are built once at pipeline construction and shared across
// requests; all per-request state lives on the Context.
type Handler func(next Func) Func

// Compose chains two handlers into one: h1 runs with its continuation set to
// h2 composed with the outer continuation. If h1 commits a response before
// handing off, the chain forwards straight to the outer continuation instead
// of invoking h2, so a committed response is never written twice.
func Compose(h1, h2 Handler) Handler {
	return func(final Func) Func {
		return h1(func(c *Context) (*Context, error) {
			if c.ResponseStarted() {
				return final(c)
			}
			return h2(final)(c)
		})
	}
}

// Pipe composes any number of handlers left to right, so Pipe(a, b, c)
// behaves like Compose(a, Compose(b, c)). With no arguments it yields the
// identity handler.
func Pipe(handlers ...Handler) Handler {
	switch len(handlers) {
	case 0:
		return func(next Func) Func { return next }
	case 1:
		return handlers[0]
	}

	combined := handlers[len(handlers)-1]
	for i := len(handlers) - 2; i >= 0; i-- {
		combined = Compose(handlers[i], combined)
	}
	return combined
}

// Choose tries each handler in order against the same context and outer
// continuation, returning the first present result. Handlers that decline
// fall through to the next candidate; if every handler declines, the
// combined handler declines too. First match wins, so ordering is
// caller-controlled and significant.
func Choose(handlers ...Handler) Handler {
	return func(next Func) Func {
		return func(c *Context) (*Context, error) {
			for _, h := range handlers {
				res, err := h(next)(c)
				if err != nil {
					return nil, err
				}
				if res != nil {
					return res, nil
				}
			}
			return nil, nil
		}
	}
}

// Warbler defers evaluation of a handler-producing expression to invocation
// time. Without it, any value computed while building the pipeline (a
// timestamp, a counter read) is frozen for the pipeline's lifetime.
func Warbler(f func(c *Context) Handler) Handler {
	return func(next Func) Func {
		return func(c *Context) (*Context, error) {
			return f(c)(next)(c)
		}
	}
}

// Skip is a handler that always declines, regardless of the context.
// Useful as a guard branch and in tests.
func Skip(Func) Func {
	return func(*Context) (*Context, error) {
		return nil, nil
	}
}

// Continue is a handler that participates without doing anything: it simply
// invokes its continuation. It is the identity element of Compose.
func Continue(next Func) Func {
	return next
}
