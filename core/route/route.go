package route

import (
	"net"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/cascade/core/chain"
)

// Exact matches the route path against a literal pattern, invoking the
// continuation only on an exact case-sensitive match.
func Exact(path string) chain.Handler {
	return func(next chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			if c.RoutePath() != path {
				return nil, nil
			}
			return next(c)
		}
	}
}

// ExactCI matches the route path against a literal pattern, ignoring case.
func ExactCI(path string) chain.Handler {
	return func(next chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			if !strings.EqualFold(c.RoutePath(), path) {
				return nil, nil
			}
			return next(c)
		}
	}
}

// Routef matches a typed template against the route path and hands the
// extracted arguments, in placeholder order, to the bind function. The bind
// function's handler runs with the route's continuation; a failed match or
// a malformed placeholder value declines without error. A malformed template
// panics at construction time.
func Routef(template string, bind func(args []any) chain.Handler) chain.Handler {
	return routef(MustParse(template), bind)
}

// RoutefCI is Routef with case-insensitive literal matching.
func RoutefCI(template string, bind func(args []any) chain.Handler) chain.Handler {
	return routef(MustParseCI(template), bind)
}

func routef(p *Pattern, bind func(args []any) chain.Handler) chain.Handler {
	return func(next chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			args, ok := p.Match(c.RoutePath())
			if !ok {
				return nil, nil
			}
			return bind(args)(next)(c)
		}
	}
}

// Routex matches the route path against an anchored regular expression and
// hands the capture groups to the bind function. An invalid expression
// panics at construction time.
func Routex(pattern string, bind func(groups []string) chain.Handler) chain.Handler {
	re := regexp.MustCompile(anchor(pattern))
	return func(next chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			m := re.FindStringSubmatch(c.RoutePath())
			if m == nil {
				return nil, nil
			}
			return bind(m[1:])(next)(c)
		}
	}
}

func anchor(pattern string) string {
	if !strings.HasPrefix(pattern, "^") {
		pattern = "^" + pattern
	}
	if !strings.HasSuffix(pattern, "$") {
		pattern += "$"
	}
	return pattern
}

// SubRoute strips a literal prefix from the route path for the duration of
// the inner handler, restoring it afterwards, so nested route trees need not
// repeat their prefix. Paths outside the prefix decline.
func SubRoute(prefix string, inner chain.Handler) chain.Handler {
	return func(next chain.Func) chain.Func {
		fn := inner(next)
		return func(c *chain.Context) (*chain.Context, error) {
			path := c.RoutePath()
			if !strings.HasPrefix(path, prefix) {
				return nil, nil
			}
			prev := c.SetRoutePath(path[len(prefix):])
			defer c.SetRoutePath(prev)
			return fn(c)
		}
	}
}

// SubRouteCI is SubRoute with case-insensitive prefix matching.
func SubRouteCI(prefix string, inner chain.Handler) chain.Handler {
	return func(next chain.Func) chain.Func {
		fn := inner(next)
		return func(c *chain.Context) (*chain.Context, error) {
			path := c.RoutePath()
			if len(path) < len(prefix) || !strings.EqualFold(path[:len(prefix)], prefix) {
				return nil, nil
			}
			prev := c.SetRoutePath(path[len(prefix):])
			defer c.SetRoutePath(prev)
			return fn(c)
		}
	}
}

// Ports dispatches on the local listener port that accepted the connection,
// selecting the associated sub-pipeline. Requests on unmatched ports, or
// served by hosts that don't populate http.LocalAddrContextKey, decline.
func Ports(table map[int]chain.Handler) chain.Handler {
	return func(next chain.Func) chain.Func {
		fns := make(map[int]chain.Func, len(table))
		for port, h := range table {
			fns[port] = h(next)
		}
		return func(c *chain.Context) (*chain.Context, error) {
			port, ok := localPort(c.Request())
			if !ok {
				return nil, nil
			}
			fn, ok := fns[port]
			if !ok {
				return nil, nil
			}
			return fn(c)
		}
	}
}

func localPort(r *http.Request) (int, bool) {
	addr, ok := r.Context().Value(http.LocalAddrContextKey).(net.Addr)
	if !ok {
		return 0, false
	}
	_, portStr, err := net.SplitHostPort(addr.String())
	if err != nil {
		return 0, false
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return 0, false
	}
	return port, true
}
