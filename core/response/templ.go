package response

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/cascade/core/chain"
)

// Templ creates a text/html terminal rendering a templ component with
// 200 OK status. The component renders with the request's context, so it can
// read request-scoped values like the negotiated language or request ID.
func Templ(component templ.Component) chain.Handler {
	return TemplWithStatus(component, http.StatusOK)
}

// TemplWithStatus creates a text/html terminal rendering a templ component
// with a custom status code, e.g. for error pages.
func TemplWithStatus(component templ.Component, status int) chain.Handler {
	if component == nil {
		return Error(fmt.Errorf("templ: nil component"))
	}
	if status == 0 {
		status = http.StatusOK
	}
	return func(chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			w := c.ResponseWriter()
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(status)
			if err := component.Render(c, w); err != nil {
				return nil, fmt.Errorf("templ component render error: %w", err)
			}
			return c, nil
		}
	}
}
