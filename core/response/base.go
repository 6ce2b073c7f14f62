package response

import (
	"net/http"

	"github.com/dmitrymomot/cascade/core/chain"
)

// Terminal lifts a render function into an always-present pipeline handler.
// The render function sets headers, status, and body; a render error
// propagates to the pipeline's error boundary. Terminal handlers never fall
// through: once one runs, the request is answered.
func Terminal(render func(w http.ResponseWriter, r *http.Request) error) chain.Handler {
	return func(chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			if err := render(c.ResponseWriter(), c.Request()); err != nil {
				return nil, err
			}
			return c, nil
		}
	}
}

// String creates a text/plain terminal with 200 OK status.
func String(content string) chain.Handler {
	return StringWithStatus(content, http.StatusOK)
}

// StringWithStatus creates a text/plain terminal with a custom status code.
func StringWithStatus(content string, status int) chain.Handler {
	if status == 0 {
		status = http.StatusOK
	}
	return Terminal(func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(status)
		if content != "" {
			_, err := w.Write([]byte(content))
			return err
		}
		return nil
	})
}

// HTML creates a text/html terminal with 200 OK status.
func HTML(content string) chain.Handler {
	return HTMLWithStatus(content, http.StatusOK)
}

// HTMLWithStatus creates a text/html terminal with a custom status code.
func HTMLWithStatus(content string, status int) chain.Handler {
	if status == 0 {
		status = http.StatusOK
	}
	return Terminal(func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if content != "" {
			_, err := w.Write([]byte(content))
			return err
		}
		return nil
	})
}

// Bytes creates a terminal with a custom content type and 200 OK status.
func Bytes(content []byte, contentType string) chain.Handler {
	return Terminal(func(w http.ResponseWriter, r *http.Request) error {
		if contentType != "" {
			w.Header().Set("Content-Type", contentType)
		}
		w.WriteHeader(http.StatusOK)
		if len(content) > 0 {
			_, err := w.Write(content)
			return err
		}
		return nil
	})
}

// NoContent creates a 204 No Content terminal.
func NoContent() chain.Handler {
	return Status(http.StatusNoContent)
}

// Status creates an empty terminal with the specified status code.
func Status(code int) chain.Handler {
	if code == 0 {
		code = http.StatusOK
	}
	return Terminal(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(code)
		return nil
	})
}

// SetHeader sets a response header and continues the pipeline, so it can
// precede any terminal in a Compose chain.
func SetHeader(key, value string) chain.Handler {
	return func(next chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			c.ResponseWriter().Header().Set(key, value)
			return next(c)
		}
	}
}

// Error creates a terminal that propagates the given error to the pipeline's
// error boundary instead of writing a response itself.
func Error(err error) chain.Handler {
	return func(chain.Func) chain.Func {
		return func(*chain.Context) (*chain.Context, error) {
			return nil, err
		}
	}
}
