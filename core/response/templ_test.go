package response_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cascade/core/chain"
	"github.com/dmitrymomot/cascade/core/response"
)

func TestTempl(t *testing.T) {
	t.Parallel()

	page := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<main>rendered</main>")
		return err
	})

	t.Run("renders_component_as_html", func(t *testing.T) {
		t.Parallel()

		rec := get(t, response.Templ(page))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, "<main>rendered</main>", rec.Body.String())
	})

	t.Run("custom_status", func(t *testing.T) {
		t.Parallel()

		rec := get(t, response.TemplWithStatus(page, http.StatusNotFound))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("component_sees_request_scoped_values", func(t *testing.T) {
		t.Parallel()

		type key struct{}
		aware := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			v, _ := ctx.Value(key{}).(string)
			_, err := io.WriteString(w, v)
			return err
		})
		h := chain.Compose(
			chain.Warbler(func(c *chain.Context) chain.Handler {
				c.SetValue(key{}, "from-pipeline")
				return chain.Continue
			}),
			response.Templ(aware),
		)

		rec := get(t, h)
		assert.Equal(t, "from-pipeline", rec.Body.String())
	})

	t.Run("render_error_reaches_boundary", func(t *testing.T) {
		t.Parallel()

		failing := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			return errors.New("template exploded")
		})

		// Headers are already committed, so the boundary can only observe.
		rec := get(t, response.Templ(failing))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("nil_component_errors", func(t *testing.T) {
		t.Parallel()

		rec := get(t, response.Templ(nil), chain.WithErrorHandler(response.ErrorHandler))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
