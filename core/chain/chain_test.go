package chain_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cascade/core/chain"
)

// newTestContext builds a context over a recorder for direct pipeline calls.
func newTestContext(t *testing.T, path string) (*chain.Context, *httptest.ResponseRecorder) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", path, nil)
	return chain.NewContext(rec, req), rec
}

// identity is the terminal continuation used by the adapter.
func identity(c *chain.Context) (*chain.Context, error) {
	return c, nil
}

// participate builds a handler that records its invocation and proceeds.
func participate(called *bool) chain.Handler {
	return func(next chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			*called = true
			return next(c)
		}
	}
}

// decline builds a handler that records its invocation and declines.
func decline(called *bool) chain.Handler {
	return func(next chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			*called = true
			return nil, nil
		}
	}
}

// write builds a terminal handler committing the given body.
func write(body string) chain.Handler {
	return func(next chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			if _, err := c.ResponseWriter().Write([]byte(body)); err != nil {
				return nil, err
			}
			return c, nil
		}
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	t.Run("runs_both_handlers_in_order", func(t *testing.T) {
		t.Parallel()

		var order []string
		h1 := func(next chain.Func) chain.Func {
			return func(c *chain.Context) (*chain.Context, error) {
				order = append(order, "h1")
				return next(c)
			}
		}
		h2 := func(next chain.Func) chain.Func {
			return func(c *chain.Context) (*chain.Context, error) {
				order = append(order, "h2")
				return next(c)
			}
		}

		c, _ := newTestContext(t, "/")
		res, err := chain.Compose(h1, h2)(identity)(c)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, []string{"h1", "h2"}, order)
	})

	t.Run("absent_first_handler_never_invokes_second", func(t *testing.T) {
		t.Parallel()

		var declined, called bool
		c, _ := newTestContext(t, "/")

		res, err := chain.Compose(decline(&declined), participate(&called))(identity)(c)
		require.NoError(t, err)
		assert.Nil(t, res)
		assert.True(t, declined)
		assert.False(t, called, "second handler must not run after non-participation")
	})

	t.Run("started_response_skips_second_handler", func(t *testing.T) {
		t.Parallel()

		var called, finalCalled bool
		c, rec := newTestContext(t, "/")

		final := func(c *chain.Context) (*chain.Context, error) {
			finalCalled = true
			return c, nil
		}
		res, err := chain.Compose(write("committed"), participate(&called))(final)(c)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.False(t, called, "second handler must not run once the response started")
		assert.True(t, finalCalled, "outer continuation receives control instead")
		assert.Equal(t, "committed", rec.Body.String())
	})

	t.Run("error_propagates_untouched", func(t *testing.T) {
		t.Parallel()

		sentinel := errors.New("business failure")
		failing := func(next chain.Func) chain.Func {
			return func(c *chain.Context) (*chain.Context, error) {
				return nil, sentinel
			}
		}
		var called bool
		c, _ := newTestContext(t, "/")

		_, err := chain.Compose(failing, participate(&called))(identity)(c)
		assert.ErrorIs(t, err, sentinel)
		assert.False(t, called)
	})
}

func TestChoose(t *testing.T) {
	t.Parallel()

	t.Run("first_present_result_wins", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestContext(t, "/")
		h := chain.Choose(write("first"), write("second"))

		res, err := h(identity)(c)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, "first", rec.Body.String())
	})

	t.Run("ordering_is_observable", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestContext(t, "/")
		h := chain.Choose(write("second"), write("first"))

		_, err := h(identity)(c)
		require.NoError(t, err)
		assert.Equal(t, "second", rec.Body.String())
	})

	t.Run("falls_through_declining_handlers", func(t *testing.T) {
		t.Parallel()

		var d1, d2 bool
		c, rec := newTestContext(t, "/")
		h := chain.Choose(decline(&d1), decline(&d2), write("third"))

		res, err := h(identity)(c)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.True(t, d1)
		assert.True(t, d2)
		assert.Equal(t, "third", rec.Body.String())
	})

	t.Run("all_absent_yields_absent", func(t *testing.T) {
		t.Parallel()

		var d1, d2 bool
		c, _ := newTestContext(t, "/")

		res, err := chain.Choose(decline(&d1), decline(&d2))(identity)(c)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("empty_choose_is_absent", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestContext(t, "/")
		res, err := chain.Choose()(identity)(c)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("error_stops_the_scan", func(t *testing.T) {
		t.Parallel()

		sentinel := errors.New("boom")
		failing := func(next chain.Func) chain.Func {
			return func(c *chain.Context) (*chain.Context, error) {
				return nil, sentinel
			}
		}
		var called bool
		c, _ := newTestContext(t, "/")

		_, err := chain.Choose(failing, participate(&called))(identity)(c)
		assert.ErrorIs(t, err, sentinel)
		assert.False(t, called, "candidates after a failure must not run")
	})
}

func TestPipe(t *testing.T) {
	t.Parallel()

	t.Run("composes_left_to_right", func(t *testing.T) {
		t.Parallel()

		var order []string
		step := func(name string) chain.Handler {
			return func(next chain.Func) chain.Func {
				return func(c *chain.Context) (*chain.Context, error) {
					order = append(order, name)
					return next(c)
				}
			}
		}

		c, _ := newTestContext(t, "/")
		res, err := chain.Pipe(step("a"), step("b"), step("c"))(identity)(c)
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, []string{"a", "b", "c"}, order)
	})

	t.Run("empty_pipe_is_identity", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestContext(t, "/")
		res, err := chain.Pipe()(identity)(c)
		require.NoError(t, err)
		assert.Same(t, c, res)
	})
}

func TestWarbler(t *testing.T) {
	t.Parallel()

	t.Run("defers_handler_construction_per_invocation", func(t *testing.T) {
		t.Parallel()

		var builds int
		h := chain.Warbler(func(c *chain.Context) chain.Handler {
			builds++
			return chain.Continue
		})
		fn := h(identity)

		for range 3 {
			c, _ := newTestContext(t, "/")
			_, err := fn(c)
			require.NoError(t, err)
		}
		assert.Equal(t, 3, builds, "builder must run once per request, not once per pipeline")
	})

	t.Run("sees_the_live_context", func(t *testing.T) {
		t.Parallel()

		h := chain.Warbler(func(c *chain.Context) chain.Handler {
			return write(c.Request().URL.Path)
		})

		c, rec := newTestContext(t, "/fresh")
		_, err := h(identity)(c)
		require.NoError(t, err)
		assert.Equal(t, "/fresh", rec.Body.String())
	})
}

func TestSkipAndContinue(t *testing.T) {
	t.Parallel()

	t.Run("skip_always_declines", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestContext(t, "/")
		res, err := chain.Skip(identity)(c)
		require.NoError(t, err)
		assert.Nil(t, res)
	})

	t.Run("continue_is_compose_identity", func(t *testing.T) {
		t.Parallel()

		c, rec := newTestContext(t, "/")
		_, err := chain.Compose(chain.Continue, write("body"))(identity)(c)
		require.NoError(t, err)
		assert.Equal(t, "body", rec.Body.String())
	})
}
