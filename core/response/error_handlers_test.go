package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cascade/core/chain"
	"github.com/dmitrymomot/cascade/core/response"
)

func TestHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("error_interface", func(t *testing.T) {
		t.Parallel()

		err := response.NewHTTPError("something broke")
		assert.Equal(t, "something broke", err.Error())
		assert.Equal(t, http.StatusInternalServerError, err.StatusCode())
	})

	t.Run("with_message_copies", func(t *testing.T) {
		t.Parallel()

		custom := response.ErrNotFound.WithMessage("user not found")
		assert.Equal(t, "user not found", custom.Message)
		assert.Equal(t, http.StatusText(http.StatusNotFound), response.ErrNotFound.Message)
	})

	t.Run("with_error_records_cause_without_mutating", func(t *testing.T) {
		t.Parallel()

		base := response.ErrBadRequest.WithDetails(map[string]any{"field": "email"})
		wrapped := base.WithError(errors.New("parse failure"))
		assert.Equal(t, "parse failure", wrapped.Details["cause"])
		assert.Equal(t, "email", wrapped.Details["field"])
		assert.NotContains(t, base.Details, "cause")
	})
}

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("renders_http_error_status_and_message", func(t *testing.T) {
		t.Parallel()

		h := response.Error(response.ErrForbidden)
		rec := get(t, h, chain.WithErrorHandler(response.ErrorHandler))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, http.StatusText(http.StatusForbidden), rec.Body.String())
	})

	t.Run("unwraps_wrapped_http_error", func(t *testing.T) {
		t.Parallel()

		wrapped := fmt.Errorf("loading profile: %w", response.ErrNotFound)
		rec := get(t, response.Error(wrapped), chain.WithErrorHandler(response.ErrorHandler))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("plain_error_defaults_to_500", func(t *testing.T) {
		t.Parallel()

		rec := get(t, response.Error(errors.New("boom")), chain.WithErrorHandler(response.ErrorHandler))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), rec.Body.String())
	})
}

func TestJSONErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("renders_structured_body", func(t *testing.T) {
		t.Parallel()

		h := response.Error(response.ErrUnprocessableEntity.WithDetails(map[string]any{"field": "email"}))
		rec := get(t, h, chain.WithErrorHandler(response.JSONErrorHandler))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{
			"code": "unprocessable_entity",
			"message": "Unprocessable Entity",
			"details": {"field": "email"}
		}`, rec.Body.String())
	})

	t.Run("plain_error_becomes_internal_with_cause", func(t *testing.T) {
		t.Parallel()

		rec := get(t, response.Error(errors.New("db timeout")), chain.WithErrorHandler(response.JSONErrorHandler))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{
			"code": "internal_server_error",
			"message": "Internal Server Error",
			"details": {"cause": "db timeout"}
		}`, rec.Body.String())
	})
}

func TestNotFoundHandlers(t *testing.T) {
	t.Parallel()

	exhausted := chain.Skip

	t.Run("plain_text", func(t *testing.T) {
		t.Parallel()

		rec := get(t, exhausted, chain.WithNotFound(response.NotFound))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, http.StatusText(http.StatusNotFound), rec.Body.String())
	})

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		rec := get(t, exhausted, chain.WithNotFound(response.NotFoundJSON))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"code":"not_found","message":"Not Found"}`, rec.Body.String())
	})
}
