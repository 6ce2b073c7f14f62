package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/cascade/core/chain"
	"github.com/dmitrymomot/cascade/core/response"
	"github.com/dmitrymomot/cascade/middleware"
)

func run(t *testing.T, h chain.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	chain.HTTPHandler(h, chain.WithErrorHandler(response.ErrorHandler)).ServeHTTP(rec, req)
	return rec
}

func runGet(t *testing.T, h chain.Handler) *httptest.ResponseRecorder {
	t.Helper()
	return run(t, h, httptest.NewRequest("GET", "/", nil))
}

func TestRequiresAuth(t *testing.T) {
	t.Parallel()

	protected := func(verify func(c *chain.Context) bool) chain.Handler {
		return chain.Compose(
			middleware.RequiresAuth(verify, nil),
			response.String("secret"),
		)
	}

	t.Run("verified_request_passes", func(t *testing.T) {
		t.Parallel()

		rec := runGet(t, protected(func(*chain.Context) bool { return true }))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "secret", rec.Body.String())
	})

	t.Run("rejected_request_gets_401", func(t *testing.T) {
		t.Parallel()

		rec := runGet(t, protected(func(*chain.Context) bool { return false }))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("custom_challenge", func(t *testing.T) {
		t.Parallel()

		h := chain.Compose(
			middleware.RequiresAuth(
				func(*chain.Context) bool { return false },
				response.RedirectSeeOther("/login"),
			),
			response.String("secret"),
		)
		rec := runGet(t, h)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("skip_bypasses_verification", func(t *testing.T) {
		t.Parallel()

		h := chain.Compose(
			middleware.RequiresAuthWithConfig(middleware.AuthConfig{
				Skip:   func(c *chain.Context) bool { return c.RoutePath() == "/health" },
				Verify: func(*chain.Context) bool { return false },
			}),
			response.String("ok"),
		)
		rec := run(t, h, httptest.NewRequest("GET", "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("panics_without_verify", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			middleware.RequiresAuthWithConfig(middleware.AuthConfig{})
		})
	})
}

func TestRequiresRole(t *testing.T) {
	t.Parallel()

	hasRole := func(roles ...string) func(c *chain.Context, role string) bool {
		return func(c *chain.Context, role string) bool {
			for _, r := range roles {
				if r == role {
					return true
				}
			}
			return false
		}
	}

	t.Run("matching_role_passes", func(t *testing.T) {
		t.Parallel()

		h := chain.Compose(
			middleware.RequiresRole("admin", hasRole("admin", "user"), nil),
			response.String("admin area"),
		)
		rec := runGet(t, h)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing_role_gets_403", func(t *testing.T) {
		t.Parallel()

		h := chain.Compose(
			middleware.RequiresRole("admin", hasRole("user"), nil),
			response.String("admin area"),
		)
		rec := runGet(t, h)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("panics_on_missing_role_or_check", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			middleware.RequiresRoleWithConfig(middleware.RoleConfig{HasRole: hasRole()})
		})
		assert.Panics(t, func() {
			middleware.RequiresRoleWithConfig(middleware.RoleConfig{Role: "admin"})
		})
	})
}
