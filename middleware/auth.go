package middleware

import (
	"github.com/dmitrymomot/cascade/core/chain"
	"github.com/dmitrymomot/cascade/core/response"
)

// AuthConfig configures the authentication guard.
type AuthConfig struct {
	// Skip defines a function to skip the guard for specific requests
	Skip func(c *chain.Context) bool
	// Verify decides whether the request carries an authenticated identity.
	// The check itself is host-supplied (cookie session, JWT claims, mTLS);
	// the guard only consumes its verdict. Required.
	Verify func(c *chain.Context) bool
	// Challenge handles rejected requests (default: 401 via the error boundary)
	Challenge chain.Handler
}

// RequiresAuth guards the downstream pipeline with a host-supplied identity
// check, delegating rejected requests to the challenge handler.
func RequiresAuth(verify func(c *chain.Context) bool, challenge chain.Handler) chain.Handler {
	return RequiresAuthWithConfig(AuthConfig{Verify: verify, Challenge: challenge})
}

// RequiresAuthWithConfig creates an authentication guard with custom
// configuration. Panics if no Verify function is provided.
func RequiresAuthWithConfig(cfg AuthConfig) chain.Handler {
	if cfg.Verify == nil {
		panic("auth middleware: verify function is required")
	}
	if cfg.Challenge == nil {
		cfg.Challenge = response.Error(response.ErrUnauthorized)
	}

	return func(next chain.Func) chain.Func {
		challenge := cfg.Challenge(next)
		return func(c *chain.Context) (*chain.Context, error) {
			if cfg.Skip != nil && cfg.Skip(c) {
				return next(c)
			}
			if cfg.Verify(c) {
				return next(c)
			}
			return challenge(c)
		}
	}
}

// RoleConfig configures the role guard.
type RoleConfig struct {
	// Skip defines a function to skip the guard for specific requests
	Skip func(c *chain.Context) bool
	// Role is the role the downstream pipeline requires. Required.
	Role string
	// HasRole is the host-supplied claims check. Required.
	HasRole func(c *chain.Context, role string) bool
	// Forbidden handles requests without the role (default: 403 via the error boundary)
	Forbidden chain.Handler
}

// RequiresRole guards the downstream pipeline with a host-supplied role
// check, delegating rejected requests to the forbidden handler.
func RequiresRole(role string, hasRole func(c *chain.Context, role string) bool, forbidden chain.Handler) chain.Handler {
	return RequiresRoleWithConfig(RoleConfig{Role: role, HasRole: hasRole, Forbidden: forbidden})
}

// RequiresRoleWithConfig creates a role guard with custom configuration.
// Panics if the role or the HasRole function is missing.
func RequiresRoleWithConfig(cfg RoleConfig) chain.Handler {
	if cfg.Role == "" {
		panic("role middleware: role is required")
	}
	if cfg.HasRole == nil {
		panic("role middleware: role check function is required")
	}
	if cfg.Forbidden == nil {
		cfg.Forbidden = response.Error(response.ErrForbidden)
	}

	return func(next chain.Func) chain.Func {
		forbidden := cfg.Forbidden(next)
		return func(c *chain.Context) (*chain.Context, error) {
			if cfg.Skip != nil && cfg.Skip(c) {
				return next(c)
			}
			if cfg.HasRole(c, cfg.Role) {
				return next(c)
			}
			return forbidden(c)
		}
	}
}
