package middleware

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/cascade/core/chain"
)

// languageContextKey is used as a key for storing the negotiated language.
type languageContextKey struct{}

// LanguageConfig configures Accept-Language negotiation.
type LanguageConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(c *chain.Context) bool
	// Supported lists the languages the application can serve; the first is
	// the fallback when negotiation fails. Required.
	Supported []language.Tag
}

// AcceptLanguage negotiates the request's Accept-Language header against the
// supported tags and stores the winner in the context. The first tag doubles
// as the fallback. Panics when no tags are supplied or a tag is malformed.
func AcceptLanguage(supported ...string) chain.Handler {
	tags := make([]language.Tag, 0, len(supported))
	for _, s := range supported {
		tags = append(tags, language.MustParse(s))
	}
	return AcceptLanguageWithConfig(LanguageConfig{Supported: tags})
}

// AcceptLanguageWithConfig creates a language negotiation middleware with
// custom configuration. Panics without supported tags.
func AcceptLanguageWithConfig(cfg LanguageConfig) chain.Handler {
	if len(cfg.Supported) == 0 {
		panic("language middleware: at least one supported language is required")
	}
	matcher := language.NewMatcher(cfg.Supported)

	return func(next chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			if cfg.Skip != nil && cfg.Skip(c) {
				return next(c)
			}

			tag, _ := language.MatchStrings(matcher, c.Request().Header.Get("Accept-Language"))
			c.SetValue(languageContextKey{}, tag)
			return next(c)
		}
	}
}

// GetLanguage retrieves the negotiated language tag, reporting false when
// the middleware did not run.
func GetLanguage(c *chain.Context) (language.Tag, bool) {
	tag, ok := c.Value(languageContextKey{}).(language.Tag)
	return tag, ok
}
