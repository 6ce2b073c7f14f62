package response

import (
	"fmt"
	"mime"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"github.com/dmitrymomot/cascade/core/chain"
)

// NegotiateConfig configures content negotiation. Offers maps a media type
// to the terminal constructor used when the client prefers it; iteration
// over client preferences is in descending q-value order.
type NegotiateConfig struct {
	// Offers maps offered media types to renderers. Required.
	Offers map[string]func(v any) chain.Handler
	// Order ranks offers for wildcard ranges; unlisted offers follow in
	// lexical order. Without it a */* client would get a random offer.
	Order []string
	// Unacceptable handles requests whose Accept header matches no offer
	// (default: 406 with the list of offered types).
	Unacceptable chain.Handler
}

// Negotiate renders v as JSON, XML, or plain text according to the request's
// Accept header. Requests without an Accept header get JSON; requests that
// accept none of the offers get 406 Not Acceptable.
func Negotiate(v any) chain.Handler {
	return NegotiateWithConfig(defaultNegotiateConfig, v)
}

var defaultNegotiateConfig = NegotiateConfig{
	Offers: map[string]func(v any) chain.Handler{
		"application/json": JSON,
		"application/xml":  XML,
		"text/xml":         XML,
		"text/plain": func(v any) chain.Handler {
			return String(fmt.Sprintf("%v", v))
		},
	},
	Order: []string{"application/json", "application/xml", "text/xml", "text/plain"},
}

// NegotiateWithConfig renders v with the first offer acceptable to the
// client. Construction panics when no offers are configured.
func NegotiateWithConfig(cfg NegotiateConfig, v any) chain.Handler {
	if len(cfg.Offers) == 0 {
		panic("response: negotiate requires at least one offer")
	}
	offers := orderedOffers(cfg)
	if cfg.Unacceptable == nil {
		offered := make([]string, 0, len(offers))
		for _, o := range offers {
			offered = append(offered, o.mediaType)
		}
		cfg.Unacceptable = StringWithStatus(
			"acceptable media types: "+strings.Join(offered, ", "),
			http.StatusNotAcceptable,
		)
	}

	return func(next chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			accept := c.Request().Header.Get("Accept")
			if accept == "" {
				accept = "*/*"
			}
			for _, mr := range parseAccept(accept) {
				for _, o := range offers {
					if mr.matches(o.mediaType) {
						return o.render(v)(next)(c)
					}
				}
			}
			return cfg.Unacceptable(next)(c)
		}
	}
}

type offer struct {
	mediaType string
	render    func(v any) chain.Handler
}

// orderedOffers flattens the offer map into a deterministic preference list.
func orderedOffers(cfg NegotiateConfig) []offer {
	seen := make(map[string]bool, len(cfg.Offers))
	offers := make([]offer, 0, len(cfg.Offers))
	for _, mt := range cfg.Order {
		if render, ok := cfg.Offers[mt]; ok && !seen[mt] {
			offers = append(offers, offer{mediaType: mt, render: render})
			seen[mt] = true
		}
	}
	rest := make([]string, 0, len(cfg.Offers))
	for mt := range cfg.Offers {
		if !seen[mt] {
			rest = append(rest, mt)
		}
	}
	sort.Strings(rest)
	for _, mt := range rest {
		offers = append(offers, offer{mediaType: mt, render: cfg.Offers[mt]})
	}
	return offers
}

// mediaRange is one parsed element of an Accept header.
type mediaRange struct {
	mtype   string
	subtype string
	q       float64
}

func (m mediaRange) matches(offer string) bool {
	t, s, ok := strings.Cut(offer, "/")
	if !ok {
		return false
	}
	if m.mtype != "*" && !strings.EqualFold(m.mtype, t) {
		return false
	}
	if m.subtype != "*" && !strings.EqualFold(m.subtype, s) {
		return false
	}
	return true
}

// parseAccept splits an Accept header into media ranges ordered by q-value,
// then specificity. Malformed elements are skipped; q=0 ranges are excluded
// outright per RFC 9110.
func parseAccept(header string) []mediaRange {
	var ranges []mediaRange
	for _, part := range strings.Split(header, ",") {
		mt, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		t, s, ok := strings.Cut(mt, "/")
		if !ok {
			continue
		}
		q := 1.0
		if qs, ok := params["q"]; ok {
			parsed, err := strconv.ParseFloat(qs, 64)
			if err != nil || parsed <= 0 {
				continue
			}
			if parsed < q {
				q = parsed
			}
		}
		ranges = append(ranges, mediaRange{mtype: t, subtype: s, q: q})
	}

	sort.SliceStable(ranges, func(i, j int) bool {
		if ranges[i].q != ranges[j].q {
			return ranges[i].q > ranges[j].q
		}
		return specificity(ranges[i]) > specificity(ranges[j])
	})
	return ranges
}

func specificity(m mediaRange) int {
	switch {
	case m.mtype != "*" && m.subtype != "*":
		return 2
	case m.mtype != "*":
		return 1
	}
	return 0
}
