package route

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies the declared type of a placeholder segment.
type Kind int

const (
	// KindBool matches the literals "true" or "false", case-insensitively.
	KindBool Kind = iota
	// KindChar matches exactly one character other than a slash.
	KindChar
	// KindString matches up to the next slash or literal delimiter and
	// percent-decodes the captured slice.
	KindString
	// KindInt matches a signed 32-bit integer.
	KindInt
	// KindInt64 matches a signed 64-bit integer.
	KindInt64
	// KindFloat matches an IEEE double, with optional fractional part.
	KindFloat
	// KindUUID matches a canonical hyphenated UUID.
	KindUUID
)

// capture group per kind; string and char exclude the raw slash so a
// placeholder never swallows a path delimiter. Encoded slashes (%2F) pass
// through because matching runs on the raw path.
var kindExprs = map[Kind]string{
	KindBool:   `((?i:true|false))`,
	KindChar:   `([^/])`,
	KindString: `([^/]+)`,
	KindInt:    `(-?\d+)`,
	KindInt64:  `(-?\d+)`,
	KindFloat:  `(-?\d+(?:\.\d+)?)`,
	KindUUID:   `([0-9A-Fa-f]{8}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{4}-[0-9A-Fa-f]{12})`,
}

var verbKinds = map[byte]Kind{
	'b': KindBool,
	'c': KindChar,
	's': KindString,
	'i': KindInt,
	'd': KindInt64,
	'f': KindFloat,
	'O': KindUUID,
}

// token is one parsed piece of a template: a literal run or a placeholder.
type token struct {
	lit         string
	kind        Kind
	placeholder bool
}

// Pattern is the compiled, immutable form of a route template. Patterns are
// compiled once when a route handler is constructed and are safe for
// unsynchronized concurrent matching.
type Pattern struct {
	template        string
	caseInsensitive bool
	tokens          []token
	kinds           []Kind
	re              *regexp.Regexp
}

// Parse compiles a case-sensitive route template. Placeholders use
// printf-style verbs: %b bool, %c char, %s string, %i int32, %d int64,
// %f float64, %O UUID; %% is a literal percent sign.
func Parse(template string) (*Pattern, error) {
	return compile(template, false)
}

// ParseCI compiles a case-insensitive route template.
func ParseCI(template string) (*Pattern, error) {
	return compile(template, true)
}

// MustParse is Parse that panics on a malformed template. Route constructors
// use it so that an invalid format specifier fails at pipeline build time,
// before any traffic is served.
func MustParse(template string) *Pattern {
	p, err := Parse(template)
	if err != nil {
		panic(err)
	}
	return p
}

// MustParseCI is ParseCI that panics on a malformed template.
func MustParseCI(template string) *Pattern {
	p, err := ParseCI(template)
	if err != nil {
		panic(err)
	}
	return p
}

func compile(template string, caseInsensitive bool) (*Pattern, error) {
	var (
		tokens []token
		kinds  []Kind
		lit    strings.Builder
	)

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{lit: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(template); i++ {
		if template[i] != '%' {
			lit.WriteByte(template[i])
			continue
		}
		if i+1 >= len(template) {
			return nil, fmt.Errorf("%w: %q: dangling %% at end of template", ErrInvalidTemplate, template)
		}
		i++
		if template[i] == '%' {
			lit.WriteByte('%')
			continue
		}
		kind, ok := verbKinds[template[i]]
		if !ok {
			return nil, fmt.Errorf("%w: %q: unsupported format specifier %%%c", ErrInvalidTemplate, template, template[i])
		}
		flush()
		tokens = append(tokens, token{kind: kind, placeholder: true})
		kinds = append(kinds, kind)
	}
	flush()

	var expr strings.Builder
	if caseInsensitive {
		expr.WriteString(`(?i)`)
	}
	expr.WriteString(`^`)
	for _, t := range tokens {
		if t.placeholder {
			expr.WriteString(kindExprs[t.kind])
			continue
		}
		expr.WriteString(regexp.QuoteMeta(t.lit))
	}
	expr.WriteString(`$`)

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTemplate, template, err)
	}

	return &Pattern{
		template:        template,
		caseInsensitive: caseInsensitive,
		tokens:          tokens,
		kinds:           kinds,
		re:              re,
	}, nil
}

// Template returns the original template string.
func (p *Pattern) Template() string {
	return p.template
}

// CaseInsensitive reports whether literals match regardless of case.
func (p *Pattern) CaseInsensitive() bool {
	return p.caseInsensitive
}

// Arity returns the number of placeholders in the pattern.
func (p *Pattern) Arity() int {
	return len(p.kinds)
}

// Match walks the path against the pattern and extracts typed arguments in
// placeholder order. It reports false on literal mismatch, premature end of
// path, trailing remainder, or a capture that fails to parse into its
// declared type; malformed values never produce an error.
func (p *Pattern) Match(path string) ([]any, bool) {
	m := p.re.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}

	args := make([]any, len(p.kinds))
	for i, kind := range p.kinds {
		v, ok := parseCapture(kind, m[i+1])
		if !ok {
			return nil, false
		}
		args[i] = v
	}
	return args, true
}

func parseCapture(kind Kind, raw string) (any, bool) {
	switch kind {
	case KindBool:
		switch strings.ToLower(raw) {
		case "true":
			return true, true
		case "false":
			return false, true
		}
		return nil, false
	case KindChar:
		rs := []rune(raw)
		if len(rs) != 1 {
			return nil, false
		}
		return rs[0], true
	case KindString:
		decoded, err := url.PathUnescape(raw)
		if err != nil {
			return nil, false
		}
		return decoded, true
	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, false
		}
		return int32(n), true
	case KindInt64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	case KindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, false
		}
		return f, true
	case KindUUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, false
		}
		return id, true
	}
	return nil, false
}

// RenderPath substitutes values into the pattern's placeholders, producing a
// concrete path. String values are percent-encoded, so rendering and
// matching round-trip. Arity or type mismatches return an error: link
// generation with the wrong arguments is a programming mistake, not a
// routing failure.
func (p *Pattern) RenderPath(values ...any) (string, error) {
	if len(values) != len(p.kinds) {
		return "", fmt.Errorf("%w: template %q has %d placeholders, got %d values",
			ErrArityMismatch, p.template, len(p.kinds), len(values))
	}

	var (
		b   strings.Builder
		idx int
	)
	for _, t := range p.tokens {
		if !t.placeholder {
			b.WriteString(t.lit)
			continue
		}
		seg, err := renderValue(t.kind, values[idx])
		if err != nil {
			return "", fmt.Errorf("template %q, placeholder %d: %w", p.template, idx, err)
		}
		b.WriteString(seg)
		idx++
	}
	return b.String(), nil
}

func renderValue(kind Kind, value any) (string, error) {
	switch kind {
	case KindBool:
		v, ok := value.(bool)
		if !ok {
			return "", fmt.Errorf("%w: expected bool, got %T", ErrTypeMismatch, value)
		}
		return strconv.FormatBool(v), nil
	case KindChar:
		switch v := value.(type) {
		case rune:
			return string(v), nil
		case byte:
			return string(rune(v)), nil
		}
		return "", fmt.Errorf("%w: expected rune, got %T", ErrTypeMismatch, value)
	case KindString:
		v, ok := value.(string)
		if !ok {
			return "", fmt.Errorf("%w: expected string, got %T", ErrTypeMismatch, value)
		}
		return url.PathEscape(v), nil
	case KindInt:
		switch v := value.(type) {
		case int32:
			return strconv.FormatInt(int64(v), 10), nil
		case int:
			return strconv.Itoa(v), nil
		}
		return "", fmt.Errorf("%w: expected int32, got %T", ErrTypeMismatch, value)
	case KindInt64:
		switch v := value.(type) {
		case int64:
			return strconv.FormatInt(v, 10), nil
		case int:
			return strconv.Itoa(v), nil
		}
		return "", fmt.Errorf("%w: expected int64, got %T", ErrTypeMismatch, value)
	case KindFloat:
		v, ok := value.(float64)
		if !ok {
			return "", fmt.Errorf("%w: expected float64, got %T", ErrTypeMismatch, value)
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case KindUUID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return "", fmt.Errorf("%w: expected uuid.UUID, got %T", ErrTypeMismatch, value)
		}
		return v.String(), nil
	}
	return "", fmt.Errorf("%w: unknown placeholder kind %d", ErrTypeMismatch, kind)
}
