package route

import (
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/dmitrymomot/cascade/core/chain"
)

// trailing "(/?)" is the one regex suffix a Bind template may carry; it
// tolerates an optional trailing slash.
const trailingSlashGroup = "(/?)"

var captureRe = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// Bind matches named template captures directly onto the exported fields of
// T and invokes the project function with the populated value. Captures use
// `{name}` syntax and bind to the field tagged `route:"name"`, or to the
// field whose lowercased name matches. The template may end with "(/?)" to
// tolerate a trailing slash.
//
// Capture/field alignment is validated when the handler is constructed:
// a template whose captures don't map one-to-one onto T's bindable fields
// panics at pipeline build time. At match time a capture that cannot be
// coerced into its field's type declines without error.
func Bind[T any](template string, project func(v T) chain.Handler) chain.Handler {
	b, err := newBinder[T](template)
	if err != nil {
		panic(err)
	}
	return func(next chain.Func) chain.Func {
		return func(c *chain.Context) (*chain.Context, error) {
			v, ok := b.match(c.RoutePath())
			if !ok {
				return nil, nil
			}
			return project(v)(next)(c)
		}
	}
}

// binder is the compiled form of a Bind template: an anchored regexp with
// one named group per struct field, plus the field index each group fills.
type binder[T any] struct {
	re     *regexp.Regexp
	fields []int // struct field index per capture group, in group order
}

func newBinder[T any](template string) (*binder[T], error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrInvalidBindTarget, rt)
	}

	// Map capture name -> field index for every bindable field.
	byName := make(map[string]int)
	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() {
			continue
		}
		name, skip := fieldCaptureName(f)
		if skip {
			continue
		}
		if _, dup := byName[name]; dup {
			return nil, fmt.Errorf("%w: duplicate capture name %q on %s", ErrInvalidBindTarget, name, rt)
		}
		byName[name] = i
	}

	optionalSlash := strings.HasSuffix(template, trailingSlashGroup)
	if optionalSlash {
		template = strings.TrimSuffix(template, trailingSlashGroup)
	}

	var (
		expr   strings.Builder
		fields []int
		last   int
	)
	expr.WriteString("^")
	for _, loc := range captureRe.FindAllStringSubmatchIndex(template, -1) {
		expr.WriteString(regexp.QuoteMeta(template[last:loc[0]]))
		name := template[loc[2]:loc[3]]
		idx, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: template %q capture {%s} has no matching field on %s",
				ErrInvalidBindTarget, template, name, rt)
		}
		delete(byName, name)
		fields = append(fields, idx)
		expr.WriteString(`([^/]+)`)
		last = loc[1]
	}
	expr.WriteString(regexp.QuoteMeta(template[last:]))
	if optionalSlash {
		expr.WriteString(`/?`)
	}
	expr.WriteString("$")

	if len(byName) > 0 {
		missing := make([]string, 0, len(byName))
		for name := range byName {
			missing = append(missing, name)
		}
		return nil, fmt.Errorf("%w: template %q leaves fields unbound on %s: %s",
			ErrArityMismatch, template, rt, strings.Join(missing, ", "))
	}

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTemplate, template, err)
	}
	return &binder[T]{re: re, fields: fields}, nil
}

func (b *binder[T]) match(path string) (T, bool) {
	var v T
	m := b.re.FindStringSubmatch(path)
	if m == nil {
		return v, false
	}

	rv := reflect.ValueOf(&v).Elem()
	for gi, fi := range b.fields {
		raw, err := url.PathUnescape(m[gi+1])
		if err != nil {
			return v, false
		}
		field := rv.Field(fi)
		if err := setFieldValue(field, field.Type(), raw); err != nil {
			return v, false
		}
	}
	return v, true
}

// fieldCaptureName resolves the capture name for a struct field from its
// `route` tag, defaulting to the lowercase field name. A "-" tag skips the
// field entirely.
func fieldCaptureName(f reflect.StructField) (name string, skip bool) {
	tag := f.Tag.Get("route")
	if tag == "" {
		return strings.ToLower(f.Name), false
	}
	if tag == "-" {
		return "", true
	}
	return strings.Split(tag, ",")[0], false
}

// setFieldValue coerces a captured string into a field, covering the closed
// set of bindable types. Pointer fields allocate as needed.
func setFieldValue(field reflect.Value, fieldType reflect.Type, value string) error {
	if fieldType.Kind() == reflect.Pointer {
		if field.IsNil() {
			field.Set(reflect.New(fieldType.Elem()))
		}
		return setFieldValue(field.Elem(), fieldType.Elem(), value)
	}

	switch fieldType.Kind() {
	case reflect.String:
		field.SetString(value)
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid bool value %q", value)
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid integer value %q", value)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(value, 10, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid unsigned integer value %q", value)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(value, fieldType.Bits())
		if err != nil {
			return fmt.Errorf("invalid float value %q", value)
		}
		field.SetFloat(f)
	default:
		return fmt.Errorf("unsupported field type %s", fieldType)
	}
	return nil
}
