package route

import "errors"

var (
	// ErrInvalidTemplate indicates a route template with a syntactically
	// invalid or unsupported format specifier.
	ErrInvalidTemplate = errors.New("invalid route template")

	// ErrArityMismatch indicates a placeholder/argument count mismatch when
	// rendering a path or binding a struct.
	ErrArityMismatch = errors.New("placeholder arity mismatch")

	// ErrTypeMismatch indicates a value of the wrong type supplied for a
	// placeholder when rendering a path.
	ErrTypeMismatch = errors.New("placeholder type mismatch")

	// ErrInvalidBindTarget indicates a Bind target type whose fields do not
	// align one-to-one with the template's named captures.
	ErrInvalidBindTarget = errors.New("invalid bind target")
)
