package convert

import (
	"fmt"
	"github.com/saylorsolutions/etched/errs"
	"reflect"
)

// Func parses text into a value of type T.
// Malformed text should be reported with [errs.Invalid] and [errs.ErrInvalidFormat], and values that can't be represented with [errs.Range].
type Func[T any] func(text string) (T, error)

// Registry maps a semantic value type to the [Func] that produces it.
//
// A Registry is not concurrency safe.
// Converters should be registered before parsing starts.
type Registry struct {
	funcs map[reflect.Type]any
}

// Default is the [Registry] used by parsers that haven't been given one.
// It's populated with the built-in converters, and custom types may be added with [Register].
var Default = NewRegistry()

// NewRegistry creates a [Registry] holding the built-in converters.
func NewRegistry() *Registry {
	r := Empty()
	registerBuiltins(r)
	return r
}

// Empty creates a [Registry] with no converters at all.
func Empty() *Registry {
	return &Registry{funcs: map[reflect.Type]any{}}
}

// Clone returns a copy of the Registry that may be extended without affecting the original.
func (r *Registry) Clone() *Registry {
	cp := Empty()
	for k, v := range r.funcs {
		cp.funcs[k] = v
	}
	return cp
}

// Has reports whether a converter is registered for the given type.
func (r *Registry) Has(typ reflect.Type) bool {
	_, ok := r.funcs[typ]
	return ok
}

// Register adds or replaces the converter for T.
// Passing a nil [Registry] or [Func] will panic.
func Register[T any](r *Registry, fn Func[T]) {
	if r == nil {
		panic("nil registry")
	}
	if fn == nil {
		panic("nil converter")
	}
	r.funcs[TypeOf[T]()] = fn
}

// Lookup returns the converter registered for T, if any.
func Lookup[T any](r *Registry) (Func[T], bool) {
	if r == nil {
		return nil, false
	}
	fn, ok := r.funcs[TypeOf[T]()]
	if !ok {
		return nil, false
	}
	return fn.(Func[T]), true
}

// Convert parses text into T with the converter registered in r.
// An [errs.ConfigurationError] is returned if no converter exists for T.
func Convert[T any](r *Registry, text string) (T, error) {
	fn, ok := Lookup[T](r)
	if !ok {
		var zero T
		return zero, errs.Config(errs.ErrNoConverter, "type %s", TypeOf[T]())
	}
	return fn(text)
}

// ConvertPtr is like [Convert], but an absent source is treated as malformed text.
func ConvertPtr[T any](r *Registry, text *string) (T, error) {
	if text == nil {
		var zero T
		return zero, errs.Invalid(errs.ErrInvalidFormat, "null source for %s", TypeOf[T]())
	}
	return Convert[T](r, *text)
}

// TypeOf returns the [reflect.Type] used to key T in a [Registry].
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func invalid[T any](text string) error {
	return errs.Invalid(errs.ErrInvalidFormat, "%q is not a valid %s", text, TypeOf[T]())
}

func outOfRange[T any](text string) error {
	return errs.Range("%q does not fit in %s", text, TypeOf[T]())
}

// Invalid is a helper for custom converters that reports text as malformed for T, with an optional reason.
func Invalid[T any](text string, reason ...any) error {
	if len(reason) == 0 {
		return invalid[T](text)
	}
	return errs.Invalid(errs.ErrInvalidFormat, "%q is not a valid %s: %s", text, TypeOf[T](), fmt.Sprint(reason...))
}
