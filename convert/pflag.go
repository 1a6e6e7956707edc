package convert

import (
	"github.com/saylorsolutions/etched/errs"
	flag "github.com/spf13/pflag"
)

// FromValue adapts a [flag.Value] implementation into a [Func], so types already written for pflag can be reused as option types.
// The newFn function must return a fresh, settable value each time it's called, usually a pointer to a zero value.
//
// A failure from Set is reported as malformed text.
func FromValue[T flag.Value](newFn func() T) Func[T] {
	if newFn == nil {
		panic("nil value constructor")
	}
	return func(text string) (T, error) {
		val := newFn()
		if err := val.Set(text); err != nil {
			var zero T
			return zero, errs.Invalid(errs.ErrInvalidFormat, "%q is not a valid %s: %v", text, val.Type(), err)
		}
		return val, nil
	}
}
