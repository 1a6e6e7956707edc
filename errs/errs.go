package errs

import (
	"errors"
	"fmt"
)

// Conditions that may be wrapped by one of the error kinds below.
// Use [errors.Is] to check for a specific condition, and the kind types to check the category.
var (
	ErrOptionCount     = errors.New("invalid option count")
	ErrEmptyTag        = errors.New("empty option tag")
	ErrMissingSpelling = errors.New("option has neither a short nor a long flag")
	ErrBadSpelling     = errors.New("malformed flag spelling")
	ErrDuplicateTag    = errors.New("duplicate option tag")
	ErrDuplicateFlag   = errors.New("duplicate flag")
	ErrNoConverter     = errors.New("no converter registered")

	ErrTooManyArgs          = errors.New("too many arguments")
	ErrInvalidToken         = errors.New("invalid argument detected")
	ErrUnexpectedPositional = errors.New("unexpected positional argument")
	ErrUnknownOption        = errors.New("unknown option or missing value for option")
	ErrMissingValue         = errors.New("option requires a value")
	ErrTerminalNotLast      = errors.New("no arguments allowed after terminal option")
	ErrInvalidFormat        = errors.New("invalid format")
	ErrUnknownTag           = errors.New("option not found")
	ErrTypeMismatch         = errors.New("option type mismatch")

	ErrOutOfRange = errors.New("value out of range")
)

// ConfigurationError reports a problem with how options were declared.
// It's detected when an option set is constructed, before any parsing happens.
type ConfigurationError struct {
	wrapped error
}

func (e *ConfigurationError) Error() string {
	if e.wrapped == nil {
		return "configuration error"
	}
	return "configuration error: " + e.wrapped.Error()
}

func (e *ConfigurationError) Is(err error) bool {
	_, ok := err.(*ConfigurationError)
	return ok
}

func (e *ConfigurationError) Unwrap() error {
	return e.wrapped
}

// InvalidArgument reports user input that can't be accepted.
type InvalidArgument struct {
	wrapped error
}

func (e *InvalidArgument) Error() string {
	if e.wrapped == nil {
		return "invalid argument"
	}
	return e.wrapped.Error()
}

func (e *InvalidArgument) Is(err error) bool {
	_, ok := err.(*InvalidArgument)
	return ok
}

func (e *InvalidArgument) Unwrap() error {
	return e.wrapped
}

// OutOfRange reports numeric text that is well-formed, but can't be represented by the target type.
type OutOfRange struct {
	wrapped error
}

func (e *OutOfRange) Error() string {
	if e.wrapped == nil {
		return ErrOutOfRange.Error()
	}
	return e.wrapped.Error()
}

func (e *OutOfRange) Is(err error) bool {
	_, ok := err.(*OutOfRange)
	return ok
}

func (e *OutOfRange) Unwrap() error {
	return e.wrapped
}

// Config creates a [ConfigurationError] wrapping the cause.
// The format and args parameters are passed to [fmt.Sprintf] to describe the cause.
func Config(cause error, format string, args ...any) error {
	return &ConfigurationError{wrapped: wrap(cause, format, args...)}
}

// Invalid creates an [InvalidArgument] wrapping the cause.
func Invalid(cause error, format string, args ...any) error {
	return &InvalidArgument{wrapped: wrap(cause, format, args...)}
}

// Range creates an [OutOfRange] error.
// The [ErrOutOfRange] condition is always included.
func Range(format string, args ...any) error {
	return &OutOfRange{wrapped: wrap(ErrOutOfRange, format, args...)}
}

func wrap(cause error, format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)
	switch {
	case cause == nil && len(detail) == 0:
		return nil
	case cause == nil:
		return errors.New(detail)
	case len(detail) == 0:
		return cause
	default:
		return fmt.Errorf("%w: %s", cause, detail)
	}
}
