package convert

import (
	"errors"
	"strconv"
	"time"
	"unicode/utf8"
)

// Char is a single character value.
// It's a distinct type because rune and byte are aliases of int32 and uint8, which are converted as numbers.
type Char rune

func (c Char) String() string {
	return string(rune(c))
}

type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type float interface {
	~float32 | ~float64
}

func registerBuiltins(r *Registry) {
	Register(r, Signed[int](strconv.IntSize))
	Register(r, Signed[int8](8))
	Register(r, Signed[int16](16))
	Register(r, Signed[int32](32))
	Register(r, Signed[int64](64))
	Register(r, Unsigned[uint](strconv.IntSize))
	Register(r, Unsigned[uint8](8))
	Register(r, Unsigned[uint16](16))
	Register(r, Unsigned[uint32](32))
	Register(r, Unsigned[uint64](64))
	Register(r, Float[float32](32))
	Register(r, Float[float64](64))
	Register[string](r, Text)
	Register[Char](r, Character)
	Register[bool](r, Bool)
	Register[time.Duration](r, Duration)
}

// Signed produces a base 10 signed integer converter for a type with the given bit width.
func Signed[T signedInt](bits int) Func[T] {
	return func(text string) (T, error) {
		val, err := strconv.ParseInt(text, 10, bits)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, outOfRange[T](text)
			}
			return 0, invalid[T](text)
		}
		return T(val), nil
	}
}

// Unsigned produces a base 10 unsigned integer converter for a type with the given bit width.
// Negative text is malformed rather than wrapped around.
func Unsigned[T unsignedInt](bits int) Func[T] {
	return func(text string) (T, error) {
		val, err := strconv.ParseUint(text, 10, bits)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, outOfRange[T](text)
			}
			return 0, invalid[T](text)
		}
		return T(val), nil
	}
}

// Float produces a decimal floating point converter for a type with the given bit width.
func Float[T float](bits int) Func[T] {
	return func(text string) (T, error) {
		val, err := strconv.ParseFloat(text, bits)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, outOfRange[T](text)
			}
			return 0, invalid[T](text)
		}
		return T(val), nil
	}
}

// Text passes text through unchanged.
func Text(text string) (string, error) {
	return text, nil
}

// Character accepts exactly one character.
func Character(text string) (Char, error) {
	if utf8.RuneCountInString(text) != 1 {
		return 0, invalid[Char](text)
	}
	r, _ := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError {
		return 0, invalid[Char](text)
	}
	return Char(r), nil
}

// Bool accepts the values understood by [strconv.ParseBool].
func Bool(text string) (bool, error) {
	val, err := strconv.ParseBool(text)
	if err != nil {
		return false, invalid[bool](text)
	}
	return val, nil
}

// Duration accepts the values understood by [time.ParseDuration].
func Duration(text string) (time.Duration, error) {
	val, err := time.ParseDuration(text)
	if err != nil {
		return 0, invalid[time.Duration](text)
	}
	return val, nil
}
