package etched

import (
	"fmt"
	"github.com/saylorsolutions/etched/convert"
	"github.com/saylorsolutions/etched/env"
	"reflect"
	"strings"
	"time"
)

// Reserved tags for terminal options.
// Once a terminal option is matched, no further arguments may follow it.
const (
	HelpTag    = "help"
	VersionTag = "version"
)

// Option is a declared command-line switch, whatever the type of its value.
// Options are created with [Opt] or one of the typed helpers, and are only usable by the package that defines them.
type Option interface {
	// Tag is the unique identifier used to retrieve the option after parsing.
	Tag() string
	// Short is the single dash spelling, like "-p", or an empty string if there isn't one.
	Short() string
	// Long is the double dash spelling, like "--port", or an empty string if there isn't one.
	Long() string
	Description() string
	// IsFlag is true for boolean options, which never consume a value argument.
	IsFlag() bool
	// IsSet is true if the option currently holds a value.
	IsSet() bool
	// Type is the semantic type of the option's value.
	Type() reflect.Type

	declaration() declaration
	hasConverter(reg *convert.Registry) bool
	install(reg *convert.Registry) error
	reset()
	setFlag()
	setText(reg *convert.Registry, text string) error
	callback() func() error
}

var _ Option = (*Value[int])(nil)

// Value is an [Option] holding a value of type T.
// References returned from an [OptionSet] are live, so they reflect the latest parse.
type Value[T any] struct {
	tag     string
	short   string
	long    string
	desc    string
	envKey  string
	def     *T
	val     *T
	initial *T
	conv    convert.Func[T]
	isFlag  bool
	cb      func() error
}

// Opt declares an option with a value of type T.
// The tag is trimmed of surrounding whitespace, and either spelling may be empty to indicate that it's absent.
//
// Converting text to T uses the converter given with [Value.Convert], or the one registered for T in the option set's [convert.Registry].
func Opt[T any](tag, short, long string) *Value[T] {
	_, isFlag := any(*new(T)).(bool)
	return &Value[T]{
		tag:    strings.TrimSpace(tag),
		short:  short,
		long:   long,
		isFlag: isFlag,
	}
}

// Describe sets the description shown in help output.
func (v *Value[T]) Describe(description string) *Value[T] {
	v.desc = description
	return v
}

// Default sets the value installed when the option set is constructed.
func (v *Value[T]) Default(val T) *Value[T] {
	v.def = &val
	return v
}

// Env names an environment variable that supplies the value when the option set is constructed.
// The variable overrides the default, and is overridden by arguments.
// An unset or blank variable is ignored.
func (v *Value[T]) Env(name string) *Value[T] {
	v.envKey = strings.TrimSpace(name)
	return v
}

// Convert sets a converter used for this option only, instead of the one in the option set's registry.
func (v *Value[T]) Convert(fn convert.Func[T]) *Value[T] {
	v.conv = fn
	return v
}

func (v *Value[T]) Tag() string {
	return v.tag
}

func (v *Value[T]) Short() string {
	return v.short
}

func (v *Value[T]) Long() string {
	return v.long
}

func (v *Value[T]) Description() string {
	return v.desc
}

func (v *Value[T]) IsFlag() bool {
	return v.isFlag
}

func (v *Value[T]) IsSet() bool {
	return v.val != nil
}

func (v *Value[T]) Type() reflect.Type {
	return convert.TypeOf[T]()
}

// Value returns the current value, and whether there is one.
func (v *Value[T]) Value() (T, bool) {
	if v.val == nil {
		var zero T
		return zero, false
	}
	return *v.val, true
}

// ValueOr returns the current value, or fallback if there isn't one.
func (v *Value[T]) ValueOr(fallback T) T {
	if v.val == nil {
		return fallback
	}
	return *v.val
}

// DefaultValue returns the declared default, and whether one was declared.
func (v *Value[T]) DefaultValue() (T, bool) {
	if v.def == nil {
		var zero T
		return zero, false
	}
	return *v.def, true
}

// Set replaces the current value.
func (v *Value[T]) Set(val T) {
	v.val = &val
}

func (v *Value[T]) String() string {
	if v.val == nil {
		return ""
	}
	return fmt.Sprint(*v.val)
}

func (v *Value[T]) declaration() declaration {
	return declaration{
		Tag:   v.tag,
		Short: v.short,
		Long:  v.long,
	}
}

func (v *Value[T]) hasConverter(reg *convert.Registry) bool {
	if v.isFlag || v.conv != nil {
		return true
	}
	_, ok := convert.Lookup[T](reg)
	return ok
}

func (v *Value[T]) convert(reg *convert.Registry, text string) (T, error) {
	if v.conv != nil {
		return v.conv(text)
	}
	return convert.Convert[T](reg, text)
}

func (v *Value[T]) install(reg *convert.Registry) error {
	v.val = nil
	if v.def != nil {
		v.Set(*v.def)
	}
	if len(v.envKey) > 0 {
		if text, ok := env.Lookup(v.envKey); ok {
			val, err := v.convert(reg, text)
			if err != nil {
				return fmt.Errorf("option %q from environment variable %s: %w", v.tag, v.envKey, err)
			}
			v.Set(val)
		}
	}
	v.initial = nil
	if v.val != nil {
		initial := *v.val
		v.initial = &initial
	}
	return nil
}

func (v *Value[T]) reset() {
	v.val = nil
	if v.initial != nil {
		v.Set(*v.initial)
	}
}

func (v *Value[T]) setFlag() {
	if flag, ok := any(true).(T); ok {
		v.Set(flag)
	}
}

func (v *Value[T]) setText(reg *convert.Registry, text string) error {
	val, err := v.convert(reg, text)
	if err != nil {
		return err
	}
	v.Set(val)
	return nil
}

func (v *Value[T]) callback() func() error {
	return v.cb
}

// Int declares an int option.
func Int(tag, short, long string) *Value[int] {
	return Opt[int](tag, short, long)
}

func Int8(tag, short, long string) *Value[int8] {
	return Opt[int8](tag, short, long)
}

func Int16(tag, short, long string) *Value[int16] {
	return Opt[int16](tag, short, long)
}

func Int32(tag, short, long string) *Value[int32] {
	return Opt[int32](tag, short, long)
}

func Int64(tag, short, long string) *Value[int64] {
	return Opt[int64](tag, short, long)
}

// Uint declares a uint option.
// Negative arguments are rejected as malformed.
func Uint(tag, short, long string) *Value[uint] {
	return Opt[uint](tag, short, long)
}

func Uint8(tag, short, long string) *Value[uint8] {
	return Opt[uint8](tag, short, long)
}

func Uint16(tag, short, long string) *Value[uint16] {
	return Opt[uint16](tag, short, long)
}

func Uint32(tag, short, long string) *Value[uint32] {
	return Opt[uint32](tag, short, long)
}

func Uint64(tag, short, long string) *Value[uint64] {
	return Opt[uint64](tag, short, long)
}

func Float32(tag, short, long string) *Value[float32] {
	return Opt[float32](tag, short, long)
}

// Float64 declares a float64 option.
func Float64(tag, short, long string) *Value[float64] {
	return Opt[float64](tag, short, long)
}

// String declares an option that keeps its argument as-is.
func String(tag, short, long string) *Value[string] {
	return Opt[string](tag, short, long)
}

// Char declares an option that accepts exactly one character.
func Char(tag, short, long string) *Value[convert.Char] {
	return Opt[convert.Char](tag, short, long)
}

func Duration(tag, short, long string) *Value[time.Duration] {
	return Opt[time.Duration](tag, short, long)
}

// Bool declares a flag.
// Matching a flag sets it to true, and never consumes the following argument.
func Bool(tag, short, long string) *Value[bool] {
	return Opt[bool](tag, short, long)
}
