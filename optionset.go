package etched

import (
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/saylorsolutions/etched/convert"
	"github.com/saylorsolutions/etched/errs"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"iter"
	"reflect"
)

// MaxOptions is the exclusive upper bound on how many options an [OptionSet] may hold.
const MaxOptions = 255

// declaration holds the parts of an [Option] that are validated before an [OptionSet] is created.
type declaration struct {
	Tag   string `validate:"required"`
	Short string `validate:"required_without=Long,omitempty,min=2,startswith=-,startsnotwith=--,printascii"`
	Long  string `validate:"omitempty,min=3,startswith=--,printascii"`
}

var validate = validator.New()

// OptionSet is the validated, ordered collection of every option a parser recognizes.
//
// An OptionSet is not concurrency safe.
type OptionSet struct {
	options *orderedmap.OrderedMap[string, Option]
	reg     *convert.Registry
}

// NewOptionSet validates the declared options, and installs their defaults.
// Options are converted using reg, or [convert.Default] if reg is nil.
//
// Every declaration problem found is reported together in a single [errs.ConfigurationError]:
// an empty tag, an option with neither spelling, a malformed spelling, an option with no converter for its type, a duplicate tag, or a duplicate spelling.
// Between 1 and [MaxOptions]-1 options are required.
//
// Once declarations are valid, defaults are installed, followed by values from environment variables declared with [Value.Env].
// A failure converting an environment variable is returned as-is.
func NewOptionSet(reg *convert.Registry, opts ...Option) (*OptionSet, error) {
	if reg == nil {
		reg = convert.Default
	}
	if len(opts) == 0 || len(opts) >= MaxOptions {
		return nil, errs.Config(errs.ErrOptionCount, "between 1 and %d options are supported, got %d", MaxOptions-1, len(opts))
	}
	col := errs.CollectErrors()
	declared := make([]Option, 0, len(opts))
	for i, opt := range opts {
		if isNil(opt) {
			col.Add(errs.Config(nil, "option %d is nil", i))
			continue
		}
		declared = append(declared, opt)
		col.Add(checkDeclaration(i, opt))
		if !opt.hasConverter(reg) {
			col.Add(errs.Config(errs.ErrNoConverter, "option %q has type %s", opt.Tag(), opt.Type()))
		}
	}
	checkUnique(col, declared)
	if err := col.Result(); err != nil {
		return nil, err
	}

	set := &OptionSet{
		options: orderedmap.New[string, Option](),
		reg:     reg,
	}
	for _, opt := range opts {
		if err := opt.install(reg); err != nil {
			return nil, err
		}
		set.options.Set(opt.Tag(), opt)
	}
	return set, nil
}

// isNil catches a nil *Value[T] as well as a nil interface.
func isNil(opt Option) bool {
	if opt == nil {
		return true
	}
	val := reflect.ValueOf(opt)
	return val.Kind() == reflect.Pointer && val.IsNil()
}

func checkDeclaration(idx int, opt Option) error {
	err := validate.Struct(opt.declaration())
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errs.Config(nil, "option %d: %v", idx, err)
	}
	col := errs.CollectErrors()
	for _, fe := range fieldErrs {
		switch {
		case fe.Field() == "Tag":
			col.Add(errs.Config(errs.ErrEmptyTag, "option %d", idx))
		case fe.Tag() == "required_without":
			col.Add(errs.Config(errs.ErrMissingSpelling, "option %q", opt.Tag()))
		default:
			col.Add(errs.Config(errs.ErrBadSpelling, "option %q has %s spelling %q (failed %s)", opt.Tag(), fe.Field(), fe.Value(), fe.Tag()))
		}
	}
	return col.Result()
}

// checkUnique compares every pair of options for equal tags, and equal short or long spellings.
func checkUnique(col *errs.Collector, opts []Option) {
	for i := 0; i < len(opts); i++ {
		for j := i + 1; j < len(opts); j++ {
			a, b := opts[i], opts[j]
			if a.Tag() == b.Tag() {
				col.Add(errs.Config(errs.ErrDuplicateTag, "%q", a.Tag()))
			}
			if len(a.Short()) > 0 && a.Short() == b.Short() {
				col.Add(errs.Config(errs.ErrDuplicateFlag, "short flag %s used by %q and %q", a.Short(), a.Tag(), b.Tag()))
			}
			if len(a.Long()) > 0 && a.Long() == b.Long() {
				col.Add(errs.Config(errs.ErrDuplicateFlag, "long flag %s used by %q and %q", a.Long(), a.Tag(), b.Tag()))
			}
		}
	}
}

// Registry returns the converters used by this OptionSet.
func (s *OptionSet) Registry() *convert.Registry {
	return s.reg
}

// Len returns the number of options.
func (s *OptionSet) Len() int {
	return s.options.Len()
}

// All iterates the options in declaration order.
func (s *OptionSet) All() iter.Seq[Option] {
	return func(yield func(Option) bool) {
		for pair := s.options.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Value) {
				return
			}
		}
	}
}

// Option returns the option declared with tag.
// An [errs.InvalidArgument] wrapping [errs.ErrUnknownTag] is returned if there isn't one.
func (s *OptionSet) Option(tag string) (Option, error) {
	opt, ok := s.options.Get(tag)
	if !ok {
		return nil, errs.Invalid(errs.ErrUnknownTag, "%q", tag)
	}
	return opt, nil
}

// Reset restores every option to the state it had right after construction: its environment or default value, or no value at all.
// Parsing doesn't do this by itself, so values from earlier parses are kept unless Reset is called.
func (s *OptionSet) Reset() {
	for opt := range s.All() {
		opt.reset()
	}
}

// match finds the first option, in declaration order, with a spelling matching the bare flag name.
func (s *OptionSet) match(name string) Option {
	return s.matchWhere(name, nil)
}

// matchWhere is like match, but only considers options accepted by filter.
func (s *OptionSet) matchWhere(name string, filter func(Option) bool) Option {
	for opt := range s.All() {
		if filter != nil && !filter(opt) {
			continue
		}
		if matchesName(opt, name) {
			return opt
		}
	}
	return nil
}

// OptionSource is anything that can look up an [Option] by tag, such as an [OptionSet] or a [Parser].
type OptionSource interface {
	Option(tag string) (Option, error)
}

// Get returns a live, typed reference to the option declared with tag.
// An [errs.InvalidArgument] is returned if the tag is unknown, or if the option doesn't hold a T.
func Get[T any](src OptionSource, tag string) (*Value[T], error) {
	opt, err := src.Option(tag)
	if err != nil {
		return nil, err
	}
	val, ok := opt.(*Value[T])
	if !ok {
		return nil, errs.Invalid(errs.ErrTypeMismatch, "option %q holds %s, not %s", tag, opt.Type(), convert.TypeOf[T]())
	}
	return val, nil
}
