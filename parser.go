package etched

import (
	"github.com/kballard/go-shellquote"
	"github.com/saylorsolutions/etched/convert"
	"github.com/saylorsolutions/etched/errs"
	"github.com/saylorsolutions/etched/sanitize"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxArgs is how many arguments, including the program name, a [Parser] accepts unless changed with [Parser.SetMaxArgs].
const DefaultMaxArgs = 256

// Parser matches command-line arguments against an [OptionSet].
//
// Parsing is synchronous, and mutates the options in place.
// A Parser is not concurrency safe, and no locking is done internally.
type Parser struct {
	set     *OptionSet
	maxArgs int
	name    string
	log     *slog.Logger
	printer *Printer
	exit    func(code int)
}

// NewParser validates the options and creates a [Parser] that converts values with [convert.Default].
// See [NewOptionSet] for the validation that is done.
func NewParser(opts ...Option) (*Parser, error) {
	return NewParserWith(nil, opts...)
}

// NewParserWith is like [NewParser], but uses the given [convert.Registry] for conversions.
func NewParserWith(reg *convert.Registry, opts ...Option) (*Parser, error) {
	set, err := NewOptionSet(reg, opts...)
	if err != nil {
		return nil, err
	}
	name := "program"
	if len(os.Args) > 0 {
		name = filepath.Base(os.Args[0])
	}
	return &Parser{
		set:     set,
		maxArgs: DefaultMaxArgs,
		name:    name,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		printer: NewPrinter(),
		exit:    os.Exit,
	}, nil
}

// SetMaxArgs changes how many arguments, including the program name, will be accepted.
// Passing a value less than 1 will panic.
func (p *Parser) SetMaxArgs(maxArgs int) *Parser {
	if maxArgs < 1 {
		panic("max args must be at least 1")
	}
	p.maxArgs = maxArgs
	return p
}

// SetLogger sets the logger used for debug tracing of matches.
// Passing nil will panic.
func (p *Parser) SetLogger(logger *slog.Logger) *Parser {
	if logger == nil {
		panic("nil logger")
	}
	p.log = logger
	return p
}

// SetName sets the program name used by [Parser.ParseLine].
func (p *Parser) SetName(name string) *Parser {
	p.name = name
	return p
}

// SetExit replaces the function [Parser.Run] uses to exit after a terminal result.
// This is [os.Exit] by default.
func (p *Parser) SetExit(exit func(code int)) *Parser {
	if exit == nil {
		panic("nil exit function")
	}
	p.exit = exit
	return p
}

// Printer returns the [Printer] used by [Parser.Run].
func (p *Parser) Printer() *Printer {
	return p.printer
}

// Options returns the parser's [OptionSet].
func (p *Parser) Options() *OptionSet {
	return p.set
}

// Option returns the option declared with tag.
func (p *Parser) Option(tag string) (Option, error) {
	return p.set.Option(tag)
}

// HelpText renders the help for every option.
func (p *Parser) HelpText() string {
	return HelpText(p.set)
}

// Parse matches args against the parser's options.
// The first element is the program name, and is never matched.
//
// Options are updated in place, and defaults are not re-applied, so a value set by an earlier call is kept unless [OptionSet.Reset] is called.
// The first problem stops parsing and is returned: an [errs.InvalidArgument] for unacceptable input, or whatever a converter or callback reported.
//
// Matching help returns a terminal [Result] with the help text, and matching version returns one with the version text.
// Arguments after either of them are an error.
func (p *Parser) Parse(args []string) (Result, error) {
	if len(args) > p.maxArgs {
		return Result{}, errs.Invalid(errs.ErrTooManyArgs, "maximum %d supported, got %d", p.maxArgs, len(args))
	}
	cleaned, err := sanitize.Sanitize(args, p.maxArgs)
	if err != nil {
		return Result{}, err
	}

	toks := newTokens(cleaned)
	toks.Next()
	for toks.Next() {
		arg := toks.Value()
		if !strings.HasPrefix(arg, "-") {
			return Result{}, errs.Invalid(errs.ErrUnexpectedPositional, "%s", arg)
		}
		name := bareName(arg)
		if toks.HasNext() && p.set.matchWhere(name, isTerminal) != nil {
			return Result{}, errs.Invalid(errs.ErrTerminalNotLast, "%s", arg)
		}
		if p.set.matchWhere(name, isHelp) != nil {
			p.log.Debug("Help requested", "arg", arg)
			return Result{Outcome: Terminal, Tag: HelpTag, Text: p.HelpText()}, nil
		}
		opt := p.set.match(name)
		if opt == nil {
			return Result{}, errs.Invalid(errs.ErrUnknownOption, "%s", arg)
		}

		if opt.IsFlag() {
			opt.setFlag()
			p.log.Debug("Set flag", "arg", arg, "tag", opt.Tag())
			if cb := opt.callback(); cb != nil {
				p.log.Debug("Running callback", "tag", opt.Tag())
				if err := cb(); err != nil {
					if sig, ok := asStop(err); ok {
						return Result{Outcome: Terminal, Tag: opt.Tag(), Text: sig.text}, nil
					}
					return Result{}, err
				}
			}
			continue
		}

		if !toks.HasNext() {
			return Result{}, errs.Invalid(errs.ErrMissingValue, "%s", arg)
		}
		toks.Next()
		if err := opt.setText(p.set.reg, toks.Value()); err != nil {
			return Result{}, err
		}
		p.log.Debug("Set value", "arg", arg, "tag", opt.Tag(), "index", toks.Index())
	}
	return Result{Outcome: Resolved}, nil
}

// ParseLine splits a shell-style command line into arguments, then parses them after the program name set with [Parser.SetName].
// Quoting may be used to pass a value containing spaces, like -m 'hello world'.
// There are no comments, so a word starting with '#' is kept as-is.
func (p *Parser) ParseLine(line string) (Result, error) {
	args, err := shellquote.Split(line)
	if err != nil {
		return Result{}, errs.Invalid(errs.ErrInvalidToken, "unable to split %q: %v", line, err)
	}
	return p.Parse(append([]string{p.name}, args...))
}

// Run parses args, and handles a terminal result by printing its text with the [Printer] and exiting with status 0.
// Help text is wrapped to fit when the [Printer] writes to a terminal.
// Errors are returned for the caller to report.
func (p *Parser) Run(args []string) error {
	res, err := p.Parse(args)
	if err != nil {
		return err
	}
	if !res.IsTerminal() {
		return nil
	}
	if res.Tag == HelpTag {
		if err := RenderHelp(p.printer.Writer(), p.set); err != nil {
			return err
		}
	} else {
		p.printer.Print(res.Text)
		if !strings.HasSuffix(res.Text, "\n") {
			p.printer.Println()
		}
	}
	p.exit(0)
	return nil
}
