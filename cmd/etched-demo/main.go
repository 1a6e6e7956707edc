package main

import (
	"errors"
	"fmt"
	"github.com/Masterminds/semver/v3"
	"github.com/fatih/color"
	"github.com/saylorsolutions/etched"
	"github.com/saylorsolutions/etched/env"
	"github.com/saylorsolutions/etched/errs"
	"io"
	"log/slog"
	"os"
)

const (
	programName = "etched-demo"
	versionText = "Server v1.0.0"
	licenseText = "MIT License - Copyright (c) 2024"

	// apiVersion is compared against --require-api.
	apiVersion = "1.4.0"
)

func main() {
	if _, ok := env.Lookup("NO_COLOR"); ok {
		color.NoColor = true
	}
	if err := run(os.Stdout, os.Stdin, os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, color.RedString("Error: %v", err))
		if errors.Is(err, &errs.InvalidArgument{}) || errors.Is(err, &errs.OutOfRange{}) {
			_, _ = fmt.Fprintf(os.Stderr, "Run '%s --help' for usage\n", programName)
		}
		os.Exit(1)
	}
}

// run parses args and reports the resolved settings to outW.
// Interactive mode reads further command lines from inR.
func run(outW io.Writer, inR io.Reader, args []string) error {
	logger := newLogger(
		env.Level("ETCHED_DEMO_LOG_LEVEL", slog.LevelInfo),
		env.Val("ETCHED_DEMO_LOG_FORMAT", "text"),
		os.Stderr,
	)
	d, err := newDemo(outW, logger)
	if err != nil {
		return err
	}
	res, err := d.parser.Parse(args)
	if err != nil {
		return err
	}
	if d.interactive.ValueOr(false) && !res.IsTerminal() {
		return d.interactiveLoop(inR)
	}
	return d.respond(res)
}

func newLogger(level slog.Level, formatStr string, outW io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}
	return slog.New(handler)
}

// demo holds the parser, and live references to each option it declares.
type demo struct {
	parser *etched.Parser
	out    *etched.Printer
	log    *slog.Logger

	host        *etched.Value[string]
	port        *etched.Value[int]
	workers     *etched.Value[uint16]
	timeout     *etched.Value[float64]
	config      *etched.Value[string]
	position    *etched.Value[Point]
	color       *etched.Value[Color]
	requireAPI  *etched.Value[*semver.Version]
	format      *etched.Value[*outputFormat]
	verbose     *etched.Value[bool]
	debug       *etched.Value[bool]
	interactive *etched.Value[bool]
}

func newDemo(outW io.Writer, logger *slog.Logger) (*demo, error) {
	d := &demo{
		log:         logger,
		host:        etched.String("host", "-H", "--host").Describe("Server hostname").Default("0.0.0.0").Env("ETCHED_DEMO_HOST"),
		port:        etched.Int("port", "-p", "--port").Describe("Server port").Default(8080).Env("ETCHED_DEMO_PORT"),
		workers:     etched.Uint16("workers", "-w", "--workers").Describe("Worker threads").Default(4),
		timeout:     etched.Float64("timeout", "-t", "--timeout").Describe("Request timeout (seconds)").Default(30.0),
		config:      etched.String("config", "-c", "--config").Describe("Config file path"),
		position:    etched.Opt[Point]("position", "-P", "--position").Describe("Map position as x,y").Default(Point{}),
		color:       etched.Opt[Color]("color", "-C", "--color").Describe("Theme color as #RRGGBB").Default(White),
		requireAPI:  etched.Opt[*semver.Version]("require-api", "-r", "--require-api").Describe("Minimum API version required by the client"),
		format:      etched.Opt[*outputFormat]("format", "-f", "--format").Describe("Output format: text, yaml, or toml").Default(&outputFormat{name: formatText}),
		verbose:     etched.Bool("verbose", "-v", "--verbose").Describe("Enable verbose logging"),
		debug:       etched.Bool("debug", "-d", "--debug").Describe("Enable debug mode"),
		interactive: etched.Bool("interactive", "-i", "--interactive").Describe("Read more options from standard input"),
	}
	parser, err := etched.NewParserWith(registry(),
		d.host,
		d.port,
		d.workers,
		d.timeout,
		d.config,
		d.position,
		d.color,
		d.requireAPI,
		d.format,
		d.verbose,
		d.debug,
		d.interactive,
		etched.Callback("license", "-L", "--license", func() error {
			d.out.Println(licenseText)
			return nil
		}).Describe("Show license"),
		etched.Version(versionText, "-V", "--version").Describe("Show version"),
		etched.Help("-h", "--help"),
	)
	if err != nil {
		return nil, err
	}
	parser.SetName(programName).SetLogger(logger)
	parser.Printer().Redirect(outW)
	d.parser = parser
	d.out = parser.Printer()
	return d, nil
}

// respond prints the outcome of a parse.
func (d *demo) respond(res etched.Result) error {
	if res.IsTerminal() {
		if res.Tag == etched.HelpTag {
			d.out.Printf("Usage: %s [options]\n\n", programName)
			return etched.RenderHelp(d.out.Writer(), d.parser.Options())
		}
		d.out.Println(res.Text)
		return nil
	}
	if err := d.checkAPI(); err != nil {
		return err
	}
	s := d.snapshot()
	d.log.Debug("Resolved settings", "host", s.Host, "port", s.Port, "verbose", s.Verbose)
	return writeSettings(d.out.Writer(), d.format.ValueOr(nil).String(), s)
}

func (d *demo) checkAPI() error {
	required, ok := d.requireAPI.Value()
	if !ok {
		return nil
	}
	current := semver.MustParse(apiVersion)
	if required.GreaterThan(current) {
		return fmt.Errorf("API version %s does not satisfy required version %s", current, required)
	}
	return nil
}

func (d *demo) snapshot() settings {
	s := settings{
		Host:     d.host.ValueOr(""),
		Port:     d.port.ValueOr(0),
		Workers:  d.workers.ValueOr(0),
		Timeout:  d.timeout.ValueOr(0),
		Config:   d.config.ValueOr(""),
		Color:    d.color.ValueOr(White).String(),
		Verbose:  d.verbose.ValueOr(false),
		Debug:    d.debug.ValueOr(false),
		Position: d.position.ValueOr(Point{}),
	}
	if v, ok := d.requireAPI.Value(); ok {
		s.RequireAPI = v.String()
	}
	return s
}
