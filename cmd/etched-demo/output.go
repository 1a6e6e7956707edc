package main

import (
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	flag "github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
	"io"
	"strings"
)

var _ flag.Value = (*outputFormat)(nil)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatTOML = "toml"
)

// outputFormat selects how the resolved settings are written.
type outputFormat struct {
	name string
}

func (f *outputFormat) String() string {
	if f == nil || len(f.name) == 0 {
		return formatText
	}
	return f.name
}

func (f *outputFormat) Set(s string) error {
	switch name := strings.ToLower(s); name {
	case formatText, formatYAML, formatTOML:
		f.name = name
		return nil
	default:
		return fmt.Errorf("must be one of %s, %s, or %s", formatText, formatYAML, formatTOML)
	}
}

func (f *outputFormat) Type() string {
	return "format"
}

// settings is a snapshot of the parsed options, in a form that can be serialized.
type settings struct {
	Host       string  `yaml:"host" toml:"host"`
	Port       int     `yaml:"port" toml:"port"`
	Workers    uint16  `yaml:"workers" toml:"workers"`
	Timeout    float64 `yaml:"timeout" toml:"timeout"`
	Config     string  `yaml:"config,omitempty" toml:"config,omitempty"`
	Color      string  `yaml:"color" toml:"color"`
	RequireAPI string  `yaml:"require_api,omitempty" toml:"require_api,omitempty"`
	Verbose    bool    `yaml:"verbose" toml:"verbose"`
	Debug      bool    `yaml:"debug" toml:"debug"`
	Position   Point   `yaml:"position" toml:"position"`
}

func writeSettings(w io.Writer, format string, s settings) error {
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(s); err != nil {
			return err
		}
		return enc.Close()
	case formatTOML:
		return toml.NewEncoder(w).Encode(s)
	default:
		return writeText(w, s)
	}
}

func writeText(w io.Writer, s settings) error {
	heading := color.New(color.Bold, color.FgCyan)
	var buf strings.Builder
	buf.WriteString(heading.Sprint("=== Server Configuration ===") + "\n")
	fmt.Fprintf(&buf, "Host:     %s\n", s.Host)
	fmt.Fprintf(&buf, "Port:     %d\n", s.Port)
	fmt.Fprintf(&buf, "Workers:  %d\n", s.Workers)
	fmt.Fprintf(&buf, "Timeout:  %gs\n", s.Timeout)
	fmt.Fprintf(&buf, "Position: %s\n", s.Position)
	fmt.Fprintf(&buf, "Color:    %s\n", s.Color)
	if len(s.Config) > 0 {
		fmt.Fprintf(&buf, "Config:   %s\n", s.Config)
	}
	if len(s.RequireAPI) > 0 {
		fmt.Fprintf(&buf, "API:      >= %s\n", s.RequireAPI)
	}
	buf.WriteString("\n" + heading.Sprint("=== Flags ===") + "\n")
	fmt.Fprintf(&buf, "Verbose:  %s\n", onOff(s.Verbose))
	fmt.Fprintf(&buf, "Debug:    %s\n", onOff(s.Debug))
	_, err := io.WriteString(w, buf.String())
	return err
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}
