package main

import (
	"bytes"
	"github.com/BurntSushi/toml"
	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/saylorsolutions/etched/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func runArgs(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := run(&out, strings.NewReader(input), append([]string{programName}, args...))
	return out.String(), err
}

func TestRun_Defaults(t *testing.T) {
	out, err := runArgs(t, "")
	require.NoError(t, err)
	for _, line := range []string{
		"=== Server Configuration ===\n",
		"Host:     0.0.0.0\n",
		"Port:     8080\n",
		"Workers:  4\n",
		"Timeout:  30s\n",
		"Position: (0, 0)\n",
		"Color:    #FFFFFF\n",
		"Verbose:  OFF\n",
		"Debug:    OFF\n",
	} {
		assert.Contains(t, out, line)
	}
	assert.NotContains(t, out, "Config:")
}

func TestRun_Overrides(t *testing.T) {
	out, err := runArgs(t, "",
		"-H", "127.0.0.1",
		"--port", "3000",
		"-w", "8",
		"--timeout", "2.5",
		"-c", "app.toml",
		"-P", "10.5,20.3",
		"--color", "#FF5733",
		"-v",
		"--debug",
	)
	require.NoError(t, err)
	for _, line := range []string{
		"Host:     127.0.0.1\n",
		"Port:     3000\n",
		"Workers:  8\n",
		"Timeout:  2.5s\n",
		"Config:   app.toml\n",
		"Position: (10.5, 20.3)\n",
		"Color:    #FF5733\n",
		"Verbose:  ON\n",
		"Debug:    ON\n",
	} {
		assert.Contains(t, out, line)
	}
}

func TestRun_Formats(t *testing.T) {
	expected := settings{
		Host:       "0.0.0.0",
		Port:       3000,
		Workers:    4,
		Timeout:    30,
		Color:      "#00FF00",
		RequireAPI: "1.2.0",
		Verbose:    true,
		Position:   Point{X: 1, Y: -2},
	}
	args := []string{"-p", "3000", "-C", "00FF00", "-r", "1.2.0", "-v", "-P", "1,-2"}

	t.Run("YAML", func(t *testing.T) {
		out, err := runArgs(t, "", append(args, "--format", "YAML")...)
		require.NoError(t, err)
		var got settings
		require.NoError(t, yaml.Unmarshal([]byte(out), &got))
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("YAML settings mismatch (-want +got):\n%s", diff)
		}
	})
	t.Run("TOML", func(t *testing.T) {
		out, err := runArgs(t, "", append(args, "-f", "toml")...)
		require.NoError(t, err)
		var got settings
		_, err = toml.Decode(out, &got)
		require.NoError(t, err)
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("TOML settings mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRun_Terminal(t *testing.T) {
	out, err := runArgs(t, "", "-p", "3000", "--help")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Usage: etched-demo [options]\n\n"))
	assert.Contains(t, out, "-H, --host <value>    Server hostname\n")
	assert.Contains(t, out, "-v, --verbose    Enable verbose logging\n")
	assert.Contains(t, out, "-h, --help    Show this help message\n")
	assert.NotContains(t, out, "Server Configuration")

	out, err = runArgs(t, "", "-V")
	require.NoError(t, err)
	assert.Equal(t, versionText+"\n", out)

	_, err = runArgs(t, "", "--version", "-v")
	assert.ErrorIs(t, err, errs.ErrTerminalNotLast)
}

func TestRun_License(t *testing.T) {
	out, err := runArgs(t, "", "-L", "-p", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, licenseText+"\n"), "The callback runs during parsing")
	assert.Contains(t, out, "Port:     1\n", "Parsing continues after the callback")
}

func TestRun_Errors(t *testing.T) {
	tests := map[string]struct {
		args  []string
		check func(t *testing.T, err error)
	}{
		"Unknown option": {
			args: []string{"--bogus", "1"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errs.ErrUnknownOption)
			},
		},
		"Positional": {
			args: []string{"serve"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errs.ErrUnexpectedPositional)
			},
		},
		"Workers out of range": {
			args: []string{"-w", "70000"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, &errs.OutOfRange{})
			},
		},
		"Bad format": {
			args: []string{"-f", "xml"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errs.ErrInvalidFormat)
				assert.Contains(t, err.Error(), "must be one of text, yaml, or toml")
			},
		},
		"Bad color": {
			args: []string{"-C", "red"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errs.ErrInvalidFormat)
			},
		},
		"Bad position": {
			args: []string{"--position", "10.5"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, &errs.InvalidArgument{})
			},
		},
		"Bad version": {
			args: []string{"--require-api", "not-a-version"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errs.ErrInvalidFormat)
			},
		},
		"Unsatisfied version": {
			args: []string{"--require-api", "2.0.0"},
			check: func(t *testing.T, err error) {
				assert.EqualError(t, err, "API version 1.4.0 does not satisfy required version 2.0.0")
			},
		},
		"Missing value": {
			args: []string{"--config"},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errs.ErrMissingValue)
			},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := runArgs(t, "", tc.args...)
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestRun_Env(t *testing.T) {
	t.Setenv("ETCHED_DEMO_PORT", "9000")
	t.Setenv("ETCHED_DEMO_HOST", "  ")

	out, err := runArgs(t, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Port:     9000\n")
	assert.Contains(t, out, "Host:     0.0.0.0\n", "A blank variable should be ignored")

	out, err = runArgs(t, "", "-p", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Port:     1\n", "Arguments override the environment")

	t.Setenv("ETCHED_DEMO_PORT", "nine")
	_, err = runArgs(t, "")
	assert.ErrorIs(t, err, errs.ErrInvalidFormat)
	assert.Contains(t, err.Error(), "ETCHED_DEMO_PORT")
}

func TestRun_Interactive(t *testing.T) {
	input := strings.Join([]string{
		"-p 3000",
		"",
		"--verbose",
		"reset",
		"--bogus",
		"-c 'my config.toml'",
		"-C #00FF00",
		"QUIT",
		"-p 1",
	}, "\n")
	out, err := runArgs(t, input, "-i")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "Running 'etched-demo' interactively. Enter quit or x to exit."))
	assert.Equal(t, 2, strings.Count(out, "Port:     3000\n"), "Values should carry over between lines")
	assert.Contains(t, out, "Verbose:  ON\n")
	assert.Contains(t, out, "Options reset\n")
	assert.Contains(t, out, "Error: unknown option or missing value for option: --bogus\n")
	assert.Contains(t, out, "Config:   my config.toml\n")
	assert.Contains(t, out, "Color:    #00FF00\n", "A '#' value should reach the color option")
	assert.NotContains(t, out, "option requires a value")
	assert.NotContains(t, out, "Port:     1\n", "Nothing should be processed after quitting")
}

func TestRun_InteractiveEndOfInput(t *testing.T) {
	out, err := runArgs(t, "--help\n", "--interactive")
	require.NoError(t, err)
	assert.Contains(t, out, "Usage: etched-demo [options]")
	assert.True(t, strings.HasSuffix(out, "etched-demo> "))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	newLogger(slog.LevelDebug, "json", &buf).Debug("Resolved settings", "port", 8080)
	assert.Contains(t, buf.String(), `"msg":"Resolved settings"`)
	assert.Contains(t, buf.String(), `"port":8080`)

	buf.Reset()
	newLogger(slog.LevelInfo, "text", &buf).Debug("hidden")
	assert.Empty(t, buf.String())
}
