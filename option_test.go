package etched

import (
	"fmt"
	"github.com/saylorsolutions/etched/convert"
	"github.com/saylorsolutions/etched/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"reflect"
	"strconv"
	"strings"
	"testing"
	"time"
)

type point struct {
	X, Y float64
}

func parsePoint(text string) (point, error) {
	xs, ys, found := strings.Cut(text, ",")
	if !found {
		return point{}, convert.Invalid[point](text, "expected x,y")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return point{}, convert.Invalid[point](text)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return point{}, convert.Invalid[point](text)
	}
	return point{X: x, Y: y}, nil
}

type rgb struct {
	R, G, B uint8
}

func parseRGB(text string) (rgb, error) {
	hex := strings.TrimPrefix(text, "#")
	if len(hex) != 6 {
		return rgb{}, convert.Invalid[rgb](text, "expected 6 hex digits")
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rgb{}, convert.Invalid[rgb](text)
	}
	return rgb{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

func TestOpt(t *testing.T) {
	port := Int("port", "-p", "--port").Describe("Server port")
	assert.Equal(t, "port", port.Tag())
	assert.Equal(t, "-p", port.Short())
	assert.Equal(t, "--port", port.Long())
	assert.Equal(t, "Server port", port.Description())
	assert.False(t, port.IsFlag())
	assert.Equal(t, reflect.TypeOf(0), port.Type())
	assert.Equal(t, "", port.String())

	port.Set(42)
	assert.Equal(t, "42", port.String())
	val, ok := port.Value()
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	assert.True(t, Bool("verbose", "-v", "").IsFlag())
	assert.True(t, Opt[bool]("debug", "-d", "").IsFlag())
	assert.False(t, Duration("timeout", "-t", "").IsFlag())
	assert.Equal(t, reflect.TypeOf(convert.Char(0)), Char("sep", "-s", "").Type())
}

func TestOpt_BuiltinTypes(t *testing.T) {
	var (
		i8  = Int8("i8", "-a", "")
		i16 = Int16("i16", "-b", "")
		i32 = Int32("i32", "-c", "")
		i64 = Int64("i64", "-d", "")
		u   = Uint("u", "-e", "")
		u8  = Uint8("u8", "-f", "")
		u32 = Uint32("u32", "-g", "")
		u64 = Uint64("u64", "-i", "")
		f32 = Float32("f32", "-j", "")
		f64 = Float64("f64", "-k", "")
		sep = Char("sep", "-l", "")
		dur = Duration("dur", "-m", "")
	)
	parser, err := NewParser(i8, i16, i32, i64, u, u8, u32, u64, f32, f64, sep, dur)
	require.NoError(t, err)
	_, err = parser.Parse([]string{"program",
		"-a", "-128",
		"-b", "32767",
		"-c", "-2147483648",
		"-d", "9223372036854775807",
		"-e", "7",
		"-f", "255",
		"-g", "4294967295",
		"-i", "18446744073709551615",
		"-j", "1.5",
		"-k", "-2.25",
		"-l", ":",
		"-m", "1m30s",
	})
	require.NoError(t, err)
	assert.Equal(t, int8(-128), i8.ValueOr(0))
	assert.Equal(t, int16(32767), i16.ValueOr(0))
	assert.Equal(t, int32(-2147483648), i32.ValueOr(0))
	assert.Equal(t, int64(9223372036854775807), i64.ValueOr(0))
	assert.Equal(t, uint(7), u.ValueOr(0))
	assert.Equal(t, uint8(255), u8.ValueOr(0))
	assert.Equal(t, uint32(4294967295), u32.ValueOr(0))
	assert.Equal(t, uint64(18446744073709551615), u64.ValueOr(0))
	assert.Equal(t, float32(1.5), f32.ValueOr(0))
	assert.Equal(t, -2.25, f64.ValueOr(0))
	assert.Equal(t, convert.Char(':'), sep.ValueOr(0))
	assert.Equal(t, 90*time.Second, dur.ValueOr(0))

	_, err = parser.Parse([]string{"program", "-l", "ab"})
	assert.ErrorIs(t, err, errs.ErrInvalidFormat)
}

func TestOpt_CustomRegistry(t *testing.T) {
	reg := convert.Default.Clone()
	convert.Register[point](reg, parsePoint)
	convert.Register[rgb](reg, parseRGB)

	position := Opt[point]("position", "-P", "--position").Default(point{})
	color := Opt[rgb]("color", "-c", "--color")
	parser, err := NewParserWith(reg, position, color)
	require.NoError(t, err)

	_, err = parser.Parse([]string{"program", "-P", "10.5,20.3", "--color", "#FF5733"})
	require.NoError(t, err)
	assert.Equal(t, point{X: 10.5, Y: 20.3}, position.ValueOr(point{}))
	assert.Equal(t, rgb{R: 255, G: 87, B: 51}, color.ValueOr(rgb{}))

	_, err = parser.Parse([]string{"program", "--color", "00FF00"})
	require.NoError(t, err)
	assert.Equal(t, rgb{G: 255}, color.ValueOr(rgb{}))

	tests := map[string][]string{
		"Point without comma": {"program", "-P", "invalid"},
		"Point with bad axis": {"program", "-P", "1,y"},
		"Short color":         {"program", "-c", "#12345"},
		"Color not hex":       {"program", "-c", "#GGGGGG"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := parser.Parse(args)
			assert.ErrorIs(t, err, &errs.InvalidArgument{})
			assert.ErrorIs(t, err, errs.ErrInvalidFormat)
		})
	}

	_, err = NewParser(Opt[point]("position", "-P", ""))
	assert.ErrorIs(t, err, errs.ErrNoConverter, "The default registry is unaffected by the clone")
}

func TestValue_Convert(t *testing.T) {
	upper := String("name", "-n", "").Convert(func(text string) (string, error) {
		return strings.ToUpper(text), nil
	})
	position := Opt[point]("position", "-P", "").Convert(parsePoint)
	parser, err := NewParser(upper, position)
	require.NoError(t, err, "An option's own converter satisfies the converter check")

	_, err = parser.Parse([]string{"program", "-n", "quiet", "-P", "1,2"})
	require.NoError(t, err)
	assert.Equal(t, "QUIET", upper.ValueOr(""))
	assert.Equal(t, point{X: 1, Y: 2}, position.ValueOr(point{}))
}

func TestValue_ConverterError(t *testing.T) {
	failure := fmt.Errorf("nope")
	opt := String("name", "-n", "").Convert(func(string) (string, error) {
		return "", failure
	})
	parser, err := NewParser(opt)
	require.NoError(t, err)
	_, err = parser.Parse([]string{"program", "-n", "value"})
	assert.ErrorIs(t, err, failure, "Converter errors are returned as-is")
	assert.False(t, opt.IsSet())
}
