package main

import (
	"fmt"
	"github.com/Masterminds/semver/v3"
	"github.com/saylorsolutions/etched/convert"
	"strconv"
	"strings"
)

// Point is a position on a 2D plane, given as "x,y".
type Point struct {
	X float64 `yaml:"x" toml:"x"`
	Y float64 `yaml:"y" toml:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func parsePoint(text string) (Point, error) {
	xs, ys, found := strings.Cut(text, ",")
	if !found {
		return Point{}, convert.Invalid[Point](text, "expected x,y")
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Point{}, convert.Invalid[Point](text, "bad x coordinate")
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Point{}, convert.Invalid[Point](text, "bad y coordinate")
	}
	return Point{X: x, Y: y}, nil
}

// Color is an RGB color, given as "#RRGGBB" or "RRGGBB".
type Color struct {
	R, G, B uint8
}

var White = Color{R: 255, G: 255, B: 255}

func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func parseColor(text string) (Color, error) {
	hex := strings.TrimPrefix(text, "#")
	if len(hex) != 6 {
		return Color{}, convert.Invalid[Color](text, "expected 6 hex digits")
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, convert.Invalid[Color](text, "expected 6 hex digits")
	}
	return Color{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

func parseVersion(text string) (*semver.Version, error) {
	v, err := semver.NewVersion(text)
	if err != nil {
		return nil, convert.Invalid[*semver.Version](text, err)
	}
	return v, nil
}

// registry extends the built-in converters with the types used by this program.
func registry() *convert.Registry {
	reg := convert.Default.Clone()
	convert.Register[Point](reg, parsePoint)
	convert.Register[Color](reg, parseColor)
	convert.Register[*semver.Version](reg, parseVersion)
	convert.Register(reg, convert.FromValue(func() *outputFormat { return new(outputFormat) }))
	return reg
}
