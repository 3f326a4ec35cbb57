package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB triple with channels in [0, 1].
// Every combining operation clamps its result back into range, so colors
// saturate instead of overflowing.
type Color struct {
	R, G, B float64
}

// Common colors
var (
	White = Color{R: 1, G: 1, B: 1}
	Black = Color{R: 0, G: 0, B: 0}
)

// NewColor creates a color, validating that every channel lies in [0, 1]
func NewColor(r, g, b float64) (Color, error) {
	for _, v := range []float64{r, g, b} {
		if v < 0 || v > 1 {
			return Color{}, fmt.Errorf("color channel %v outside the [0, 1] range", v)
		}
	}
	return Color{R: r, G: g, B: b}, nil
}

// NewColorFromHex parses a "#RRGGBB" string into a color
func NewColorFromHex(hex string) (Color, error) {
	if !isHexFormat(hex) {
		return Color{}, fmt.Errorf("malformed hex color %q, expected #RRGGBB", hex)
	}

	channels := make([]float64, 3)
	for i := range channels {
		v, err := strconv.ParseUint(hex[1+2*i:3+2*i], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("malformed hex color %q: %w", hex, err)
		}
		channels[i] = float64(v) / 255.0
	}

	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

func isHexFormat(hex string) bool {
	if !strings.HasPrefix(hex, "#") || len(hex) != 7 {
		return false
	}
	for _, d := range hex[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", d) {
			return false
		}
	}
	return true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Add returns the channel-wise sum of two colors, clamped to [0, 1]
func (c Color) Add(other Color) Color {
	return Color{
		R: clamp01(c.R + other.R),
		G: clamp01(c.G + other.G),
		B: clamp01(c.B + other.B),
	}
}

// Subtract returns the channel-wise difference of two colors, clamped to [0, 1]
func (c Color) Subtract(other Color) Color {
	return Color{
		R: clamp01(c.R - other.R),
		G: clamp01(c.G - other.G),
		B: clamp01(c.B - other.B),
	}
}

// Multiply returns the channel-wise product of two colors, clamped to [0, 1]
func (c Color) Multiply(other Color) Color {
	return Color{
		R: clamp01(c.R * other.R),
		G: clamp01(c.G * other.G),
		B: clamp01(c.B * other.B),
	}
}

// Scale returns the color with every channel multiplied by the scalar.
// Scaling does not clamp; it is used with factors that may exceed 1
// before a later Min caps the result.
func (c Color) Scale(scalar float64) Color {
	return Color{R: c.R * scalar, G: c.G * scalar, B: c.B * scalar}
}

// Min returns the color with every channel capped at maxVal
func (c Color) Min(maxVal float64) Color {
	return Color{
		R: min(c.R, maxVal),
		G: min(c.G, maxVal),
		B: min(c.B, maxVal),
	}
}

// SumColors reduces a slice of colors by saturating addition
func SumColors(colors []Color) Color {
	sum := Black
	for _, c := range colors {
		sum = sum.Add(c)
	}
	return sum
}
