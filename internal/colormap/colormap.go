package colormap

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	MinTemperature = 1000.0
	MaxTemperature = 50000.0
)

// Temperature maps a blackbody temperature in kelvin to an sRGB colour.
// Input outside [MinTemperature, MaxTemperature] is clamped.
func Temperature(temp float64) colorful.Color {
	t := math.Max(MinTemperature, math.Min(temp, MaxTemperature))

	switch {
	case t < 3000:
		// red hot
		return colorful.Color{R: 1, G: 0.1 + 0.3*(t-1000)/2000, B: 0}
	case t < 5000:
		p := (t - 3000) / 2000
		return colorful.Color{R: 1, G: 0.4 + 0.4*p, B: 0.2 * p}
	case t < 10000:
		p := (t - 5000) / 5000
		return colorful.Color{R: 1, G: 0.8 + 0.2*p, B: 0.2 + 0.6*p}
	default:
		p := math.Min((t-10000)/40000, 1)
		return colorful.Color{R: 1 - 0.2*p, G: 0.9 - 0.1*p, B: 1}
	}
}

// Emissive converts c to linear light and scales it by intensity.
// The result is in linear RGB and may exceed 1.
func Emissive(c colorful.Color, intensity float64) colorful.Color {
	r, g, b := c.LinearRgb()
	return colorful.Color{R: r * intensity, G: g * intensity, B: b * intensity}
}

// Display maps a linear emissive colour back to a clamped sRGB colour.
func Display(linear colorful.Color) colorful.Color {
	return colorful.LinearRgb(
		clamp01(linear.R),
		clamp01(linear.G),
		clamp01(linear.B),
	)
}

// Luminance is the relative luminance of a linear RGB colour.
func Luminance(linear colorful.Color) float64 {
	return 0.2126*linear.R + 0.7152*linear.G + 0.0722*linear.B
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}
