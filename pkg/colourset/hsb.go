package colourset

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Hue returns the HSB hue of c as a fraction of a full turn in [0,1).
// Greys have no hue; they report 0.
func Hue(c RGB) float64 {
	h, _, _ := c.toColorful().Hsv()
	return normalizeTurn(h / 360.0)
}

// saturated converts a hue fraction to RGB at full saturation and brightness.
// Channels round half up.
func saturated(hue float64) RGB {
	deg := normalizeTurn(hue) * 360.0
	if deg >= 360.0 {
		deg = 0
	}
	return fromColorful(colorful.Hsv(deg, 1.0, 1.0))
}

func fromColorful(c colorful.Color) RGB {
	c = c.Clamped()
	return RGB{R: to255(c.R), G: to255(c.G), B: to255(c.B)}
}

func to255(x float64) uint8 {
	return uint8(math.Floor(x*255.0 + 0.5))
}

// normalizeTurn wraps x into [0,1).
func normalizeTurn(x float64) float64 {
	x = math.Mod(x, 1.0)
	if x < 0 {
		x += 1.0
	}
	if x >= 1.0 {
		x = 0
	}
	return x
}
