package cli

import (
	"math"

	"maxcolours/pkg/colourset"
)

// Swatch is one generated colour as presented to users and tools.
type Swatch struct {
	Index int     `json:"index" yaml:"index"`
	Hex   string  `json:"hex" yaml:"hex"`
	Red   uint8   `json:"red" yaml:"red"`
	Green uint8   `json:"green" yaml:"green"`
	Blue  uint8   `json:"blue" yaml:"blue"`
	Hue   float64 `json:"hue" yaml:"hue"` // degrees, one decimal
}

// Result is a generated colour set together with the seed it came from.
type Result struct {
	Seed    string   `json:"seed" yaml:"seed"`
	Count   int      `json:"count" yaml:"count"`
	Colours []Swatch `json:"colours" yaml:"colours"`
}

// NewResult builds the presentation model for a generated set.
func NewResult(seed colourset.RGB, colours []colourset.RGB) Result {
	swatches := make([]Swatch, len(colours))
	for i, c := range colours {
		swatches[i] = Swatch{
			Index: i,
			Hex:   c.Hex(),
			Red:   c.R,
			Green: c.G,
			Blue:  c.B,
			Hue:   math.Round(colourset.Hue(c)*3600) / 10,
		}
	}
	return Result{
		Seed:    seed.Hex(),
		Count:   len(colours),
		Colours: swatches,
	}
}

// Hexes returns the hex value of every colour in order.
func (r Result) Hexes() []string {
	hexes := make([]string, len(r.Colours))
	for i, s := range r.Colours {
		hexes[i] = s.Hex
	}
	return hexes
}
