package colourset

// Bounds for the number of colours in a set. Beyond ten, evenly spaced hues
// become hard to tell apart.
const (
	MinCount = 2
	MaxCount = 10
)

const (
	minChannel = 0
	maxChannel = 255
)

// Generate returns count colours derived from the seed (r, g, b). Index 0 is
// the seed hue at full saturation and brightness; the remaining colours follow
// at even hue steps of 1/count.
func Generate(r, g, b, count int) ([]RGB, error) {
	if err := validate(r, g, b, count); err != nil {
		return nil, err
	}
	seed := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
	return spread(Hue(seed), count), nil
}

// GenerateFrom is Generate for an already parsed seed.
func GenerateFrom(seed RGB, count int) ([]RGB, error) {
	return Generate(int(seed.R), int(seed.G), int(seed.B), count)
}

// ValidateCount applies only the set size rules of Generate.
func ValidateCount(count int) error {
	if count < MinCount {
		return &ValidationError{Kind: KindSizeTooSmall, Value: count}
	}
	if count > MaxCount {
		return &ValidationError{Kind: KindSizeTooLarge, Value: count}
	}
	return nil
}

func validate(r, g, b, count int) error {
	if err := ValidateCount(count); err != nil {
		return err
	}
	for _, ch := range []struct {
		name  string
		value int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if ch.value < minChannel || ch.value > maxChannel {
			return &ValidationError{Kind: KindChannelOutOfRange, Channel: ch.name, Value: ch.value}
		}
	}
	if r == g && g == b {
		return &ValidationError{Kind: KindGreyscaleRejected, Value: r}
	}
	return nil
}

func spread(origin float64, count int) []RGB {
	step := 1.0 / float64(count)
	colours := make([]RGB, count)
	for i := range colours {
		colours[i] = saturated(origin + float64(i)*step)
	}
	return colours
}
