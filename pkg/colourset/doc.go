// Package colourset derives a set of mutually distinguishable colours from a
// single seed colour.
//
// The seed is converted to HSB and only its hue is kept. Every generated
// colour has full saturation and full brightness, and the hues are spread
// evenly around the colour wheel starting at the seed hue:
//
//	colours, err := colourset.Generate(255, 0, 0, 3)
//	// colours == []colourset.RGB{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}}
//
// # Validation
//
// Input is validated before any computation and the first failing check is
// reported, in this order: count below MinCount, count above MaxCount, a
// channel outside [0,255], and an achromatic seed (R == G == B). Each failure
// is a *ValidationError that matches one of ErrSizeTooSmall, ErrSizeTooLarge,
// ErrChannelOutOfRange or ErrGreyscaleRejected through errors.Is.
//
// # Thread Safety
//
// All functions are pure and can be called concurrently.
package colourset
