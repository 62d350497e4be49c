package colourset

import (
	"errors"
	"fmt"
)

// Kind identifies which validation rule rejected the input.
type Kind int

const (
	KindSizeTooSmall Kind = iota + 1
	KindSizeTooLarge
	KindChannelOutOfRange
	KindGreyscaleRejected
)

// Canonical messages reported for each Kind.
const (
	MsgSizeTooSmall      = "Target array size must be at least 2."
	MsgSizeTooLarge      = "Target colours are hard to distinguish for values > 10. Cowardly refusing to compute colours."
	MsgChannelOutOfRange = "Origin colour must use rgb channels in range [0-255]."
	MsgGreyscaleRejected = "Origin colour must have hue. (Greyscale not allowed)"
)

// String makes Kind satisfy the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindSizeTooSmall:
		return "SizeTooSmall"
	case KindSizeTooLarge:
		return "SizeTooLarge"
	case KindChannelOutOfRange:
		return "ChannelOutOfRange"
	case KindGreyscaleRejected:
		return "GreyscaleRejected"
	default:
		return "Unknown"
	}
}

// Message returns the canonical message for the kind.
func (k Kind) Message() string {
	switch k {
	case KindSizeTooSmall:
		return MsgSizeTooSmall
	case KindSizeTooLarge:
		return MsgSizeTooLarge
	case KindChannelOutOfRange:
		return MsgChannelOutOfRange
	case KindGreyscaleRejected:
		return MsgGreyscaleRejected
	default:
		return fmt.Sprintf("unknown validation error (%d)", int(k))
	}
}

// ValidationError is returned by Generate when the input is rejected.
// Channel and Value describe the offending input where one exists: the
// requested count for size errors, the first bad channel for range errors.
type ValidationError struct {
	Kind    Kind
	Channel string
	Value   int
}

func (e *ValidationError) Error() string {
	return e.Kind.Message()
}

// Is reports whether target is a *ValidationError of the same kind, so the
// package sentinels can be matched with errors.Is.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is matching.
var (
	ErrSizeTooSmall      = &ValidationError{Kind: KindSizeTooSmall}
	ErrSizeTooLarge      = &ValidationError{Kind: KindSizeTooLarge}
	ErrChannelOutOfRange = &ValidationError{Kind: KindChannelOutOfRange}
	ErrGreyscaleRejected = &ValidationError{Kind: KindGreyscaleRejected}

	// ErrInvalidHex is returned by ParseHex for malformed input.
	ErrInvalidHex = errors.New("invalid hex colour")
)

// KindOf returns the validation kind carried by err, or 0 if err is not a
// validation error.
func KindOf(err error) Kind {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Kind
	}
	return 0
}
