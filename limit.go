package codee

import "fmt"

// LimitName tags errors produced by the Limit adapter itself.
const LimitName = "limit"

// Limit wraps another codec to enforce payload size limits.
// If a limit is <= 0, that direction is unrestricted.
//
// Typical use: protect against oversized/malicious inputs coming from a
// shared store or untrusted peer.
type Limit[T any, R Repr] struct {
	// Inner is the underlying codec being wrapped. It must be set.
	Inner Codec[T, R]
	// MaxDecode is the maximum permitted length of the incoming representation.
	// Oversized input fails without invoking Inner.
	MaxDecode int
	// MaxEncode is the maximum permitted length of an encoded result.
	MaxEncode int
	// Hooks receives PayloadRejected. nil means NopHooks.
	Hooks Hooks
}

func (c Limit[T, R]) hooks() Hooks { return Coalesce[Hooks](c.Hooks, NopHooks{}) }

func (c Limit[T, R]) Encode(v T) (R, error) {
	r, err := c.Inner.Encode(v)
	if err != nil {
		return r, err
	}
	if c.MaxEncode > 0 && len(r) > c.MaxEncode {
		c.hooks().PayloadRejected(LimitName, len(r), c.MaxEncode)
		var zero R
		return zero, EncodeErr(LimitName, fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(r), c.MaxEncode))
	}
	return r, nil
}

func (c Limit[T, R]) Decode(r R) (T, error) {
	if c.MaxDecode > 0 && len(r) > c.MaxDecode {
		c.hooks().PayloadRejected(LimitName, len(r), c.MaxDecode)
		var zero T
		return zero, DecodeErr(LimitName, fmt.Errorf("%w: %d > %d", ErrPayloadTooLarge, len(r), c.MaxDecode))
	}
	return c.Inner.Decode(r)
}

func (c Limit[T, R]) IsBinaryEncoder() bool { return c.Inner.IsBinaryEncoder() }
func (c Limit[T, R]) IsBinaryDecoder() bool { return c.Inner.IsBinaryDecoder() }
