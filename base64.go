package codee

import (
	"encoding/base64"
	"fmt"
)

// Base64Name tags errors produced by the Base64 adapter itself.
const Base64Name = "base64"

// Base64 turns a binary codec into a string codec by representing the bytes as
// base64 text. Encoding defaults to base64.StdEncoding.
type Base64[T any] struct {
	Inner    BinaryCodec[T]
	Encoding *base64.Encoding
}

var _ StringCodec[[]byte] = Base64[[]byte]{}

func (c Base64[T]) enc() *base64.Encoding {
	return Coalesce(c.Encoding, base64.StdEncoding)
}

func (c Base64[T]) Encode(v T) (string, error) {
	b, err := c.Inner.Encode(v)
	if err != nil {
		return "", err
	}
	return c.enc().EncodeToString(b), nil
}

func (c Base64[T]) Decode(s string) (T, error) {
	b, err := c.enc().DecodeString(s)
	if err != nil {
		var zero T
		return zero, DecodeErr(Base64Name, fmt.Errorf("%w: %w", ErrMalformed, err))
	}
	return c.Inner.Decode(b)
}

func (Base64[T]) IsBinaryEncoder() bool { return false }
func (Base64[T]) IsBinaryDecoder() bool { return false }
