package codee

import "reflect"

// Repr is the set of encoded representations a codec may produce:
// text (string) or binary ([]byte).
type Repr interface {
	~string | ~[]byte
}

// Encoder turns a T into its encoded representation R.
// Implementations must be safe for concurrent use and must not retain v.
type Encoder[T any, R Repr] interface {
	// Encode returns the complete representation of v, or an *EncodeError.
	Encode(v T) (R, error)
	// IsBinaryEncoder reports whether R is byte-oriented. Constant per codec.
	IsBinaryEncoder() bool
}

// Decoder turns a representation R back into a T.
// Implementations must be safe for concurrent use and must not mutate r.
type Decoder[T any, R Repr] interface {
	// Decode returns a fully owned T, or the zero T and a *DecodeError.
	// r does not have to come from the paired Encoder.
	Decode(r R) (T, error)
	// IsBinaryDecoder reports whether R is byte-oriented. Constant per codec.
	IsBinaryDecoder() bool
}

// Codec pairs an Encoder and a Decoder over the same representation.
type Codec[T any, R Repr] interface {
	Encoder[T, R]
	Decoder[T, R]
}

// StringCodec is a Codec with a text representation.
type StringCodec[T any] = Codec[T, string]

// BinaryCodec is a Codec with a binary representation.
type BinaryCodec[T any] = Codec[T, []byte]

// IsBinary reports whether R is a byte-oriented representation.
func IsBinary[R Repr]() bool {
	return reflect.TypeFor[R]().Kind() == reflect.Slice
}
