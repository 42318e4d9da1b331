package codee

import "fmt"

// HybridCodec hides a codec's representation type so text and binary codecs can
// be held behind one type. Callers branch on IsBinaryEncoder/IsBinaryDecoder and
// use the matching method; the other one fails with ErrNotImplemented.
type HybridCodec[T any] interface {
	IsBinaryEncoder() bool
	IsBinaryDecoder() bool

	EncodeString(v T) (string, error)
	EncodeBytes(v T) ([]byte, error)

	DecodeString(s string) (T, error)
	DecodeBytes(b []byte) (T, error)
}

// Hybrid erases the representation type of c. name tags kind-mismatch errors.
func Hybrid[T any, R Repr](name string, c Codec[T, R]) HybridCodec[T] {
	return hybrid[T, R]{name: name, c: c, binary: IsBinary[R]()}
}

type hybrid[T any, R Repr] struct {
	name   string
	c      Codec[T, R]
	binary bool
}

func (h hybrid[T, R]) IsBinaryEncoder() bool { return h.c.IsBinaryEncoder() }
func (h hybrid[T, R]) IsBinaryDecoder() bool { return h.c.IsBinaryDecoder() }

func (h hybrid[T, R]) EncodeString(v T) (string, error) {
	if h.binary {
		return "", EncodeErr(h.name, fmt.Errorf("%w: encode to string with a binary codec", ErrNotImplemented))
	}
	r, err := h.c.Encode(v)
	if err != nil {
		return "", err
	}
	return string(r), nil
}

func (h hybrid[T, R]) EncodeBytes(v T) ([]byte, error) {
	if !h.binary {
		return nil, EncodeErr(h.name, fmt.Errorf("%w: encode to bytes with a string codec", ErrNotImplemented))
	}
	r, err := h.c.Encode(v)
	if err != nil {
		return nil, err
	}
	return []byte(r), nil
}

func (h hybrid[T, R]) DecodeString(s string) (T, error) {
	if h.binary {
		var zero T
		return zero, DecodeErr(h.name, fmt.Errorf("%w: decode from string with a binary codec", ErrNotImplemented))
	}
	return h.c.Decode(R(s))
}

func (h hybrid[T, R]) DecodeBytes(b []byte) (T, error) {
	if !h.binary {
		var zero T
		return zero, DecodeErr(h.name, fmt.Errorf("%w: decode from bytes with a string codec", ErrNotImplemented))
	}
	return h.c.Decode(R(b))
}
