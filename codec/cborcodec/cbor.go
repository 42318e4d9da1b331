// Package cborcodec provides a CBOR (RFC 8949) binary codec.
package cborcodec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/unkn0wn-root/codee"
)

const Name = "cbor"

// CBOR is a Codec that serializes values using fxamacker/cbor.
// The zero value uses the library's default modes. Construct with New or Must
// for deterministic output.
//
// Use Deterministic for canonical encoding (RFC 8949 Core Deterministic)
// when you need byte-for-byte stable outputs (e.g., hashing/content addressing).
// Otherwise PreferredUnsortedEncOptions are used (sensible defaults).
// Time values are encoded as RFC3339Nano for stable, human-readable timestamps.
type CBOR[T any] struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ codee.BinaryCodec[struct{}] = CBOR[struct{}]{}

type Options struct {
	Deterministic bool
	// MaxNestedLevels bounds decode recursion. 0 => library default (32).
	MaxNestedLevels int
}

// New constructs a CBOR codec.
//   - Deterministic is true, uses CoreDetEncOptions (RFC 8949).
//   - Otherwise uses PreferredUnsortedEncOptions (smaller/faster defaults).
//
// Also sets time encoding to RFC3339Nano.
func New[T any](opts Options) (CBOR[T], error) {
	var eo cbor.EncOptions
	if opts.Deterministic {
		eo = cbor.CoreDetEncOptions()
	} else {
		eo = cbor.PreferredUnsortedEncOptions()
	}
	eo.Time = cbor.TimeRFC3339Nano

	em, err := eo.EncMode()
	if err != nil {
		return CBOR[T]{}, err
	}
	dm, err := (cbor.DecOptions{MaxNestedLevels: opts.MaxNestedLevels}).DecMode()
	if err != nil {
		return CBOR[T]{}, err
	}
	return CBOR[T]{enc: em, dec: dm}, nil
}

// Must is like New but panics on error.
// Handy for package-level variables.
func Must[T any](opts Options) CBOR[T] {
	c, err := New[T](opts)
	if err != nil {
		panic(err)
	}
	return c
}

// Encode encodes v as CBOR using the configured EncMode.
func (c CBOR[T]) Encode(v T) ([]byte, error) {
	var (
		b   []byte
		err error
	)
	if c.enc != nil {
		b, err = c.enc.Marshal(v)
	} else {
		b, err = cbor.Marshal(v)
	}
	if err != nil {
		return nil, codee.EncodeErr(Name, err)
	}
	return b, nil
}

// Decode decodes b into a T using the configured DecMode.
func (c CBOR[T]) Decode(b []byte) (T, error) {
	var v T
	var err error
	if c.dec != nil {
		err = c.dec.Unmarshal(b, &v)
	} else {
		err = cbor.Unmarshal(b, &v)
	}
	if err != nil {
		var zero T
		return zero, codee.DecodeErr(Name, err)
	}
	return v, nil
}

func (CBOR[T]) IsBinaryEncoder() bool { return true }
func (CBOR[T]) IsBinaryDecoder() bool { return true }
