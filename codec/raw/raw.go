// Package raw holds identity codecs for values that already are their own
// representation.
package raw

import "github.com/unkn0wn-root/codee"

const Name = "raw"

// Bytes is an identity codec for []byte values. Decode returns a copy so the
// caller owns the result; Encode returns the input unchanged.
type Bytes struct{}

var _ codee.BinaryCodec[[]byte] = Bytes{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return append([]byte(nil), b...), nil }

func (Bytes) IsBinaryEncoder() bool { return true }
func (Bytes) IsBinaryDecoder() bool { return true }

// String is an identity codec for string values.
type String struct{}

var _ codee.StringCodec[string] = String{}

func (String) Encode(s string) (string, error) { return s, nil }
func (String) Decode(s string) (string, error) { return s, nil }

func (String) IsBinaryEncoder() bool { return false }
func (String) IsBinaryDecoder() bool { return false }
