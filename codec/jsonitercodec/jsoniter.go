// Package jsonitercodec provides a JSON string codec built on json-iterator,
// a faster drop-in for encoding/json with the same struct tag rules.
package jsonitercodec

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/unkn0wn-root/codee"
)

const Name = "jsoniter"

// JSON encodes T as JSON text using json-iterator.
// API defaults to jsoniter.ConfigCompatibleWithStandardLibrary. Avoid
// ConfigFastest when round trips must be exact: it truncates float precision.
type JSON[T any] struct {
	API jsoniter.API
}

var _ codee.StringCodec[struct{}] = JSON[struct{}]{}

func (c JSON[T]) api() jsoniter.API {
	if c.API == nil {
		return jsoniter.ConfigCompatibleWithStandardLibrary
	}
	return c.API
}

func (c JSON[T]) Encode(v T) (string, error) {
	s, err := c.api().MarshalToString(v)
	if err != nil {
		return "", codee.EncodeErr(Name, err)
	}
	return s, nil
}

func (c JSON[T]) Decode(s string) (T, error) {
	var v T
	if err := c.api().UnmarshalFromString(s, &v); err != nil {
		var zero T
		return zero, codee.DecodeErr(Name, err)
	}
	return v, nil
}

func (JSON[T]) IsBinaryEncoder() bool { return false }
func (JSON[T]) IsBinaryDecoder() bool { return false }
