// Package jsoncodec provides a JSON string codec built on encoding/json.
package jsoncodec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/unkn0wn-root/codee"
)

const Name = "json"

// JSON encodes T as compact JSON text. The zero value is ready to use.
//
// With Strict set, Decode rejects unknown object fields. With UseNumber set,
// numbers decoded into interface values are json.Number instead of float64,
// so integers beyond 2^53 survive JSON[any]. Anything after the first JSON
// value is always rejected.
type JSON[T any] struct {
	Strict    bool
	UseNumber bool
}

var _ codee.StringCodec[struct{}] = JSON[struct{}]{}

func (JSON[T]) Encode(v T) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", codee.EncodeErr(Name, err)
	}
	return string(b), nil
}

func (c JSON[T]) Decode(s string) (T, error) {
	var v T
	if !c.Strict && !c.UseNumber {
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			var zero T
			return zero, codee.DecodeErr(Name, err)
		}
		return v, nil
	}

	dec := json.NewDecoder(strings.NewReader(s))
	if c.Strict {
		dec.DisallowUnknownFields()
	}
	if c.UseNumber {
		dec.UseNumber()
	}
	if err := dec.Decode(&v); err != nil {
		var zero T
		return zero, codee.DecodeErr(Name, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		var zero T
		return zero, codee.DecodeErr(Name, fmt.Errorf("%w: trailing data after JSON value", codee.ErrMalformed))
	}
	return v, nil
}

func (JSON[T]) IsBinaryEncoder() bool { return false }
func (JSON[T]) IsBinaryDecoder() bool { return false }
