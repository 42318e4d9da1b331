// Package tomlcodec provides a TOML string codec. TOML documents are tables,
// so T should be a struct or a map.
package tomlcodec

import (
	"bytes"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/unkn0wn-root/codee"
)

const Name = "toml"

// TOML encodes T as a TOML document using pelletier/go-toml/v2.
// With Strict set, Decode rejects keys that map to no field of T.
type TOML[T any] struct {
	Strict bool
}

var _ codee.StringCodec[struct{}] = TOML[struct{}]{}

func (TOML[T]) Encode(v T) (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return "", codee.EncodeErr(Name, err)
	}
	return buf.String(), nil
}

func (c TOML[T]) Decode(s string) (T, error) {
	var v T
	dec := toml.NewDecoder(strings.NewReader(s))
	if c.Strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&v); err != nil {
		var zero T
		return zero, codee.DecodeErr(Name, err)
	}
	return v, nil
}

func (TOML[T]) IsBinaryEncoder() bool { return false }
func (TOML[T]) IsBinaryDecoder() bool { return false }
