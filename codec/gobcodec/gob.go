// Package gobcodec provides a compact Go-native binary codec on encoding/gob.
// Each encoded value carries its own type description, so a payload decodes
// without any prior stream state.
package gobcodec

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/unkn0wn-root/codee"
)

const Name = "gob"

// Gob encodes one T per payload. The zero value is ready to use.
// Decode rejects bytes left over after the value.
type Gob[T any] struct{}

var _ codee.BinaryCodec[struct{}] = Gob[struct{}]{}

func (Gob[T]) Encode(v T) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, codee.EncodeErr(Name, err)
	}
	return buf.Bytes(), nil
}

func (Gob[T]) Decode(b []byte) (T, error) {
	var v T
	r := bytes.NewReader(b)
	if err := gob.NewDecoder(r).Decode(&v); err != nil {
		var zero T
		return zero, codee.DecodeErr(Name, err)
	}
	if r.Len() != 0 {
		var zero T
		return zero, codee.DecodeErr(Name, fmt.Errorf("%w: %d trailing bytes", codee.ErrMalformed, r.Len()))
	}
	return v, nil
}

func (Gob[T]) IsBinaryEncoder() bool { return true }
func (Gob[T]) IsBinaryDecoder() bool { return true }
