// Package msgpackcodec provides a MessagePack binary codec.
package msgpackcodec

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/unkn0wn-root/codee"
)

const Name = "msgpack"

// Msgpack is a Codec that serializes values using vmihailenco/msgpack/v5.
// The zero value is ready to use.
//
// Msgpack is compact and fast; be mindful of struct tag differences vs JSON.
// Use `msgpack:"fieldName"` tags if you need explicit control, or set
// UseJSONTag to reuse existing `json` tags.
type Msgpack[T any] struct {
	UseJSONTag bool
}

var _ codee.BinaryCodec[struct{}] = Msgpack[struct{}]{}

func (c Msgpack[T]) Encode(v T) ([]byte, error) {
	if !c.UseJSONTag {
		b, err := msgpack.Marshal(v)
		if err != nil {
			return nil, codee.EncodeErr(Name, err)
		}
		return b, nil
	}

	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(v); err != nil {
		return nil, codee.EncodeErr(Name, err)
	}
	return buf.Bytes(), nil
}

func (c Msgpack[T]) Decode(b []byte) (T, error) {
	var v T
	var err error
	if !c.UseJSONTag {
		err = msgpack.Unmarshal(b, &v)
	} else {
		dec := msgpack.NewDecoder(bytes.NewReader(b))
		dec.SetCustomStructTag("json")
		err = dec.Decode(&v)
	}
	if err != nil {
		var zero T
		return zero, codee.DecodeErr(Name, err)
	}
	return v, nil
}

func (Msgpack[T]) IsBinaryEncoder() bool { return true }
func (Msgpack[T]) IsBinaryDecoder() bool { return true }
