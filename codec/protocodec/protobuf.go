// Package protocodec provides Protocol Buffers codecs: the binary wire format
// and the canonical JSON mapping.
//
// Protocol buffers carry their own versioning rules (unknown fields are kept,
// missing fields read as defaults), which makes them a good fit for data that
// outlives the code that wrote it.
package protocodec

import (
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/unkn0wn-root/codee"
)

const (
	Name     = "protobuf"
	NameJSON = "protojson"
)

var (
	_ codee.BinaryCodec[*structpb.Struct] = Protobuf[*structpb.Struct]{}
	_ codee.StringCodec[*structpb.Struct] = ProtoJSON[*structpb.Struct]{}
)

// Protobuf encodes messages with the binary wire format.
//
// New builds the message Decode fills (e.g. func() *mypb.User { return &mypb.User{} }).
// If nil, a fresh message is created from T's descriptor.
// Set Unmarshal.DiscardUnknown to drop fields that newer writers added.
type Protobuf[T proto.Message] struct {
	New       func() T
	Marshal   proto.MarshalOptions
	Unmarshal proto.UnmarshalOptions
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	b, err := c.Marshal.Marshal(v)
	if err != nil {
		return nil, codee.EncodeErr(Name, err)
	}
	return b, nil
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := newMessage(c.New)
	if err := c.Unmarshal.Unmarshal(b, m); err != nil {
		var zero T
		return zero, codee.DecodeErr(Name, err)
	}
	return m, nil
}

func (Protobuf[T]) IsBinaryEncoder() bool { return true }
func (Protobuf[T]) IsBinaryDecoder() bool { return true }

// ProtoJSON encodes messages with the protobuf JSON mapping.
type ProtoJSON[T proto.Message] struct {
	New       func() T
	Marshal   protojson.MarshalOptions
	Unmarshal protojson.UnmarshalOptions
}

func (c ProtoJSON[T]) Encode(v T) (string, error) {
	b, err := c.Marshal.Marshal(v)
	if err != nil {
		return "", codee.EncodeErr(NameJSON, err)
	}
	return string(b), nil
}

func (c ProtoJSON[T]) Decode(s string) (T, error) {
	m := newMessage(c.New)
	if err := c.Unmarshal.Unmarshal([]byte(s), m); err != nil {
		var zero T
		return zero, codee.DecodeErr(NameJSON, err)
	}
	return m, nil
}

func (ProtoJSON[T]) IsBinaryEncoder() bool { return false }
func (ProtoJSON[T]) IsBinaryDecoder() bool { return false }

func newMessage[T proto.Message](ctor func() T) T {
	if ctor != nil {
		return ctor()
	}
	var zero T
	return zero.ProtoReflect().Type().New().Interface().(T)
}
