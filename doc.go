// Package codee defines generic Encoder/Decoder contracts so calling code can be
// generic over which serialization format and library is used.
//
// A codec converts a value T into a representation R, which is either text
// (string) or binary ([]byte), and back. Each codec fixes R and reports it
// through IsBinaryEncoder/IsBinaryDecoder.
//
// Components:
//   - Codec[T, R]: the Encoder/Decoder pair. Errors are *EncodeError / *DecodeError
//     wrapping the library's own error (errors.Is/As reach it).
//   - codec/*: one package per wrapped library (json, jsoniter, msgpack, cbor, gob,
//     protobuf, yaml, toml, ...). Import only the ones you use.
//   - Adapters: Base64, Option, Limit, Observe here; compress, lite and versioned
//     under codec/.
//   - Hybrid: erases R for callers that handle text and binary codecs alike.
//
// Writing code generic over the codec:
//
//	func store[T any](c codee.StringCodec[T], v T) error {
//	    s, err := c.Encode(v)
//	    if err != nil {
//	        return err
//	    }
//	    return db.Put(key, s)
//	}
//
//	_ = store[int32](text.FromToString[int32]{}, 42)
//	_ = store[User](jsoncodec.JSON[User]{}, User{ID: 42})
package codee
