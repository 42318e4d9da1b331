// Package fixed encodes values with a stable binary layout: big-endian
// fixed-size numbers, bools, arrays and structs made only of those.
// Strings are encoded as their UTF-8 bytes and []byte is passed through.
package fixed

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"
	"unicode/utf8"

	"github.com/unkn0wn-root/codee"
)

const Name = "from_to_bytes"

// FromToBytes is a binary codec over T's memory-independent fixed layout.
// Decode requires input of exactly the encoded size of T.
// int and uint are widened to 64 bits on the wire.
type FromToBytes[T any] struct{}

var _ codee.BinaryCodec[uint64] = FromToBytes[uint64]{}

var order = binary.BigEndian

func (FromToBytes[T]) Encode(v T) ([]byte, error) {
	switch x := any(v).(type) {
	case []byte:
		return append([]byte(nil), x...), nil
	case string:
		return []byte(x), nil
	case int:
		return order.AppendUint64(nil, uint64(int64(x))), nil
	case uint:
		return order.AppendUint64(nil, uint64(x)), nil
	}

	if !fixedSize[T]() || binary.Size(v) < 0 {
		return nil, codee.EncodeErr(Name, fmt.Errorf("%w: %T has no fixed size", codee.ErrUnsupported, v))
	}
	b, err := binary.Append(nil, order, v)
	if err != nil {
		return nil, codee.EncodeErr(Name, err)
	}
	return b, nil
}

func (FromToBytes[T]) Decode(b []byte) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *[]byte:
		*p = append([]byte{}, b...)
		return v, nil
	case *string:
		if !utf8.Valid(b) {
			return v, codee.DecodeErr(Name, fmt.Errorf("%w: invalid utf-8", codee.ErrMalformed))
		}
		*p = string(b)
		return v, nil
	case *int:
		n, err := decodeUint64(b)
		if err != nil {
			return v, err
		}
		i := int64(n)
		if reflect.ValueOf(p).Elem().OverflowInt(i) {
			return v, codee.DecodeErr(Name, fmt.Errorf("%w: %d overflows int", codee.ErrMalformed, i))
		}
		*p = int(i)
		return v, nil
	case *uint:
		n, err := decodeUint64(b)
		if err != nil {
			return v, err
		}
		if n > math.MaxUint {
			return v, codee.DecodeErr(Name, fmt.Errorf("%w: %d overflows uint", codee.ErrMalformed, n))
		}
		*p = uint(n)
		return v, nil
	}

	size := binary.Size(v)
	if !fixedSize[T]() || size < 0 {
		return v, codee.DecodeErr(Name, fmt.Errorf("%w: %T has no fixed size", codee.ErrUnsupported, v))
	}
	if len(b) != size {
		return v, codee.DecodeErr(Name, fmt.Errorf("%w: got %d bytes, want %d", codee.ErrMalformed, len(b), size))
	}
	if _, err := binary.Decode(b, order, &v); err != nil {
		var zero T
		return zero, codee.DecodeErr(Name, err)
	}
	return v, nil
}

// fixedSize reports whether T's encoded size follows from its type alone.
// binary.Size also measures slices, but by their length.
func fixedSize[T any]() bool {
	return reflect.TypeFor[T]().Kind() != reflect.Slice
}

func decodeUint64(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, codee.DecodeErr(Name, fmt.Errorf("%w: got %d bytes, want 8", codee.ErrMalformed, len(b)))
	}
	return order.Uint64(b), nil
}

func (FromToBytes[T]) IsBinaryEncoder() bool { return true }
func (FromToBytes[T]) IsBinaryDecoder() bool { return true }
