// Package text converts values to and from their plain textual form without
// any serialization library: numbers, bools, strings and anything implementing
// encoding.TextMarshaler / encoding.TextUnmarshaler.
package text

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"github.com/unkn0wn-root/codee"
)

const Name = "from_to_string"

// FromToString encodes T with its textual form, e.g. 42 <-> "42".
// Named types are handled by their underlying kind unless they implement the
// encoding.Text* interfaces, which take precedence.
// Decoding parses with the exact width of T, so "300" does not fit an int8.
type FromToString[T any] struct{}

var _ codee.StringCodec[int32] = FromToString[int32]{}

func (FromToString[T]) Encode(v T) (string, error) {
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", codee.EncodeErr(Name, fmt.Errorf("%w: nil %T", codee.ErrUnsupported, v))
	}
	if m, ok := any(v).(encoding.TextMarshaler); ok {
		b, err := m.MarshalText()
		if err != nil {
			return "", codee.EncodeErr(Name, err)
		}
		return string(b), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits()), nil
	case reflect.Complex64, reflect.Complex128:
		return strconv.FormatComplex(rv.Complex(), 'g', -1, rv.Type().Bits()), nil
	}
	return "", codee.EncodeErr(Name, fmt.Errorf("%w: %T", codee.ErrUnsupported, v))
}

func (FromToString[T]) Decode(s string) (T, error) {
	var v T
	target := any(&v)
	t := reflect.TypeFor[T]()
	ptr := t.Kind() == reflect.Pointer
	if ptr {
		// *E: decode into a fresh E so a nil pointer is never dereferenced
		p := reflect.New(t.Elem())
		reflect.ValueOf(&v).Elem().Set(p)
		target = p.Interface()
	}
	if u, ok := target.(encoding.TextUnmarshaler); ok {
		if err := u.UnmarshalText([]byte(s)); err != nil {
			var zero T
			return zero, codee.DecodeErr(Name, err)
		}
		return v, nil
	}
	if ptr {
		var zero T
		return zero, codee.DecodeErr(Name, fmt.Errorf("%w: %T", codee.ErrUnsupported, v))
	}

	rv := reflect.ValueOf(&v).Elem()
	var err error
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s)
	case reflect.Bool:
		var b bool
		if b, err = strconv.ParseBool(s); err == nil {
			rv.SetBool(b)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int64
		if n, err = strconv.ParseInt(s, 10, rv.Type().Bits()); err == nil {
			rv.SetInt(n)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		var n uint64
		if n, err = strconv.ParseUint(s, 10, rv.Type().Bits()); err == nil {
			rv.SetUint(n)
		}
	case reflect.Float32, reflect.Float64:
		var f float64
		if f, err = strconv.ParseFloat(s, rv.Type().Bits()); err == nil {
			rv.SetFloat(f)
		}
	case reflect.Complex64, reflect.Complex128:
		var c complex128
		if c, err = strconv.ParseComplex(s, rv.Type().Bits()); err == nil {
			rv.SetComplex(c)
		}
	default:
		err = fmt.Errorf("%w: %s", codee.ErrUnsupported, rv.Type())
	}
	if err != nil {
		var zero T
		return zero, codee.DecodeErr(Name, err)
	}
	return v, nil
}

func (FromToString[T]) IsBinaryEncoder() bool { return false }
func (FromToString[T]) IsBinaryDecoder() bool { return false }
