// Package lite lets a codec over dynamic values serve typed values.
//
// Lite converts T to an intermediate form made only of nil, bool, int64,
// uint64, float64, string, []byte, []any and map[string]any, and hands that to
// Inner. Struct fields are keyed by the `lite` tag or the field name and
// encoding.TextMarshaler values become strings. Decoding binds Inner's dynamic
// value back to T with mapstructure.
//
//	c := lite.Lite[User, string]{Inner: jsoncodec.JSON[any]{UseNumber: true}}
//	c := lite.Lite[User, []byte]{Inner: msgpackcodec.Msgpack[any]{}}
//
// Without UseNumber, JSON reads every number as float64 and integers beyond
// 2^53 lose precision.
package lite

import (
	"encoding"
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/unkn0wn-root/codee"
	"github.com/unkn0wn-root/codee/internal/bind"
)

const Name = "lite"

// TagName is the struct tag consulted for intermediate key names.
// `lite:"-"` skips a field and `lite:"name,omitempty"` drops zero values.
const TagName = "lite"

type Lite[T any, R codee.Repr] struct {
	Inner codee.Codec[any, R]
}

var _ codee.StringCodec[struct{}] = Lite[struct{}, string]{}

func (c Lite[T, R]) Encode(v T) (R, error) {
	im, err := toIntermediate(reflect.ValueOf(&v).Elem())
	if err != nil {
		var zero R
		return zero, codee.EncodeErr(Name, err)
	}
	return c.Inner.Encode(im)
}

func (c Lite[T, R]) Decode(r R) (T, error) {
	var zero T
	im, err := c.Inner.Decode(r)
	if err != nil {
		return zero, err
	}
	var v T
	md, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:    TagName,
		Result:     &v,
		DecodeHook: bind.Hook(),
	})
	if err != nil {
		return zero, codee.DecodeErr(Name, err)
	}
	if err := md.Decode(im); err != nil {
		return zero, codee.DecodeErr(Name, err)
	}
	return v, nil
}

func (c Lite[T, R]) IsBinaryEncoder() bool { return c.Inner.IsBinaryEncoder() }
func (c Lite[T, R]) IsBinaryDecoder() bool { return c.Inner.IsBinaryDecoder() }

var textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()

func toIntermediate(rv reflect.Value) (any, error) {
	if !rv.IsValid() {
		return nil, nil
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		if rv.Kind() == reflect.Pointer && rv.Type().Implements(textMarshalerType) {
			return marshalText(rv)
		}
		return toIntermediate(rv.Elem())
	}

	if rv.Type().Implements(textMarshalerType) {
		return marshalText(rv)
	}
	if reflect.PointerTo(rv.Type()).Implements(textMarshalerType) {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		return marshalText(p)
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Slice:
		if rv.IsNil() {
			return nil, nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return append([]byte(nil), rv.Bytes()...), nil
		}
		return seq(rv)
	case reflect.Array:
		return seq(rv)
	case reflect.Map:
		if rv.IsNil() {
			return nil, nil
		}
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map key %s is not a string", codee.ErrUnsupported, rv.Type().Key())
		}
		out := make(map[string]any, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			x, err := toIntermediate(it.Value())
			if err != nil {
				return nil, err
			}
			out[it.Key().String()] = x
		}
		return out, nil
	case reflect.Struct:
		return fields(rv)
	}
	return nil, fmt.Errorf("%w: %s", codee.ErrUnsupported, rv.Type())
}

func marshalText(rv reflect.Value) (any, error) {
	b, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func seq(rv reflect.Value) (any, error) {
	out := make([]any, rv.Len())
	for i := range out {
		x, err := toIntermediate(rv.Index(i))
		if err != nil {
			return nil, err
		}
		out[i] = x
	}
	return out, nil
}

func fields(rv reflect.Value) (any, error) {
	t := rv.Type()
	out := make(map[string]any, t.NumField())
	exported := 0
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		exported++
		name, opts, _ := strings.Cut(f.Tag.Get(TagName), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		fv := rv.Field(i)
		if opts == "omitempty" && fv.IsZero() {
			continue
		}
		x, err := toIntermediate(fv)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		out[name] = x
	}
	if exported == 0 && t.NumField() > 0 {
		// only unexported state; it would vanish without an error
		return nil, fmt.Errorf("%w: %s has no exported fields", codee.ErrUnsupported, t)
	}
	return out, nil
}
