// Package bind holds the mapstructure decode hooks shared by the codecs that
// bind dynamic values (maps, slices, scalars) to typed values.
package bind

import (
	"encoding"
	"encoding/base64"
	"encoding/json"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

var textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()

// Hook is the composed decode hook: NumberHook, TextHook, BytesHook.
func Hook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.DecodeHookFuncType(NumberHook),
		mapstructure.DecodeHookFuncType(TextHook),
		mapstructure.DecodeHookFuncType(BytesHook),
	)
}

// NumberHook resolves json.Number stored into interface targets (e.g. a
// map[string]any field) to int64 or float64. Typed numeric targets are left to
// mapstructure, which parses json.Number itself.
func NumberHook(_, to reflect.Type, data any) (any, error) {
	n, ok := data.(json.Number)
	if !ok || to.Kind() != reflect.Interface {
		return data, nil
	}
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	return n.Float64()
}

// TextHook feeds string data to targets implementing encoding.TextUnmarshaler
// (time.Time, netip.Addr, big.Int, ...).
func TextHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() == reflect.Interface ||
		!reflect.PointerTo(to).Implements(textUnmarshalerType) {
		return data, nil
	}
	p := reflect.New(to)
	if err := p.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(reflect.ValueOf(data).String())); err != nil {
		return nil, err
	}
	return p.Elem().Interface(), nil
}

// BytesHook decodes standard base64 strings into byte slices, the form
// encoding/json gives them.
func BytesHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice || to.Elem().Kind() != reflect.Uint8 {
		return data, nil
	}
	return base64.StdEncoding.DecodeString(reflect.ValueOf(data).String())
}
