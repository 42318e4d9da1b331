// Package bridgecodec decodes JSON in two steps: text -> dynamic value -> T.
//
// The dynamic step lets callers migrate stored documents before they are bound
// to the current struct shape, e.g. filling in a field added in a later release:
//
//	c := bridgecodec.Bridge[Settings]{Migrate: func(v any) (any, error) {
//	    if m, ok := v.(map[string]any); ok {
//	        if _, ok := m["greeting"]; !ok {
//	            m["greeting"] = "Hello"
//	        }
//	    }
//	    return v, nil
//	}}
package bridgecodec

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/unkn0wn-root/codee"
	"github.com/unkn0wn-root/codee/internal/bind"
)

const Name = "json_bridge"

// Bridge encodes T as JSON with encoding/json and decodes through a dynamic
// value bound with mapstructure using `json` tags. Numbers stay json.Number
// until bound, so integers do not pass through float64. Strings bind to
// encoding.TextUnmarshaler fields (time.Time among them) and, as base64, to
// byte slices, matching what encoding/json writes for them.
type Bridge[T any] struct {
	// Migrate, if set, rewrites the dynamic value before binding.
	Migrate func(any) (any, error)
	// ErrorUnused rejects object keys that map to no field of T.
	ErrorUnused bool
}

var _ codee.StringCodec[struct{}] = Bridge[struct{}]{}

func (Bridge[T]) Encode(v T) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", codee.EncodeErr(Name, err)
	}
	return string(b), nil
}

func (c Bridge[T]) Decode(s string) (T, error) {
	var zero T

	dec := json.NewDecoder(strings.NewReader(s))
	dec.UseNumber()
	var dyn any
	if err := dec.Decode(&dyn); err != nil {
		return zero, codee.DecodeErr(Name, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return zero, codee.DecodeErr(Name, fmt.Errorf("%w: trailing data after JSON value", codee.ErrMalformed))
	}

	if c.Migrate != nil {
		var err error
		if dyn, err = c.Migrate(dyn); err != nil {
			return zero, codee.DecodeErr(Name, fmt.Errorf("migrate: %w", err))
		}
	}

	var v T
	md, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		Result:      &v,
		ErrorUnused: c.ErrorUnused,
		DecodeHook:  bind.Hook(),
	})
	if err != nil {
		return zero, codee.DecodeErr(Name, err)
	}
	if err := md.Decode(dyn); err != nil {
		return zero, codee.DecodeErr(Name, err)
	}
	return v, nil
}

func (Bridge[T]) IsBinaryEncoder() bool { return false }
func (Bridge[T]) IsBinaryDecoder() bool { return false }
