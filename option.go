package codee

import (
	"fmt"
	"strings"
)

// OptionName tags errors produced by the Option adapter itself.
const OptionName = "option"

const (
	optionSome = "~<|Some|>~"
	optionNone = "~<|None|>~"

	optionTagNone byte = 0
	optionTagSome byte = 1
)

// Option wraps a codec for T into a codec for *T where nil is a value of its own.
//
// Text form:   nil -> "~<|None|>~", v -> "~<|Some|>~" + Inner(v)
// Binary form: nil -> 0x00,         v -> 0x01 + Inner(v)
type Option[T any, R Repr] struct {
	Inner Codec[T, R]
}

func (c Option[T, R]) Encode(v *T) (R, error) {
	binary := IsBinary[R]()
	if v == nil {
		if binary {
			return R([]byte{optionTagNone}), nil
		}
		return R(optionNone), nil
	}
	inner, err := c.Inner.Encode(*v)
	if err != nil {
		var zero R
		return zero, err
	}
	if binary {
		out := make([]byte, 0, 1+len(inner))
		out = append(out, optionTagSome)
		out = append(out, []byte(inner)...)
		return R(out), nil
	}
	return R(optionSome + string(inner)), nil
}

func (c Option[T, R]) Decode(r R) (*T, error) {
	if IsBinary[R]() {
		b := []byte(r)
		switch {
		case len(b) == 1 && b[0] == optionTagNone:
			return nil, nil
		case len(b) >= 1 && b[0] == optionTagSome:
			return c.some(R(b[1:]))
		}
		return nil, DecodeErr(OptionName, fmt.Errorf("%w: missing option tag", ErrMalformed))
	}

	s := string(r)
	if s == optionNone {
		return nil, nil
	}
	if rest, ok := strings.CutPrefix(s, optionSome); ok {
		return c.some(R(rest))
	}
	return nil, DecodeErr(OptionName, fmt.Errorf("%w: missing option marker", ErrMalformed))
}

func (c Option[T, R]) some(r R) (*T, error) {
	v, err := c.Inner.Decode(r)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (c Option[T, R]) IsBinaryEncoder() bool { return IsBinary[R]() }
func (c Option[T, R]) IsBinaryDecoder() bool { return IsBinary[R]() }
