package codee

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is the cause when a codec cannot represent the value's type.
	ErrUnsupported = errors.New("codee: unsupported type")
	// ErrMalformed is the cause when input is not well-formed for the format.
	ErrMalformed = errors.New("codee: malformed input")
	// ErrNotImplemented is the cause when a hybrid codec is asked for the other kind.
	ErrNotImplemented = errors.New("codee: not implemented")
	// ErrPayloadTooLarge is the cause when a size limit is exceeded.
	ErrPayloadTooLarge = errors.New("codee: payload too large")
	// ErrVersionMismatch is the cause when a versioned frame cannot be upgraded.
	ErrVersionMismatch = errors.New("codee: version mismatch")
)

// EncodeError wraps the failure of the library behind an encoder.
type EncodeError struct {
	Codec string
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("codee: %s encode: %v", e.Codec, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// DecodeError wraps the failure of the library behind a decoder.
// Malformed, truncated, and semantically invalid input all surface here.
type DecodeError struct {
	Codec string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("codee: %s decode: %v", e.Codec, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeErr tags err as an encode failure of codec. Returns nil for nil err
// and err itself when it already is an *EncodeError.
func EncodeErr(codec string, err error) error {
	if err == nil {
		return nil
	}
	var ee *EncodeError
	if errors.As(err, &ee) {
		return err
	}
	return &EncodeError{Codec: codec, Err: err}
}

// DecodeErr tags err as a decode failure of codec. Returns nil for nil err
// and err itself when it already is a *DecodeError.
func DecodeErr(codec string, err error) error {
	if err == nil {
		return nil
	}
	var de *DecodeError
	if errors.As(err, &de) {
		return err
	}
	return &DecodeError{Codec: codec, Err: err}
}
