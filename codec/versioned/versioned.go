// Package versioned frames a binary codec's output with a schema version so
// payloads written by older releases can be recognized and upgraded.
//
// Bare codecs decode whatever the library accepts and do not ask who produced
// the input. Versioned is the opt-in for data that outlives the code:
//
//	c := versioned.New[Settings](msgpackcodec.Msgpack[Settings]{}, versioned.Options{
//	    Version: 2,
//	    Upgrade: func(from uint16, p []byte) ([]byte, error) {
//	        // rewrite a v1 payload into the v2 shape
//	    },
//	})
package versioned

import (
	"fmt"

	"github.com/unkn0wn-root/codee"
	"github.com/unkn0wn-root/codee/internal/wire"
)

const Name = "versioned"

// UpgradeFunc rewrites a payload written at version from into the current shape.
type UpgradeFunc func(from uint16, payload []byte) ([]byte, error)

type Options struct {
	// Version stamped on every encoded frame.
	Version uint16
	// Upgrade handles frames of any other version. nil => such frames fail
	// with codee.ErrVersionMismatch.
	Upgrade UpgradeFunc
	Hooks   codee.Hooks
}

type Versioned[T any] struct {
	inner   codee.BinaryCodec[T]
	version uint16
	upgrade UpgradeFunc
	hooks   codee.Hooks
}

func New[T any](inner codee.BinaryCodec[T], opts Options) Versioned[T] {
	return Versioned[T]{
		inner:   inner,
		version: opts.Version,
		upgrade: opts.Upgrade,
		hooks:   codee.Coalesce[codee.Hooks](opts.Hooks, codee.NopHooks{}),
	}
}

func (c Versioned[T]) Version() uint16 { return c.version }

func (c Versioned[T]) Encode(v T) ([]byte, error) {
	payload, err := c.inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return wire.EncodeFrame(c.version, payload), nil
}

func (c Versioned[T]) Decode(b []byte) (T, error) {
	var zero T
	ver, payload, err := wire.DecodeFrame(b)
	if err != nil {
		return zero, codee.DecodeErr(Name, fmt.Errorf("%w: %w", codee.ErrMalformed, err))
	}
	if ver != c.version {
		c.hooks.VersionMismatch(Name, ver, c.version)
		if c.upgrade == nil {
			return zero, codee.DecodeErr(Name, fmt.Errorf("%w: got %d, want %d", codee.ErrVersionMismatch, ver, c.version))
		}
		if payload, err = c.upgrade(ver, payload); err != nil {
			return zero, codee.DecodeErr(Name, fmt.Errorf("upgrade from %d: %w", ver, err))
		}
	}
	return c.inner.Decode(payload)
}

func (Versioned[T]) IsBinaryEncoder() bool { return true }
func (Versioned[T]) IsBinaryDecoder() bool { return true }
