// Package compress wraps a binary codec and compresses its output with
// klauspost/compress (zstd, s2 or snappy).
package compress

import (
	"errors"
	"fmt"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"

	"github.com/unkn0wn-root/codee"
)

const Name = "compress"

type Algorithm uint8

const (
	Zstd Algorithm = iota
	S2
	Snappy
)

func (a Algorithm) String() string {
	switch a {
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case Snappy:
		return "snappy"
	}
	return fmt.Sprintf("Algorithm(%d)", uint8(a))
}

const defaultMaxDecodedSize = 64 << 20

var errNoInner = errors.New("compress: no inner codec; construct with New")

type Options struct {
	Algorithm Algorithm
	// Level applies to Zstd only. 0 => zstd.SpeedDefault.
	Level zstd.EncoderLevel
	// MaxDecodedSize bounds the decompressed size. <= 0 => 64 MiB.
	MaxDecodedSize int
}

// Compressed compresses what Inner encodes and decompresses before Inner decodes.
// Construct with New; the zstd encoder/decoder are shared and safe for
// concurrent use. The zero value has no inner codec and fails every call.
type Compressed[T any] struct {
	inner  codee.BinaryCodec[T]
	alg    Algorithm
	maxDec int
	zenc   *zstd.Encoder
	zdec   *zstd.Decoder
}

func New[T any](inner codee.BinaryCodec[T], opts Options) (Compressed[T], error) {
	if inner == nil {
		return Compressed[T]{}, errNoInner
	}
	c := Compressed[T]{
		inner:  inner,
		alg:    opts.Algorithm,
		maxDec: opts.MaxDecodedSize,
	}
	if c.maxDec <= 0 {
		c.maxDec = defaultMaxDecodedSize
	}
	switch opts.Algorithm {
	case Zstd:
		var err error
		c.zenc, err = zstd.NewWriter(nil,
			zstd.WithEncoderLevel(codee.Coalesce(opts.Level, zstd.SpeedDefault)))
		if err != nil {
			return Compressed[T]{}, err
		}
		c.zdec, err = zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(0),
			zstd.WithDecoderMaxMemory(uint64(c.maxDec)))
		if err != nil {
			return Compressed[T]{}, err
		}
	case S2, Snappy:
	default:
		return Compressed[T]{}, fmt.Errorf("compress: unknown algorithm %s", opts.Algorithm)
	}
	return c, nil
}

// Must is like New but panics on error.
func Must[T any](inner codee.BinaryCodec[T], opts Options) Compressed[T] {
	c, err := New(inner, opts)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Compressed[T]) Encode(v T) ([]byte, error) {
	if c.inner == nil {
		return nil, codee.EncodeErr(Name, errNoInner)
	}
	raw, err := c.inner.Encode(v)
	if err != nil {
		return nil, err
	}
	switch c.alg {
	case S2:
		return s2.Encode(nil, raw), nil
	case Snappy:
		return snappy.Encode(nil, raw), nil
	}
	return c.zenc.EncodeAll(raw, make([]byte, 0, len(raw))), nil
}

func (c Compressed[T]) Decode(b []byte) (T, error) {
	var zero T
	if c.inner == nil {
		return zero, codee.DecodeErr(Name, errNoInner)
	}
	raw, err := c.decompress(b)
	if err != nil {
		return zero, codee.DecodeErr(Name+"/"+c.alg.String(), err)
	}
	return c.inner.Decode(raw)
}

func (c Compressed[T]) decompress(b []byte) ([]byte, error) {
	switch c.alg {
	case S2:
		n, err := s2.DecodedLen(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", codee.ErrMalformed, err)
		}
		if n > c.maxDec {
			return nil, fmt.Errorf("%w: decoded size %d > %d", codee.ErrPayloadTooLarge, n, c.maxDec)
		}
		out, err := s2.Decode(nil, b)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", codee.ErrMalformed, err)
		}
		return out, nil
	case Snappy:
		n, err := snappy.DecodedLen(b)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", codee.ErrMalformed, err)
		}
		if n > c.maxDec {
			return nil, fmt.Errorf("%w: decoded size %d > %d", codee.ErrPayloadTooLarge, n, c.maxDec)
		}
		out, err := snappy.Decode(nil, b)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", codee.ErrMalformed, err)
		}
		return out, nil
	}
	out, err := c.zdec.DecodeAll(b, nil)
	switch {
	case errors.Is(err, zstd.ErrDecoderSizeExceeded), errors.Is(err, zstd.ErrWindowSizeExceeded):
		return nil, fmt.Errorf("%w: %w", codee.ErrPayloadTooLarge, err)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", codee.ErrMalformed, err)
	}
	return out, nil
}

func (Compressed[T]) IsBinaryEncoder() bool { return true }
func (Compressed[T]) IsBinaryDecoder() bool { return true }
