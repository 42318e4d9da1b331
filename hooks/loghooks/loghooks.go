// Package loghooks reports codec failures through a codee.Logger, so any of
// the log/* adapters (zap, logrus, slog) can receive them.
package loghooks

import (
	"sync/atomic"

	"github.com/unkn0wn-root/codee"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	EncodeFailedEvery uint64
	DecodeFailedEvery uint64
}

type Hooks struct {
	l    codee.Logger
	opts Options

	encodeCtr atomic.Uint64
	decodeCtr atomic.Uint64
}

var _ codee.Hooks = (*Hooks)(nil)

func New(l codee.Logger, opts Options) *Hooks {
	return &Hooks{l: codee.Coalesce[codee.Logger](l, codee.NopLogger{}), opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) EncodeFailed(codec string, err error) {
	if !sample(h.opts.EncodeFailedEvery, &h.encodeCtr) {
		return
	}
	h.l.Warn("codee.encode_failed", codee.Fields{
		"codec": codec,
		"err":   err,
	})
}

func (h *Hooks) DecodeFailed(codec string, size int, err error) {
	if !sample(h.opts.DecodeFailedEvery, &h.decodeCtr) {
		return
	}
	h.l.Warn("codee.decode_failed", codee.Fields{
		"codec": codec,
		"size":  size,
		"err":   err,
	})
}

func (h *Hooks) PayloadRejected(codec string, size, limit int) {
	h.l.Warn("codee.payload_rejected", codee.Fields{
		"codec": codec,
		"size":  size,
		"limit": limit,
	})
}

func (h *Hooks) VersionMismatch(codec string, got, want uint16) {
	h.l.Info("codee.version_mismatch", codee.Fields{
		"codec": codec,
		"got":   got,
		"want":  want,
	})
}
