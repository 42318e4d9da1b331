package slog

import (
	"context"
	stdslog "log/slog"
	"sort"

	"github.com/unkn0wn-root/codee"
)

var _ codee.Logger = Logger{}

// Logger adapts a *slog.Logger. Attributes are emitted in key order so output
// is stable across runs.
type Logger struct{ L *stdslog.Logger }

func (s Logger) Debug(msg string, f codee.Fields) { s.log(stdslog.LevelDebug, msg, f) }
func (s Logger) Info(msg string, f codee.Fields)  { s.log(stdslog.LevelInfo, msg, f) }
func (s Logger) Warn(msg string, f codee.Fields)  { s.log(stdslog.LevelWarn, msg, f) }
func (s Logger) Error(msg string, f codee.Fields) { s.log(stdslog.LevelError, msg, f) }

func (s Logger) log(level stdslog.Level, msg string, f codee.Fields) {
	l := s.L
	if l == nil {
		l = stdslog.Default()
	}
	l.LogAttrs(context.Background(), level, msg, attrs(f)...)
}

func attrs(f codee.Fields) []stdslog.Attr {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]stdslog.Attr, 0, len(f))
	for _, k := range keys {
		out = append(out, stdslog.Any(k, f[k]))
	}
	return out
}
