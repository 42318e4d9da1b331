package zap

import (
	"go.uber.org/zap"

	"github.com/unkn0wn-root/codee"
)

var _ codee.Logger = ZapLogger{}

// ZapLogger adapts a *zap.Logger. A nil L logs nothing.
type ZapLogger struct{ L *zap.Logger }

func New(l *zap.Logger) ZapLogger {
	if l == nil {
		l = zap.NewNop()
	}
	return ZapLogger{L: l.Named("codee")}
}

func (z ZapLogger) Debug(msg string, f codee.Fields) { z.log().Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f codee.Fields)  { z.log().Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f codee.Fields)  { z.log().Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f codee.Fields) { z.log().Error(msg, zf(f)...) }

func (z ZapLogger) log() *zap.Logger {
	if z.L == nil {
		return zap.NewNop()
	}
	return z.L
}

func zf(f codee.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, v))
	}
	return out
}
