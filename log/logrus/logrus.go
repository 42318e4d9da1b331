package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/codee"
)

var _ codee.Logger = LogrusLogger{}

// LogrusLogger adapts a *logrus.Entry. Error values in Fields go under
// logrus.ErrorKey when their key is "err".
type LogrusLogger struct{ E *logrus.Entry }

func New(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{E: logrus.NewEntry(l).WithField("component", "codee")}
}

func (l LogrusLogger) Debug(msg string, f codee.Fields) { l.with(f).Debug(msg) }
func (l LogrusLogger) Info(msg string, f codee.Fields)  { l.with(f).Info(msg) }
func (l LogrusLogger) Warn(msg string, f codee.Fields)  { l.with(f).Warn(msg) }
func (l LogrusLogger) Error(msg string, f codee.Fields) { l.with(f).Error(msg) }

func (l LogrusLogger) with(f codee.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	lf := make(logrus.Fields, len(f))
	for k, v := range f {
		if k == "err" {
			k = logrus.ErrorKey
		}
		lf[k] = v
	}
	return l.E.WithFields(lf)
}
