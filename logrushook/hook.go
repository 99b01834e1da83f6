// Package logrushook routes logrus entries through a logger.Logger, so
// libraries that log with logrus end up on the same sinks.
//
//	l := logrus.New()
//	l.SetOutput(io.Discard)
//	l.AddHook(logrushook.New(logger.Init(logger.Config{})))
package logrushook

import (
	"fmt"
	"sort"

	"github.com/mordilloSan/go-sinklog/logger"
	"github.com/sirupsen/logrus"
)

// Hook is a logrus.Hook writing every entry to a logger.Logger.
type Hook struct {
	l *logger.Logger
}

// New returns a Hook writing to l.
func New(l *logger.Logger) *Hook {
	return &Hook{l: l}
}

// Levels implements logrus.Hook.
func (h *Hook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire implements logrus.Hook. The entry message comes first, followed by
// its fields as key=value in key order.
func (h *Hook) Fire(e *logrus.Entry) error {
	level := Level(e.Level)
	values := make([]any, 0, len(e.Data)+1)
	values = append(values, e.Message)
	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		values = append(values, fmt.Sprintf("%s=%v", k, e.Data[k]))
	}
	return h.l.Log(level, level.DefaultScope(), values...)
}

// Level maps a logrus level to a logger level.
func Level(l logrus.Level) logger.Level {
	switch l {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return logger.ErrorLevel
	case logrus.WarnLevel:
		return logger.WarnLevel
	}
	return logger.InfoLevel
}
