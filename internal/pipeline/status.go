package pipeline

import "github.com/sirupsen/logrus"

// StatusSink receives leveled operator-facing messages. The UI status panel
// implements it; LogSink adapts it onto the application logger.
type StatusSink interface {
	Info(msg string)
	Success(msg string)
	Warning(msg string)
	Error(msg string)
}

// LogSink routes status messages to a logrus logger.
type LogSink struct {
	Log *logrus.Logger
}

func (s LogSink) Info(msg string)    { s.Log.Info(msg) }
func (s LogSink) Success(msg string) { s.Log.Info(msg) }
func (s LogSink) Warning(msg string) { s.Log.Warn(msg) }
func (s LogSink) Error(msg string)   { s.Log.Error(msg) }

// MultiSink fans one message out to several sinks.
type MultiSink []StatusSink

func (m MultiSink) Info(msg string) {
	for _, s := range m {
		s.Info(msg)
	}
}

func (m MultiSink) Success(msg string) {
	for _, s := range m {
		s.Success(msg)
	}
}

func (m MultiSink) Warning(msg string) {
	for _, s := range m {
		s.Warning(msg)
	}
}

func (m MultiSink) Error(msg string) {
	for _, s := range m {
		s.Error(msg)
	}
}
