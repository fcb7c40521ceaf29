package pego

import "github.com/sirupsen/logrus"

// Tracer is notified of node invocations during a match (spec §6). All
// three hooks are optional no-ops by default; a nil Tracer is never called.
type Tracer interface {
	Enter(label string, opts *Options)
	Match(label string, opts *Options, m *Match)
	Fail(label string, opts *Options)
}

func trace(t Tracer, label string, opts *Options) func(*Match) {
	if t == nil {
		return func(*Match) {}
	}
	t.Enter(label, opts)
	return func(m *Match) {
		if m != nil {
			t.Match(label, opts, m)
		} else {
			t.Fail(label, opts)
		}
	}
}

// LogrusTracer is the engine's default structured Tracer, emitting one
// logrus entry when a node is entered and one for its outcome.
type LogrusTracer struct {
	Log *logrus.Logger
}

// NewLogrusTracer builds a LogrusTracer over logrus's standard logger.
func NewLogrusTracer() *LogrusTracer {
	return &LogrusTracer{Log: logrus.StandardLogger()}
}

func (t *LogrusTracer) Enter(label string, opts *Options) {
	t.Log.WithFields(logrus.Fields{
		"rule": label,
		"from": opts.From,
	}).Debug("enter")
}

func (t *LogrusTracer) Match(label string, opts *Options, m *Match) {
	t.Log.WithFields(logrus.Fields{
		"rule": label,
		"from": m.From,
		"to":   m.To,
	}).Debug("match")
}

func (t *LogrusTracer) Fail(label string, opts *Options) {
	t.Log.WithFields(logrus.Fields{
		"rule": label,
		"from": opts.From,
	}).Debug("fail")
}
