package log

// MultiLogger fans one event stream out to several sinks, typically a
// console slog bridge during development alongside the binary trace file.
type MultiLogger struct {
	sinks []Logger
}

// NewMultiLogger builds a fan-out logger. Nil sinks are dropped, so
// optional destinations can be passed without guarding.
func NewMultiLogger(sinks ...Logger) *MultiLogger {
	kept := make([]Logger, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			kept = append(kept, s)
		}
	}
	return &MultiLogger{sinks: kept}
}

// Log hands the event to every sink in registration order.
func (m *MultiLogger) Log(event Event) {
	for _, s := range m.sinks {
		s.Log(event)
	}
}

var _ Logger = (*MultiLogger)(nil)
