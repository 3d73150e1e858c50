package log

// Logger receives one Event per protocol round-trip half: the outgoing
// poll or write, and the response or failure that answers it.
type Logger interface {
	// Log records a protocol event. Log is called synchronously on the
	// device's round-trip path and from whichever goroutine drives it, so
	// implementations must be safe for concurrent use and return quickly.
	Log(event Event)
}

// NoopLogger discards every event. It is the logger a Device starts with
// before WithLogger installs a real one; the zero value is ready to use.
type NoopLogger struct{}

// Log implements Logger by dropping the event.
func (NoopLogger) Log(Event) {}

var _ Logger = NoopLogger{}
