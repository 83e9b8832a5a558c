package testdoubles

import (
	"context"
	"log/slog"
	"os"
	"sync"
)

// LogHandlerSpy is a slog.Handler that captures log records for testing.
type LogHandlerSpy struct {
	records     *[]slog.Record
	attrs       []slog.Attr
	mu          *sync.Mutex
	logToStdout bool
}

// NewLogHandlerSpy creates a new LogHandlerSpy.
// Switchable to also log to stdout, useful when debugging a test.
func NewLogHandlerSpy(logToStdout bool) *LogHandlerSpy {
	return &LogHandlerSpy{
		records:     &[]slog.Record{},
		mu:          &sync.Mutex{},
		logToStdout: logToStdout,
	}
}

// Handle implements slog.Handler.
func (s *LogHandlerSpy) Handle(ctx context.Context, record slog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record = record.Clone()
	record.AddAttrs(s.attrs...)
	*s.records = append(*s.records, record)

	if s.logToStdout {
		_ = slog.NewJSONHandler(os.Stdout, nil).Handle(ctx, record)
	}

	return nil
}

// Enabled implements slog.Handler.
func (s *LogHandlerSpy) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs implements slog.Handler. The derived handler shares the captured records.
func (s *LogHandlerSpy) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := *s
	derived.attrs = append(append([]slog.Attr{}, s.attrs...), attrs...)

	return &derived
}

// WithGroup implements slog.Handler. Groups are ignored.
func (s *LogHandlerSpy) WithGroup(_ string) slog.Handler {
	return s
}

// GetRecords returns a copy of all captured log records.
func (s *LogHandlerSpy) GetRecords() []slog.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]slog.Record, len(*s.records))
	copy(records, *s.records)

	return records
}

// HasRecord reports whether a record with the given level and message was captured.
func (s *LogHandlerSpy) HasRecord(level slog.Level, message string) bool {
	for _, record := range s.GetRecords() {
		if record.Level == level && record.Message == message {
			return true
		}
	}

	return false
}

// AttrValue returns the value of the first attribute with key on the first record with message.
func (s *LogHandlerSpy) AttrValue(message, key string) (slog.Value, bool) {
	for _, record := range s.GetRecords() {
		if record.Message != message {
			continue
		}

		var found slog.Value
		ok := false
		record.Attrs(func(a slog.Attr) bool {
			if a.Key == key {
				found, ok = a.Value, true
				return false
			}

			return true
		})

		return found, ok
	}

	return slog.Value{}, false
}

// Reset clears all captured log records.
func (s *LogHandlerSpy) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	*s.records = (*s.records)[:0]
}
