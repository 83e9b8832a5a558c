package testdoubles

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

// LogProcessorSpy is an OpenTelemetry log processor that captures emitted records for testing.
type LogProcessorSpy struct {
	mu      sync.Mutex
	records []sdklog.Record
}

// NewLogProcessorSpy creates a new LogProcessorSpy.
func NewLogProcessorSpy() *LogProcessorSpy {
	return &LogProcessorSpy{}
}

// OnEmit implements sdklog.Processor.
func (s *LogProcessorSpy) OnEmit(_ context.Context, record *sdklog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record.Clone())

	return nil
}

// Shutdown implements sdklog.Processor.
func (s *LogProcessorSpy) Shutdown(context.Context) error { return nil }

// ForceFlush implements sdklog.Processor.
func (s *LogProcessorSpy) ForceFlush(context.Context) error { return nil }

// HasRecord reports whether a record with the given severity and body was emitted.
func (s *LogProcessorSpy) HasRecord(severity log.Severity, body string) bool {
	_, found := s.find(severity, body)
	return found
}

// AttrValue returns the value of the attribute key on the first record with the given body.
func (s *LogProcessorSpy) AttrValue(body string, key string) (string, bool) {
	record, found := s.find(0, body)
	if !found {
		return "", false
	}

	var value string
	var ok bool
	record.WalkAttributes(func(kv log.KeyValue) bool {
		if kv.Key == key {
			value, ok = kv.Value.AsString(), true
			return false
		}

		return true
	})

	return value, ok
}

// RecordCount returns the number of captured records.
func (s *LogProcessorSpy) RecordCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.records)
}

// find matches on body and, unless severity is zero, on severity.
func (s *LogProcessorSpy) find(severity log.Severity, body string) (sdklog.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, record := range s.records {
		if record.Body().AsString() != body {
			continue
		}

		if severity != 0 && record.Severity() != severity {
			continue
		}

		return record, true
	}

	return sdklog.Record{}, false
}

var _ sdklog.Processor = (*LogProcessorSpy)(nil)
