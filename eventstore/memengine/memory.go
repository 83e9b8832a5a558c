package memengine

import (
	"context"
	"slices"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/librarydesk/lendingdesk/eventstore"
)

const (
	logMsgQueryCompleted      = "query completed"
	logMsgEventsAppended      = "events appended"
	logMsgConcurrencyConflict = "concurrency conflict detected"
	logMsgContextDone         = "operation canceled"
	logMsgOperation           = "eventstore operation: "
	logAttrError              = "error"
	logAttrEventType          = "event_type"
	logAttrEventCount         = "event_count"
	logAttrDurationMS         = "duration_ms"
	logAttrExpectedSequence   = "expected_sequence"
	logAttrActualSequence     = "actual_sequence"
)

// EventStore is the in-memory session journal.
// The zero value is not usable; create it with NewEventStore.
type EventStore struct {
	mu               *sync.RWMutex
	events           *eventstore.StorableEvents
	logger           eventstore.Logger
	contextualLogger eventstore.ContextualLogger
	metricsCollector eventstore.MetricsCollector
	tracingCollector eventstore.TracingCollector
}

// NewEventStore creates an empty EventStore with optional configuration.
func NewEventStore(options ...Option) (EventStore, error) {
	es := EventStore{
		mu:     &sync.RWMutex{},
		events: &eventstore.StorableEvents{},
	}

	for _, option := range options {
		if err := option(&es); err != nil {
			return EventStore{}, err
		}
	}

	return es, nil
}

// Query returns the events selected by filter in append order,
// as well as the MaxSequenceNumberUint of this "dynamic event stream" at the time of the query.
func (es EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {

	start := time.Now()
	ctx, span := es.startSpan(ctx, spanNameQuery, map[string]string{spanAttrOperation: operationQuery})

	if err := ctx.Err(); err != nil {
		es.logError(ctx, logMsgContextDone, err)
		es.recordError(ctx, operationQuery, errorTypeCanceled, time.Since(start))
		es.finishSpan(span, statusError, map[string]string{spanAttrErrorType: errorTypeCanceled})

		return nil, 0, err
	}

	es.mu.RLock()
	eventStream, maxSequenceNumber := es.matching(filter)
	es.mu.RUnlock()

	duration := time.Since(start)
	es.logOperation(ctx, logMsgQueryCompleted,
		logAttrEventCount, len(eventStream),
		logAttrDurationMS, toMilliseconds(duration))
	es.recordSuccess(ctx, operationQuery, metricQueryDuration, metricEventsQueried, len(eventStream), duration)
	es.finishSpan(span, statusSuccess, map[string]string{
		spanAttrEventCount:  itoa(len(eventStream)),
		spanAttrMaxSequence: itoa(int(maxSequenceNumber)),
	})

	return eventStream, maxSequenceNumber, nil
}

// Append appends one or multiple eventstore.StorableEvent(s) atomically, provided that no event
// matching filter was appended since the Query that returned expectedMaxSequenceNumber.
//
// The filter should be the same as the one used for the Query before making the business decisions.
// Appended events get consecutive sequence numbers starting after the journal's current maximum.
func (es EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {

	start := time.Now()
	allEvents := append(eventstore.StorableEvents{event}, additionalEvents...)

	ctx, span := es.startSpan(ctx, spanNameAppend, map[string]string{
		spanAttrOperation:   operationAppend,
		spanAttrEventCount:  itoa(len(allEvents)),
		spanAttrEventType:   event.EventType,
		spanAttrExpectedSeq: itoa(int(expectedMaxSequenceNumber)),
	})

	if err := ctx.Err(); err != nil {
		es.logError(ctx, logMsgContextDone, err)
		es.recordError(ctx, operationAppend, errorTypeCanceled, time.Since(start))
		es.finishSpan(span, statusError, map[string]string{spanAttrErrorType: errorTypeCanceled})

		return err
	}

	for _, e := range allEvents {
		if e.EventType == "" {
			es.logError(ctx, logMsgOperation+operationAppend, eventstore.ErrEmptyEventType)
			es.recordError(ctx, operationAppend, errorTypeInvalidEvent, time.Since(start))
			es.finishSpan(span, statusError, map[string]string{spanAttrErrorType: errorTypeInvalidEvent})

			return eventstore.ErrEmptyEventType
		}
	}

	es.mu.Lock()
	defer es.mu.Unlock()

	if _, actualMaxSequenceNumber := es.matching(filter); actualMaxSequenceNumber != expectedMaxSequenceNumber {
		es.logOperation(ctx, logMsgConcurrencyConflict,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
			logAttrActualSequence, actualMaxSequenceNumber)
		es.recordConcurrencyConflict(ctx, time.Since(start))
		es.finishSpan(span, statusError, map[string]string{spanAttrErrorType: errorTypeConcurrencyConflict})

		return eventstore.ErrConcurrencyConflict
	}

	next := uint(len(*es.events))
	for _, e := range allEvents {
		next++
		e.SequenceNumber = next
		e.PayloadJSON = slices.Clone(e.PayloadJSON)
		e.MetadataJSON = slices.Clone(e.MetadataJSON)
		*es.events = append(*es.events, e)
	}

	duration := time.Since(start)
	es.logOperation(ctx, logMsgEventsAppended,
		logAttrEventCount, len(allEvents),
		logAttrEventType, event.EventType,
		logAttrDurationMS, toMilliseconds(duration))
	es.recordSuccess(ctx, operationAppend, metricAppendDuration, metricEventsAppended, len(allEvents), duration)
	es.finishSpan(span, statusSuccess, map[string]string{spanAttrEventCount: itoa(len(allEvents))})

	return nil
}

// Len returns the number of events in the journal.
func (es EventStore) Len() int {
	es.mu.RLock()
	defer es.mu.RUnlock()

	return len(*es.events)
}

// matching must be called while holding at least the read lock.
func (es EventStore) matching(filter eventstore.Filter) (eventstore.StorableEvents, eventstore.MaxSequenceNumberUint) {
	eventStream := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for _, e := range *es.events {
		if !filter.Matches(e.EventType, payloadField(e.PayloadJSON)) {
			continue
		}

		eventStream = append(eventStream, e)
		maxSequenceNumber = e.SequenceNumber
	}

	return eventStream, maxSequenceNumber
}

// payloadField looks up top-level string and number fields of a JSON payload.
func payloadField(payloadJSON []byte) func(key string) (string, bool) {
	return func(key string) (string, bool) {
		field := jsoniter.Get(payloadJSON, key)

		switch field.ValueType() {
		case jsoniter.StringValue, jsoniter.NumberValue, jsoniter.BoolValue:
			return field.ToString(), true
		default:
			return "", false
		}
	}
}
