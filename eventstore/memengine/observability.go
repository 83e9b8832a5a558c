package memengine

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/librarydesk/lendingdesk/eventstore"
)

const (
	metricQueryDuration        = "eventstore_query_duration_seconds"
	metricAppendDuration       = "eventstore_append_duration_seconds"
	metricEventsQueried        = "eventstore_events_queried_total"
	metricEventsAppended       = "eventstore_events_appended_total"
	metricConcurrencyConflicts = "eventstore_concurrency_conflicts_total"
	metricOperationErrors      = "eventstore_operation_errors_total"

	spanNameQuery  = "eventstore.query"
	spanNameAppend = "eventstore.append"

	spanAttrOperation   = "operation"
	spanAttrEventCount  = "event_count"
	spanAttrEventType   = "event_type"
	spanAttrExpectedSeq = "expected_sequence"
	spanAttrMaxSequence = "max_sequence"
	spanAttrErrorType   = "error_type"

	labelStatus       = "status"
	labelConflictType = "conflict_type"

	operationQuery  = "query"
	operationAppend = "append"

	statusSuccess = "success"
	statusError   = "error"

	errorTypeCanceled            = "context_done"
	errorTypeInvalidEvent        = "invalid_event"
	errorTypeConcurrencyConflict = "concurrency_conflict"
)

func (es EventStore) logOperation(ctx context.Context, action string, args ...any) {
	if es.contextualLogger != nil {
		es.contextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
		return
	}

	if es.logger != nil {
		es.logger.Info(logMsgOperation+action, args...)
	}
}

func (es EventStore) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := append([]any{logAttrError, err.Error()}, args...)

	if es.contextualLogger != nil {
		es.contextualLogger.ErrorContext(ctx, message, allArgs...)
		return
	}

	if es.logger != nil {
		es.logger.Error(message, allArgs...)
	}
}

func (es EventStore) recordSuccess(
	ctx context.Context,
	operation string,
	durationMetric string,
	countMetric string,
	eventCount int,
	duration time.Duration,
) {

	labels := map[string]string{spanAttrOperation: operation, labelStatus: statusSuccess}
	es.recordDuration(ctx, durationMetric, duration, labels)
	es.recordValue(ctx, countMetric, float64(eventCount), labels)
}

func (es EventStore) recordError(ctx context.Context, operation, errorType string, duration time.Duration) {
	durationMetric := metricQueryDuration
	if operation == operationAppend {
		durationMetric = metricAppendDuration
	}

	es.recordDuration(ctx, durationMetric, duration, map[string]string{spanAttrOperation: operation, labelStatus: statusError})
	es.incrementCounter(ctx, metricOperationErrors, map[string]string{
		spanAttrOperation: operation,
		labelStatus:       statusError,
		spanAttrErrorType: errorType,
	})
}

func (es EventStore) recordConcurrencyConflict(ctx context.Context, duration time.Duration) {
	es.recordDuration(ctx, metricAppendDuration, duration, map[string]string{
		spanAttrOperation: operationAppend,
		labelStatus:       statusError,
	})
	es.incrementCounter(ctx, metricConcurrencyConflicts, map[string]string{
		spanAttrOperation: operationAppend,
		labelConflictType: "concurrency",
	})
}

// The context-aware methods are used when the collector supports them.

func (es EventStore) recordDuration(ctx context.Context, metric string, duration time.Duration, labels map[string]string) {
	if es.metricsCollector == nil {
		return
	}

	if contextual, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(ctx, metric, duration, labels)
		return
	}

	es.metricsCollector.RecordDuration(metric, duration, labels)
}

func (es EventStore) recordValue(ctx context.Context, metric string, value float64, labels map[string]string) {
	if es.metricsCollector == nil {
		return
	}

	if contextual, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextual.RecordValueContext(ctx, metric, value, labels)
		return
	}

	es.metricsCollector.RecordValue(metric, value, labels)
}

func (es EventStore) incrementCounter(ctx context.Context, metric string, labels map[string]string) {
	if es.metricsCollector == nil {
		return
	}

	if contextual, ok := es.metricsCollector.(eventstore.ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(ctx, metric, labels)
		return
	}

	es.metricsCollector.IncrementCounter(metric, labels)
}

func (es EventStore) startSpan(
	ctx context.Context,
	name string,
	attrs map[string]string,
) (context.Context, eventstore.SpanContext) {

	if es.tracingCollector == nil {
		return ctx, nil
	}

	return es.tracingCollector.StartSpan(ctx, name, attrs)
}

func (es EventStore) finishSpan(span eventstore.SpanContext, status string, attrs map[string]string) {
	if es.tracingCollector == nil || span == nil {
		return
	}

	es.tracingCollector.FinishSpan(span, status, attrs)
}

// toMilliseconds converts a time.Duration to float64 milliseconds with 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
