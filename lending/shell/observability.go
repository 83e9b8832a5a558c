package shell

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/librarydesk/lendingdesk/eventstore"
)

const (
	// CommandHandlerDurationMetric tracks command handler execution duration.
	CommandHandlerDurationMetric = "lending_command_duration_seconds"

	// CommandHandlerCallsMetric tracks total command handler calls.
	CommandHandlerCallsMetric = "lending_command_calls_total"

	// CommandHandlerRejectionsMetric tracks commands refused by a lending rule, labeled by error_type.
	CommandHandlerRejectionsMetric = "lending_command_rejections_total"

	// QueryHandlerDurationMetric tracks query handler execution duration.
	QueryHandlerDurationMetric = "lending_query_duration_seconds"

	// QueryHandlerCallsMetric tracks total query handler calls.
	QueryHandlerCallsMetric = "lending_query_calls_total"

	// QueryHandlerResultSizeMetric records the number of entries a query returned.
	QueryHandlerResultSizeMetric = "lending_query_result_size"

	// StatusSuccess indicates successful completion.
	StatusSuccess = "success"

	// StatusRejected indicates a lending rule refused the command.
	StatusRejected = "rejected"

	// StatusError indicates an infrastructure error.
	StatusError = "error"

	// StatusCanceled indicates the operation was canceled due to context cancellation.
	StatusCanceled = "canceled"

	// StatusTimeout indicates the operation timed out due to context deadline exceeded.
	StatusTimeout = "timeout"

	// StatusConcurrencyConflict indicates the journal rejected the append.
	StatusConcurrencyConflict = "concurrency_conflict"

	LogMsgCommandStarted   = "command handler started"
	LogMsgCommandCompleted = "command handler completed"
	LogMsgCommandRejected  = "command handler rejected"
	LogMsgCommandFailed    = "command handler failed"
	LogMsgQueryStarted     = "query handler started"
	LogMsgQueryCompleted   = "query handler completed"
	LogMsgQueryFailed      = "query handler failed"

	LogAttrCommandType     = "command_type"
	LogAttrQueryType       = "query_type"
	LogAttrStatus          = "status"
	LogAttrErrorType       = "error_type"
	LogAttrDurationMS      = "duration_ms"
	LogAttrJournaledEvents = "journaled_events"
	LogAttrResultCount     = "result_count"
	LogAttrError           = "error"

	// SpanNameCommandHandle is the tracing span name prefix for command handling.
	SpanNameCommandHandle = "lending.command."

	// SpanNameQueryHandle is the tracing span name prefix for query handling.
	SpanNameQueryHandle = "lending.query."
)

// MetricsCollector interface for collecting handler metrics.
type MetricsCollector = eventstore.MetricsCollector

// ContextualMetricsCollector extends MetricsCollector with context-aware methods.
type ContextualMetricsCollector = eventstore.ContextualMetricsCollector

// TracingCollector interface for tracing handlers.
type TracingCollector = eventstore.TracingCollector

// SpanContext represents an active tracing span.
type SpanContext = eventstore.SpanContext

// ContextualLogger interface for context-aware logging in handlers.
type ContextualLogger = eventstore.ContextualLogger

// Logger interface for basic logging in handlers.
type Logger = eventstore.Logger

// StatusFor maps a handler error to the status label.
func StatusFor(err error) string {
	switch {
	case err == nil:
		return StatusSuccess
	case IsRejection(err):
		return StatusRejected
	case IsCancellationError(err):
		return StatusCanceled
	case IsTimeoutError(err):
		return StatusTimeout
	case IsConcurrencyConflictError(err):
		return StatusConcurrencyConflict
	default:
		return StatusError
	}
}

// BuildCommandLabels creates standard metric labels for command handler operations.
func BuildCommandLabels(commandType, status string) map[string]string {
	return map[string]string{
		LogAttrCommandType: commandType,
		LogAttrStatus:      status,
	}
}

// BuildQueryLabels creates standard metric labels for query handler operations.
func BuildQueryLabels(queryType, status string) map[string]string {
	return map[string]string{
		LogAttrQueryType: queryType,
		LogAttrStatus:    status,
	}
}

// ToMilliseconds converts a time.Duration to float64 milliseconds.
func ToMilliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// RecordCommandMetrics records duration and call count of a command, and the rejection counter for refused commands.
func RecordCommandMetrics(
	ctx context.Context,
	collector MetricsCollector,
	commandType string,
	err error,
	duration time.Duration,
) {

	if collector == nil {
		return
	}

	status := StatusFor(err)
	labels := BuildCommandLabels(commandType, status)

	recordDuration(ctx, collector, CommandHandlerDurationMetric, duration, labels)
	incrementCounter(ctx, collector, CommandHandlerCallsMetric, labels)

	if status == StatusRejected {
		rejectionLabels := BuildCommandLabels(commandType, status)
		rejectionLabels[LogAttrErrorType] = ClassifyError(err)
		incrementCounter(ctx, collector, CommandHandlerRejectionsMetric, rejectionLabels)
	}
}

// RecordQueryMetrics records duration and call count of a query, and its result size on success.
func RecordQueryMetrics(
	ctx context.Context,
	collector MetricsCollector,
	queryType string,
	err error,
	duration time.Duration,
	resultCount int,
) {

	if collector == nil {
		return
	}

	labels := BuildQueryLabels(queryType, StatusFor(err))

	recordDuration(ctx, collector, QueryHandlerDurationMetric, duration, labels)
	incrementCounter(ctx, collector, QueryHandlerCallsMetric, labels)

	if err == nil {
		recordValue(ctx, collector, QueryHandlerResultSizeMetric, float64(resultCount), labels)
	}
}

// StartCommandSpan starts a span named after the command type.
// Returns the original context and nil if tracing is disabled.
func StartCommandSpan(
	ctx context.Context,
	tracingCollector TracingCollector,
	commandType string,
) (context.Context, SpanContext) {

	if tracingCollector == nil {
		return ctx, nil
	}

	return tracingCollector.StartSpan(ctx, SpanNameCommandHandle+commandType, map[string]string{
		LogAttrCommandType: commandType,
	})
}

// StartQuerySpan starts a span named after the query type.
// Returns the original context and nil if tracing is disabled.
func StartQuerySpan(
	ctx context.Context,
	tracingCollector TracingCollector,
	queryType string,
) (context.Context, SpanContext) {

	if tracingCollector == nil {
		return ctx, nil
	}

	return tracingCollector.StartSpan(ctx, SpanNameQueryHandle+queryType, map[string]string{
		LogAttrQueryType: queryType,
	})
}

// FinishSpan completes a span with the outcome of err.
func FinishSpan(
	tracingCollector TracingCollector,
	span SpanContext,
	err error,
	duration time.Duration,
	extraAttrs map[string]string,
) {

	if tracingCollector == nil || span == nil {
		return
	}

	status := StatusFor(err)
	attrs := map[string]string{
		LogAttrStatus:     status,
		LogAttrDurationMS: fmt.Sprintf("%.2f", ToMilliseconds(duration)),
	}

	for key, value := range extraAttrs {
		attrs[key] = value
	}

	if err != nil {
		attrs[LogAttrError] = err.Error()
		attrs[LogAttrErrorType] = ClassifyError(err)
	}

	tracingCollector.FinishSpan(span, status, attrs)
}

// LogCommandStart logs the beginning of command processing.
func LogCommandStart(ctx context.Context, logger Logger, contextualLogger ContextualLogger, commandType string) {
	logInfo(ctx, logger, contextualLogger, LogMsgCommandStarted, LogAttrCommandType, commandType)
}

// LogCommandOutcome logs the end of command processing.
// Rejections are logged at info level; they are expected outcomes, not failures of the desk.
func LogCommandOutcome(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	commandType string,
	result HandlerResult,
	err error,
	duration time.Duration,
) {

	args := []any{
		LogAttrCommandType, commandType,
		LogAttrStatus, StatusFor(err),
		LogAttrJournaledEvents, result.JournaledEvents,
		LogAttrDurationMS, ToMilliseconds(duration),
	}

	switch {
	case err == nil:
		logInfo(ctx, logger, contextualLogger, LogMsgCommandCompleted, args...)
	case IsRejection(err):
		args = append(args, LogAttrErrorType, ClassifyError(err), LogAttrError, err.Error())
		logInfo(ctx, logger, contextualLogger, LogMsgCommandRejected, args...)
	default:
		args = append(args, LogAttrErrorType, ClassifyError(err), LogAttrError, err.Error())
		logError(ctx, logger, contextualLogger, LogMsgCommandFailed, args...)
	}
}

// LogQueryStart logs the beginning of query processing.
func LogQueryStart(ctx context.Context, logger Logger, contextualLogger ContextualLogger, queryType string) {
	logInfo(ctx, logger, contextualLogger, LogMsgQueryStarted, LogAttrQueryType, queryType)
}

// LogQueryOutcome logs the end of query processing.
func LogQueryOutcome(
	ctx context.Context,
	logger Logger,
	contextualLogger ContextualLogger,
	queryType string,
	resultCount int,
	err error,
	duration time.Duration,
) {

	if err != nil {
		logError(ctx, logger, contextualLogger, LogMsgQueryFailed,
			LogAttrQueryType, queryType,
			LogAttrErrorType, ClassifyError(err),
			LogAttrError, err.Error())

		return
	}

	logInfo(ctx, logger, contextualLogger, LogMsgQueryCompleted,
		LogAttrQueryType, queryType,
		LogAttrResultCount, resultCount,
		LogAttrDurationMS, ToMilliseconds(duration))
}

// ResultCountAttr formats a result count as a span attribute.
func ResultCountAttr(resultCount int) map[string]string {
	return map[string]string{LogAttrResultCount: strconv.Itoa(resultCount)}
}

// JournaledEventsAttr formats a journaled event count as a span attribute.
func JournaledEventsAttr(result HandlerResult) map[string]string {
	return map[string]string{LogAttrJournaledEvents: strconv.Itoa(result.JournaledEvents)}
}

func logInfo(ctx context.Context, logger Logger, contextualLogger ContextualLogger, msg string, args ...any) {
	if contextualLogger != nil {
		contextualLogger.InfoContext(ctx, msg, args...)
	} else if logger != nil {
		logger.Info(msg, args...)
	}
}

func logError(ctx context.Context, logger Logger, contextualLogger ContextualLogger, msg string, args ...any) {
	if contextualLogger != nil {
		contextualLogger.ErrorContext(ctx, msg, args...)
	} else if logger != nil {
		logger.Error(msg, args...)
	}
}

func recordDuration(
	ctx context.Context,
	collector MetricsCollector,
	metric string,
	duration time.Duration,
	labels map[string]string,
) {

	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordDurationContext(ctx, metric, duration, labels)
	} else {
		collector.RecordDuration(metric, duration, labels)
	}
}

func incrementCounter(ctx context.Context, collector MetricsCollector, metric string, labels map[string]string) {
	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.IncrementCounterContext(ctx, metric, labels)
	} else {
		collector.IncrementCounter(metric, labels)
	}
}

func recordValue(ctx context.Context, collector MetricsCollector, metric string, value float64, labels map[string]string) {
	if contextualCollector, ok := collector.(ContextualMetricsCollector); ok {
		contextualCollector.RecordValueContext(ctx, metric, value, labels)
	} else {
		collector.RecordValue(metric, value, labels)
	}
}
