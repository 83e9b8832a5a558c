package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/log/global"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/librarydesk/lendingdesk/eventstore/oteladapters"
	"github.com/librarydesk/lendingdesk/lending/shell"
	"github.com/librarydesk/lendingdesk/lending/shell/config"
)

// telemetry bundles what the journal and the handler wrappers get instrumented with.
// Unset collectors stay nil interfaces so the instrumentation skips them.
type telemetry struct {
	logger           *slog.Logger
	contextualLogger shell.ContextualLogger
	journalLogger    shell.ContextualLogger
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	providers        *config.ObservabilityProviders
	logRecords       *logRecordCounter
}

func newLogger(cfg config.Config, w io.Writer) *slog.Logger {
	level, err := cfg.SlogLevel()
	if err != nil {
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.LogFormat, config.LogFormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func newTelemetry(ctx context.Context, cfg config.Config, logger *slog.Logger) (telemetry, error) {
	if !cfg.ObservabilityEnabled {
		return telemetry{
			logger:           logger,
			contextualLogger: logger,
			journalLogger:    logger,
		}, nil
	}

	logRecords := &logRecordCounter{}
	providers, err := config.NewObservabilityProviders(ctx, cfg.ServiceName, serviceVersion, config.Processors{
		Log:  []sdklog.Processor{logRecords},
		Span: []sdktrace.SpanProcessor{spanLogger{logger: logger}},
	})
	if err != nil {
		return telemetry{}, err
	}

	logger.Info("observability enabled", "service", cfg.ServiceName)

	return telemetry{
		logger: logger,
		contextualLogger: fanOutLogger{
			logger,
			oteladapters.NewSlogBridgeLogger(cfg.ServiceName),
		},
		journalLogger: fanOutLogger{
			logger,
			oteladapters.NewOTelLogger(global.Logger(cfg.ServiceName + "/journal")),
		},
		metricsCollector: oteladapters.NewMetricsCollector(otel.Meter(cfg.ServiceName)),
		tracingCollector: oteladapters.NewTracingCollector(otel.Tracer(cfg.ServiceName)),
		providers:        providers,
		logRecords:       logRecords,
	}, nil
}

// shutdown logs a summary of the collected metrics and flushes the providers.
func (t telemetry) shutdown(ctx context.Context) {
	if t.providers == nil {
		return
	}

	var collected metricdata.ResourceMetrics
	if err := t.providers.MetricReader.Collect(ctx, &collected); err != nil {
		t.logger.Warn("collecting metrics failed", "error", err)
	} else {
		for _, scope := range collected.ScopeMetrics {
			for _, m := range scope.Metrics {
				t.logger.Info("metric", "name", m.Name, "data_points", dataPointCount(m.Data))
			}
		}
	}

	t.logger.Info("otel log records", "count", t.logRecords.count.Load())

	if err := t.providers.Shutdown(); err != nil {
		t.logger.Warn("observability shutdown failed", "error", err)
	}
}

func dataPointCount(data metricdata.Aggregation) int {
	switch d := data.(type) {
	case metricdata.Histogram[float64]:
		return len(d.DataPoints)
	case metricdata.Sum[int64]:
		return len(d.DataPoints)
	case metricdata.Gauge[float64]:
		return len(d.DataPoints)
	default:
		return 0
	}
}

// fanOutLogger writes every record to all of its loggers.
type fanOutLogger []shell.ContextualLogger

func (f fanOutLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	for _, l := range f {
		l.DebugContext(ctx, msg, args...)
	}
}

func (f fanOutLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	for _, l := range f {
		l.InfoContext(ctx, msg, args...)
	}
}

func (f fanOutLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	for _, l := range f {
		l.WarnContext(ctx, msg, args...)
	}
}

func (f fanOutLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	for _, l := range f {
		l.ErrorContext(ctx, msg, args...)
	}
}

// spanLogger is a span processor that logs finished spans at debug level.
type spanLogger struct {
	logger *slog.Logger
}

func (s spanLogger) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

func (s spanLogger) OnEnd(span sdktrace.ReadOnlySpan) {
	s.logger.Debug("span ended",
		"name", span.Name(),
		"trace_id", span.SpanContext().TraceID().String(),
		"status", span.Status().Code.String(),
		"duration_ms", shell.ToMilliseconds(span.EndTime().Sub(span.StartTime())),
	)
}

func (s spanLogger) Shutdown(context.Context) error { return nil }

func (s spanLogger) ForceFlush(context.Context) error { return nil }

// logRecordCounter is a log processor that counts the records emitted on the OpenTelemetry logs API.
type logRecordCounter struct {
	count atomic.Int64
}

func (c *logRecordCounter) OnEmit(context.Context, *sdklog.Record) error {
	c.count.Add(1)
	return nil
}

func (c *logRecordCounter) Shutdown(context.Context) error { return nil }

func (c *logRecordCounter) ForceFlush(context.Context) error { return nil }
