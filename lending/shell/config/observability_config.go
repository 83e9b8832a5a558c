package config

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/propagation"
	sdklog "go.opentelemetry.io/otel/sdk/log"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const shutdownTimeout = 5 * time.Second

// ObservabilityProviders holds the OpenTelemetry providers of the running process.
type ObservabilityProviders struct {
	LoggerProvider *sdklog.LoggerProvider
	TracerProvider *trace.TracerProvider
	MeterProvider  *metric.MeterProvider
	MetricReader   *metric.ManualReader
	Resource       *resource.Resource
}

// Processors receive what the SDK providers produce.
type Processors struct {
	Log  []sdklog.Processor
	Span []trace.SpanProcessor
}

// NewObservabilityProviders creates OpenTelemetry SDK providers for serviceName and registers them globally.
// Log records and spans are delivered to processors, metrics are collected on demand through MetricReader.
func NewObservabilityProviders(
	ctx context.Context,
	serviceName string,
	serviceVersion string,
	processors Processors,
) (*ObservabilityProviders, error) {

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
			semconv.ServiceVersionKey.String(serviceVersion),
		),
	)
	if err != nil {
		return nil, err
	}

	logOptions := []sdklog.LoggerProviderOption{sdklog.WithResource(res)}
	for _, lp := range processors.Log {
		logOptions = append(logOptions, sdklog.WithProcessor(lp))
	}
	loggerProvider := sdklog.NewLoggerProvider(logOptions...)

	traceOptions := []trace.TracerProviderOption{trace.WithResource(res)}
	for _, sp := range processors.Span {
		traceOptions = append(traceOptions, trace.WithSpanProcessor(sp))
	}
	tracerProvider := trace.NewTracerProvider(traceOptions...)

	reader := metric.NewManualReader()
	meterProvider := metric.NewMeterProvider(
		metric.WithReader(reader),
		metric.WithResource(res),
	)

	global.SetLoggerProvider(loggerProvider)
	otel.SetTracerProvider(tracerProvider)
	otel.SetMeterProvider(meterProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return &ObservabilityProviders{
		LoggerProvider: loggerProvider,
		TracerProvider: tracerProvider,
		MeterProvider:  meterProvider,
		MetricReader:   reader,
		Resource:       res,
	}, nil
}

// Shutdown flushes and shuts down all providers.
func (p *ObservabilityProviders) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return errors.Join(
		p.LoggerProvider.Shutdown(ctx),
		p.TracerProvider.Shutdown(ctx),
		p.MeterProvider.Shutdown(ctx),
	)
}
