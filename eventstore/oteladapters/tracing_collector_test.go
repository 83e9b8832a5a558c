package oteladapters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"github.com/librarydesk/lendingdesk/eventstore/oteladapters"
)

func givenTracingCollectorWithRecorder() (*oteladapters.TracingCollector, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	return oteladapters.NewTracingCollector(provider.Tracer("lendingdesk-test")), recorder
}

func attributesOf(attrs []attribute.KeyValue) map[string]string {
	byKey := make(map[string]string, len(attrs))
	for _, kv := range attrs {
		byKey[string(kv.Key)] = kv.Value.AsString()
	}

	return byKey
}

func Test_TracingCollector_SuccessfulSpan(t *testing.T) {
	// arrange
	collector, recorder := givenTracingCollectorWithRecorder()

	// act
	ctx, span := collector.StartSpan(context.Background(), "lending.command.CheckoutBook", map[string]string{"book_id": "B001"})
	span.AddAttribute("member_id", "M001")
	collector.FinishSpan(span, "success", map[string]string{"event_count": "1"})

	// assert
	assert.True(t, trace.SpanContextFromContext(ctx).IsValid())

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "lending.command.CheckoutBook", ended[0].Name())
	assert.Equal(t, codes.Ok, ended[0].Status().Code)

	attrs := attributesOf(ended[0].Attributes())
	assert.Equal(t, "B001", attrs["book_id"])
	assert.Equal(t, "M001", attrs["member_id"])
	assert.Equal(t, "1", attrs["event_count"])
}

func Test_TracingCollector_StatusMapping(t *testing.T) {
	tests := []struct {
		status       string
		expectedCode codes.Code
	}{
		{status: "error", expectedCode: codes.Error},
		{status: "rejected", expectedCode: codes.Error},
		{status: "canceled", expectedCode: codes.Error},
		{status: "conflict", expectedCode: codes.Error},
		{status: "completed", expectedCode: codes.Ok},
		{status: "something_else", expectedCode: codes.Unset},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			// arrange
			collector, recorder := givenTracingCollectorWithRecorder()

			// act
			_, span := collector.StartSpan(context.Background(), "op", nil)
			collector.FinishSpan(span, tt.status, nil)

			// assert
			ended := recorder.Ended()
			require.Len(t, ended, 1)
			assert.Equal(t, tt.expectedCode, ended[0].Status().Code)
		})
	}
}

func Test_TracingCollector_NestedSpansShareTrace(t *testing.T) {
	// arrange
	collector, recorder := givenTracingCollectorWithRecorder()

	// act
	ctx, outer := collector.StartSpan(context.Background(), "lending.command.ReturnBook", nil)
	_, inner := collector.StartSpan(ctx, "eventstore.append", nil)
	collector.FinishSpan(inner, "success", nil)
	collector.FinishSpan(outer, "success", nil)

	// assert
	ended := recorder.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, ended[1].SpanContext().TraceID(), ended[0].SpanContext().TraceID())
	assert.Equal(t, ended[1].SpanContext().SpanID(), ended[0].Parent().SpanID())
}
