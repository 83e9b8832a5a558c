package oteladapters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/librarydesk/lendingdesk/eventstore/oteladapters"
)

func givenCollectorWithReader() (*oteladapters.MetricsCollector, *sdkmetric.ManualReader) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	return oteladapters.NewMetricsCollector(provider.Meter("lendingdesk-test")), reader
}

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	byName := make(map[string]metricdata.Metrics)
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			byName[m.Name] = m
		}
	}

	return byName
}

func Test_MetricsCollector_RecordDuration_UsesHistogramInSeconds(t *testing.T) {
	// arrange
	collector, reader := givenCollectorWithReader()

	// act
	collector.RecordDuration("lending_command_duration_seconds", 1500*time.Millisecond, map[string]string{"status": "success"})
	collector.RecordDurationContext(context.Background(), "lending_command_duration_seconds", 500*time.Millisecond, map[string]string{"status": "success"})

	// assert
	metrics := collect(t, reader)
	m, ok := metrics["lending_command_duration_seconds"]
	require.True(t, ok)
	assert.Equal(t, "s", m.Unit)
	assert.Equal(t, "Lending desk operation duration", m.Description)

	histogram, isHistogram := m.Data.(metricdata.Histogram[float64])
	require.True(t, isHistogram)
	require.Len(t, histogram.DataPoints, 1)
	assert.Equal(t, uint64(2), histogram.DataPoints[0].Count)
	assert.InDelta(t, 2.0, histogram.DataPoints[0].Sum, 0.0001)
}

func Test_MetricsCollector_IncrementCounter_SeparatesLabelSets(t *testing.T) {
	// arrange
	collector, reader := givenCollectorWithReader()

	// act
	collector.IncrementCounter("lending_command_calls_total", map[string]string{"status": "success"})
	collector.IncrementCounter("lending_command_calls_total", map[string]string{"status": "success"})
	collector.IncrementCounterContext(context.Background(), "lending_command_calls_total", map[string]string{"status": "rejected"})

	// assert
	m := collect(t, reader)["lending_command_calls_total"]
	sum, isSum := m.Data.(metricdata.Sum[int64])
	require.True(t, isSum)
	require.Len(t, sum.DataPoints, 2)

	total := int64(0)
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	assert.Equal(t, int64(3), total)
}

func Test_MetricsCollector_RecordValue_UsesGauge(t *testing.T) {
	// arrange
	collector, reader := givenCollectorWithReader()

	// act
	collector.RecordValue("eventstore_events_queried_total", 3, nil)
	collector.RecordValueContext(context.Background(), "eventstore_events_queried_total", 7, nil)

	// assert
	m := collect(t, reader)["eventstore_events_queried_total"]
	assert.Equal(t, "Journal current value", m.Description)

	gauge, isGauge := m.Data.(metricdata.Gauge[float64])
	require.True(t, isGauge)
	require.Len(t, gauge.DataPoints, 1)
	assert.InDelta(t, 7.0, gauge.DataPoints[0].Value, 0.0001)
}
