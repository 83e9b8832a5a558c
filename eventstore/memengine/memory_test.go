package memengine_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librarydesk/lendingdesk/eventstore"
	"github.com/librarydesk/lendingdesk/eventstore/memengine"
	"github.com/librarydesk/lendingdesk/testutil/observability/testdoubles"
)

var fakeNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func givenEvent(t *testing.T, eventType, bookID, memberID string) eventstore.StorableEvent {
	t.Helper()

	event, err := eventstore.BuildStorableEventWithEmptyMetadata(
		eventType,
		fakeNow,
		[]byte(fmt.Sprintf(`{"BookID":%q,"MemberID":%q}`, bookID, memberID)),
	)
	require.NoError(t, err)

	return event
}

func filterForBook(bookID string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyPredicateOf(eventstore.P("BookID", bookID)).
		Finalize()
}

func Test_Append_Then_Query_ReturnsMatchingEventsInAppendOrder(t *testing.T) {
	// arrange
	ctx := context.Background()
	es, err := memengine.NewEventStore()
	require.NoError(t, err)

	anyEvent := eventstore.BuildEventFilter().MatchingAnyEvent()
	require.NoError(t, es.Append(ctx, anyEvent, 0,
		givenEvent(t, "BookCheckedOut", "B001", "M001"),
		givenEvent(t, "BookCheckedOut", "B002", "M001")))
	require.NoError(t, es.Append(ctx, anyEvent, 2, givenEvent(t, "BookReturned", "B001", "M001")))

	// act
	events, maxSeq, queryErr := es.Query(ctx, filterForBook("B001"))

	// assert
	require.NoError(t, queryErr)
	require.Len(t, events, 2)
	assert.Equal(t, "BookCheckedOut", events[0].EventType)
	assert.Equal(t, uint(1), events[0].SequenceNumber)
	assert.Equal(t, "BookReturned", events[1].EventType)
	assert.Equal(t, uint(3), events[1].SequenceNumber)
	assert.Equal(t, eventstore.MaxSequenceNumberUint(3), maxSeq)
	assert.Equal(t, 3, es.Len())
}

func Test_Query_WithoutMatches_ReturnsEmptyStreamAndZeroMaxSequence(t *testing.T) {
	// arrange
	es, err := memengine.NewEventStore()
	require.NoError(t, err)

	// act
	events, maxSeq, queryErr := es.Query(context.Background(), filterForBook("B404"))

	// assert
	require.NoError(t, queryErr)
	assert.NotNil(t, events)
	assert.Empty(t, events)
	assert.Zero(t, maxSeq)
}

func Test_Append_WithOutdatedMaxSequence_FailsWithConcurrencyConflict(t *testing.T) {
	// arrange
	ctx := context.Background()
	es, err := memengine.NewEventStore()
	require.NoError(t, err)

	filter := filterForBook("B001")
	_, maxSeq, queryErr := es.Query(ctx, filter)
	require.NoError(t, queryErr)
	require.NoError(t, es.Append(ctx, filter, maxSeq, givenEvent(t, "BookCheckedOut", "B001", "M001")))

	// act
	appendErr := es.Append(ctx, filter, maxSeq, givenEvent(t, "BookCheckedOut", "B001", "M002"))

	// assert
	assert.ErrorIs(t, appendErr, eventstore.ErrConcurrencyConflict)
	assert.Equal(t, 1, es.Len())
}

func Test_Append_ToUnrelatedStream_DoesNotConflict(t *testing.T) {
	// arrange
	ctx := context.Background()
	es, err := memengine.NewEventStore()
	require.NoError(t, err)

	require.NoError(t, es.Append(ctx, filterForBook("B001"), 0, givenEvent(t, "BookCheckedOut", "B001", "M001")))

	// act
	appendErr := es.Append(ctx, filterForBook("B002"), 0, givenEvent(t, "BookCheckedOut", "B002", "M001"))

	// assert
	assert.NoError(t, appendErr)
}

func Test_Append_WithEmptyEventType_Fails(t *testing.T) {
	// arrange
	es, err := memengine.NewEventStore()
	require.NoError(t, err)

	// act
	appendErr := es.Append(context.Background(), filterForBook("B001"), 0, eventstore.StorableEvent{})

	// assert
	assert.ErrorIs(t, appendErr, eventstore.ErrEmptyEventType)
	assert.Zero(t, es.Len())
}

func Test_Operations_WithCanceledContext_Fail(t *testing.T) {
	// arrange
	es, err := memengine.NewEventStore()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// act
	_, _, queryErr := es.Query(ctx, filterForBook("B001"))
	appendErr := es.Append(ctx, filterForBook("B001"), 0, givenEvent(t, "BookCheckedOut", "B001", "M001"))

	// assert
	assert.ErrorIs(t, queryErr, context.Canceled)
	assert.ErrorIs(t, appendErr, context.Canceled)
	assert.Zero(t, es.Len())
}

func Test_Append_ConcurrentWritersOnSameStream_OnlyOneWins(t *testing.T) {
	// arrange
	ctx := context.Background()
	es, err := memengine.NewEventStore()
	require.NoError(t, err)

	filter := filterForBook("B001")
	var wg sync.WaitGroup
	results := make(chan error, 10)

	// act
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- es.Append(ctx, filter, 0, givenEvent(t, "BookCheckedOut", "B001", fmt.Sprintf("M%03d", i)))
		}()
	}
	wg.Wait()
	close(results)

	// assert
	succeeded := 0
	for appendErr := range results {
		if appendErr == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, appendErr, eventstore.ErrConcurrencyConflict)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, es.Len())
}

func Test_Observability_IsRecorded(t *testing.T) {
	// arrange
	ctx := context.Background()
	logger := testdoubles.NewContextualLoggerSpy(true)
	metrics := testdoubles.NewMetricsCollectorSpy(true)
	tracing := testdoubles.NewTracingCollectorSpy(true)

	es, err := memengine.NewEventStore(
		memengine.WithContextualLogger(logger),
		memengine.WithMetrics(metrics),
		memengine.WithTracing(tracing),
	)
	require.NoError(t, err)

	filter := filterForBook("B001")

	// act
	require.NoError(t, es.Append(ctx, filter, 0, givenEvent(t, "BookCheckedOut", "B001", "M001")))
	_, _, queryErr := es.Query(ctx, filter)
	require.NoError(t, queryErr)
	conflictErr := es.Append(ctx, filter, 0, givenEvent(t, "BookCheckedOut", "B001", "M002"))

	// assert
	assert.ErrorIs(t, conflictErr, eventstore.ErrConcurrencyConflict)

	assert.True(t, logger.HasInfoLog("eventstore operation: events appended"))
	assert.True(t, logger.HasInfoLog("eventstore operation: query completed"))
	assert.True(t, logger.HasInfoLog("eventstore operation: concurrency conflict detected"))

	assert.True(t, metrics.HasDurationRecordForMetric("eventstore_append_duration_seconds").
		WithOperation("append").WithStatus("success").Assert())
	assert.True(t, metrics.HasValueRecordForMetric("eventstore_events_queried_total").
		WithOperation("query").Assert())
	assert.True(t, metrics.HasCounterRecordForMetric("eventstore_concurrency_conflicts_total").
		WithLabel("conflict_type", "concurrency").Assert())

	appendSpans := tracing.GetSpanRecordsByName("eventstore.append")
	require.Len(t, appendSpans, 2)
	assert.Equal(t, "success", appendSpans[0].Status)
	assert.Equal(t, "error", appendSpans[1].Status)
	assert.Equal(t, "concurrency_conflict", appendSpans[1].EndAttributes["error_type"])
	assert.Len(t, tracing.GetSpanRecordsByName("eventstore.query"), 1)
}
