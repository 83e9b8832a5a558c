package observable_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librarydesk/lendingdesk/lending/core"
	"github.com/librarydesk/lendingdesk/lending/shell"
	"github.com/librarydesk/lendingdesk/lending/shell/observable"
	"github.com/librarydesk/lendingdesk/testutil/observability/testdoubles"
)

func Test_CommandWrapper_Handle_Success(t *testing.T) {
	// arrange
	expectedResult := shell.NewSuccessResult(1)
	handler := newMockHandler(expectedResult, nil)
	metricsCollector := testdoubles.NewMetricsCollectorSpy(true)
	tracingCollector := testdoubles.NewTracingCollectorSpy(true)
	contextualLogger := testdoubles.NewContextualLoggerSpy(true)

	wrapper, err := observable.NewCommandWrapper[mockCommand](
		handler,
		observable.WithCommandMetrics[mockCommand](metricsCollector),
		observable.WithCommandTracing[mockCommand](tracingCollector),
		observable.WithCommandContextualLogging[mockCommand](contextualLogger),
	)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), mockCommand{})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, expectedResult, result)
	assert.Len(t, handler.calls, 1)

	assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerCallsMetric).
		WithLabel("command_type", "TestCommand").
		WithStatus("success").
		Assert())
	assert.True(t, metricsCollector.HasDurationRecordForMetric(shell.CommandHandlerDurationMetric).
		WithStatus("success").
		Assert())
	assert.False(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerRejectionsMetric).Assert())

	spans := tracingCollector.GetSpanRecordsByName("lending.command.TestCommand")
	require.Len(t, spans, 1)
	assert.Equal(t, "success", spans[0].Status)
	assert.Equal(t, "1", spans[0].EndAttributes["journaled_events"])

	assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgCommandStarted))
	assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgCommandCompleted))
}

func Test_CommandWrapper_Handle_Rejection(t *testing.T) {
	tests := []struct {
		name              string
		coreErr           error
		expectedErrorType string
	}{
		{name: "book not found", coreErr: core.ErrBookNotFound, expectedErrorType: "not_found"},
		{name: "member not found", coreErr: core.ErrMemberNotFound, expectedErrorType: "not_found"},
		{name: "book not borrowed", coreErr: core.ErrBookNotBorrowed, expectedErrorType: "not_found"},
		{name: "book not available", coreErr: core.ErrBookNotAvailable, expectedErrorType: "not_available"},
		{name: "limit exceeded", coreErr: core.ErrMaxBooksExceeded, expectedErrorType: "limit_exceeded"},
		{name: "invalid input", coreErr: core.ErrInvalidInput, expectedErrorType: "invalid_input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// arrange
			coreErr := fmt.Errorf("%w: B001", tt.coreErr)
			handler := newMockHandler(shell.NewRejectedResult(1), coreErr)
			metricsCollector := testdoubles.NewMetricsCollectorSpy(true)
			tracingCollector := testdoubles.NewTracingCollectorSpy(true)
			contextualLogger := testdoubles.NewContextualLoggerSpy(true)

			wrapper, err := observable.NewCommandWrapper[mockCommand](
				handler,
				observable.WithCommandMetrics[mockCommand](metricsCollector),
				observable.WithCommandTracing[mockCommand](tracingCollector),
				observable.WithCommandContextualLogging[mockCommand](contextualLogger),
			)
			require.NoError(t, err)

			// act
			result, err := wrapper.Handle(context.Background(), mockCommand{})

			// assert
			assert.ErrorIs(t, err, tt.coreErr)
			assert.True(t, result.Rejected)

			assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerRejectionsMetric).
				WithStatus("rejected").
				WithErrorType(tt.expectedErrorType).
				Assert())

			spans := tracingCollector.GetSpanRecords()
			require.Len(t, spans, 1)
			assert.Equal(t, "rejected", spans[0].Status)
			assert.Equal(t, tt.expectedErrorType, spans[0].EndAttributes["error_type"])

			assert.True(t, contextualLogger.HasInfoLog(shell.LogMsgCommandRejected))
			assert.False(t, contextualLogger.HasErrorLog(shell.LogMsgCommandFailed))
		})
	}
}

func Test_CommandWrapper_Handle_InfrastructureErrors(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus string
	}{
		{name: "canceled", err: context.Canceled, expectedStatus: "canceled"},
		{name: "timeout", err: context.DeadlineExceeded, expectedStatus: "timeout"},
		{name: "other", err: errors.New("journal unavailable"), expectedStatus: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// arrange
			handler := newMockHandler(shell.HandlerResult{}, tt.err)
			metricsCollector := testdoubles.NewMetricsCollectorSpy(true)
			contextualLogger := testdoubles.NewContextualLoggerSpy(true)

			wrapper, err := observable.NewCommandWrapper[mockCommand](
				handler,
				observable.WithCommandMetrics[mockCommand](metricsCollector),
				observable.WithCommandContextualLogging[mockCommand](contextualLogger),
			)
			require.NoError(t, err)

			// act
			_, err = wrapper.Handle(context.Background(), mockCommand{})

			// assert
			assert.ErrorIs(t, err, tt.err)
			assert.True(t, metricsCollector.HasCounterRecordForMetric(shell.CommandHandlerCallsMetric).
				WithStatus(tt.expectedStatus).
				Assert())
			assert.True(t, contextualLogger.HasErrorLog(shell.LogMsgCommandFailed))
		})
	}
}

func Test_CommandWrapper_WithoutObservability_StillDelegates(t *testing.T) {
	// arrange
	handler := newMockHandler(shell.NewSuccessResult(1), nil)

	wrapper, err := observable.NewCommandWrapper[mockCommand](handler)
	require.NoError(t, err)

	// act
	result, err := wrapper.Handle(context.Background(), mockCommand{})

	// assert
	assert.NoError(t, err)
	assert.Equal(t, 1, result.JournaledEvents)
	assert.Len(t, handler.calls, 1)
}

type mockCommand struct{}

func (c mockCommand) CommandType() string {
	return "TestCommand"
}

type mockCommandHandler struct {
	result shell.HandlerResult
	err    error
	calls  []mockCommand
}

func (h *mockCommandHandler) Handle(_ context.Context, command mockCommand) (shell.HandlerResult, error) {
	h.calls = append(h.calls, command)
	return h.result, h.err
}

func newMockHandler(result shell.HandlerResult, err error) *mockCommandHandler {
	return &mockCommandHandler{
		result: result,
		err:    err,
		calls:  make([]mockCommand, 0),
	}
}
