package eventstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/librarydesk/lendingdesk/eventstore"
)

func Test_BuildStorableEvent(t *testing.T) {
	occurredAt := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("valid event", func(t *testing.T) {
		// act
		event, err := eventstore.BuildStorableEvent("BookReturned", occurredAt, []byte(`{"BookID":"B001"}`), []byte(`{}`))

		// assert
		require.NoError(t, err)
		assert.Equal(t, "BookReturned", event.EventType)
		assert.Equal(t, occurredAt, event.OccurredAt)
		assert.Zero(t, event.SequenceNumber)
	})

	t.Run("empty event type", func(t *testing.T) {
		_, err := eventstore.BuildStorableEventWithEmptyMetadata("", occurredAt, []byte(`{}`))

		assert.ErrorIs(t, err, eventstore.ErrEmptyEventType)
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, err := eventstore.BuildStorableEventWithEmptyMetadata("BookReturned", occurredAt, []byte(`{"BookID":`))

		assert.ErrorIs(t, err, eventstore.ErrInvalidPayloadJSON)
	})

	t.Run("invalid metadata", func(t *testing.T) {
		_, err := eventstore.BuildStorableEvent("BookReturned", occurredAt, []byte(`{}`), []byte(`nope`))

		assert.ErrorIs(t, err, eventstore.ErrInvalidMetadataJSON)
	})
}
