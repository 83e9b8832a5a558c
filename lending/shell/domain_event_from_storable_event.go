package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/librarydesk/lendingdesk/eventstore"
	"github.com/librarydesk/lendingdesk/lending/core"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.BookAddedToCatalogEventType:
		return unmarshal[core.BookAddedToCatalog](storableEvent.PayloadJSON)

	case core.MemberRegisteredEventType:
		return unmarshal[core.MemberRegistered](storableEvent.PayloadJSON)

	case core.BookCheckedOutEventType:
		return unmarshal[core.BookCheckedOut](storableEvent.PayloadJSON)

	case core.BookReturnedEventType:
		return unmarshal[core.BookReturned](storableEvent.PayloadJSON)

	case core.AddingBookFailedEventType:
		return unmarshal[core.AddingBookFailed](storableEvent.PayloadJSON)

	case core.RegisteringMemberFailedEventType:
		return unmarshal[core.RegisteringMemberFailed](storableEvent.PayloadJSON)

	case core.CheckingOutBookFailedEventType:
		return unmarshal[core.CheckingOutBookFailed](storableEvent.PayloadJSON)

	case core.ReturningBookFailedEventType:
		return unmarshal[core.ReturningBookFailed](storableEvent.PayloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

// The event structs carry only exported scalar fields, so they unmarshal directly.
func unmarshal[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var event E

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &event); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return event, nil
}
