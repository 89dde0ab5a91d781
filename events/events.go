package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	BalanceChangedType   EventType = "BalanceChanged"
	LockStateChangedType EventType = "LockStateChanged"
	OwnerChangedType     EventType = "OwnerChanged"
	CurrencyChangedType  EventType = "CurrencyChanged"
)

// BaseEvent carries the metadata shared by every account notification.
type BaseEvent struct {
	EventID       uuid.UUID `json:"eventId"`
	AccountNumber int64     `json:"accountNumber"`
	Timestamp     time.Time `json:"timestamp"`
	Type          EventType `json:"type"`
}

type Event interface {
	GetBase() BaseEvent
}

func (e BaseEvent) GetBase() BaseEvent {
	return e
}

func NewBaseEvent(accountNumber int64, eventType EventType) BaseEvent {
	return BaseEvent{
		EventID:       uuid.New(),
		AccountNumber: accountNumber,
		Timestamp:     time.Now().UTC(),
		Type:          eventType,
	}
}
