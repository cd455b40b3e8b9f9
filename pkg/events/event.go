package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CLIENT_UPDATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Audit event type codes consumed by the system-log writer.
const (
	TypeClientCreated           = "CLIENT_CREATED"
	TypeClientUpdated           = "CLIENT_UPDATED"
	TypeClientDeleted           = "CLIENT_DELETED"
	TypeSubscriptionCreated     = "SUBSCRIPTION_CREATED"
	TypeSubscriptionUpdated     = "SUBSCRIPTION_UPDATED"
	TypeSubscriptionEnded       = "SUBSCRIPTION_ENDED"
	TypeSchedulingsMaterialized = "SCHEDULINGS_MATERIALIZED"
	TypeSchedulingsReconciled   = "SCHEDULINGS_RECONCILED"
	TypeSchedulingStatusChanged = "SCHEDULING_STATUS_CHANGED"
)

type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}

func NewEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
