package amqp

import (
	"encoding/json"
	"time"
)

// Event actions.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Log kinds.
const (
	KindStudy   = "study"
	KindExpense = "expense"
)

// LogEvent is a lightweight notification that a log row changed. Consumers
// re-read the row from the database; the event carries only the key.
type LogEvent struct {
	Kind      string    `json:"kind"`
	Action    string    `json:"action"`
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
}

// NewLogEvent creates an event for the given log kind, action and row id.
func NewLogEvent(kind, action string, id int64) *LogEvent {
	return &LogEvent{
		Kind:      kind,
		Action:    action,
		ID:        id,
		Timestamp: time.Now(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e *LogEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// LogEventFromJSON creates an event from JSON bytes.
func LogEventFromJSON(data []byte) (*LogEvent, error) {
	var e LogEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
