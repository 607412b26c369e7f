package structs

import (
	"encoding/json"

	"github.com/google/uuid"
)

const (
	EventInsert = "insert"
	EventUpdate = "update"
	EventDelete = "delete"

	EventTableOrders     = "orders"
	EventTableOrderItems = "order_items"
)

// ChangeEvent is one row-change notification on the bar-scoped push
// channel. Payload is the changed row as JSON (the row id for deletes).
type ChangeEvent struct {
	Table   string          `json:"table"`
	Type    string          `json:"type"`
	BarId   uuid.UUID       `json:"bar_id"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
