package tables

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusReady,
		OrderStatusServed, OrderStatusPaid, OrderStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the order has left the kitchen workflow.
// Bill requests only touch non-terminal orders.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusPaid || s == OrderStatusCancelled
}

// transitions is the whitelist of legal status moves. Anything not listed
// is rejected with lib.ErrInvalidTransition at the service boundary.
var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusServed},
	OrderStatusServed:    {OrderStatusPaid},
}

// CanTransition reports whether moving from s to next is legal.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range transitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// Order binds to its table through the table's QR token, not the table id:
// the token is what the customer's scanned URL carries, and it survives in
// the order history even after the table rotates to a new token.
type Order struct {
	tableName struct{}  `bun:"table:orders,alias:o"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	BarId     uuid.UUID `bun:"bar_id,notnull,type:uuid" json:"bar_id"`

	TableQRValue string `bun:"table_qr_value,notnull" json:"table_qr_value"`

	// Sequential per bar, enforced by a unique (bar_id, order_number) index.
	OrderNumber int `bun:"order_number,notnull" json:"order_number"`

	Status     OrderStatus `bun:"status,notnull,default:'pending'" json:"status"`
	TotalCents int64       `bun:"total_cents,notnull" json:"total_cents"`
	Notes      string      `bun:"notes" json:"notes,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`

	Items []*OrderItem `bun:"rel:has-many,join:id=order_id" json:"items,omitempty"`
	Table *Table       `bun:"rel:belongs-to,join:table_qr_value=qr_code_value" json:"table,omitempty"`
}

// OrderItem snapshots product name and price at order time so menu edits
// never rewrite history. Subtotal is fixed at creation and never recomputed.
type OrderItem struct {
	tableName struct{}  `bun:"table:order_items,alias:oi"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,type:uuid" json:"order_id"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`

	ProductName       string `bun:"product_name,notnull" json:"product_name"`
	ProductPriceCents int64  `bun:"product_price_cents,notnull" json:"product_price_cents"`
	Quantity          int    `bun:"quantity,notnull" json:"quantity"`
	SubtotalCents     int64  `bun:"subtotal_cents,notnull" json:"subtotal_cents"`
	Notes             string `bun:"notes" json:"notes,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
