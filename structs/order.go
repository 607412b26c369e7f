package structs

// OrderItemRequest is one cart line as submitted by the customer menu.
// Name and price are the client's snapshot of the product at cart time.
type OrderItemRequest struct {
	ProductId         string `json:"product_id" validate:"required,uuid4"`
	ProductName       string `json:"product_name" validate:"required,min=1,max=200"`
	Quantity          int    `json:"quantity" validate:"required,min=1,max=100"`
	ProductPriceCents int64  `json:"product_price_cents" validate:"gte=0"`
	Notes             string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type CreateOrderRequest struct {
	TableQRValue string             `json:"table_qr_value" validate:"required,uuid4"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes        string             `json:"notes,omitempty" validate:"omitempty,max=500"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending preparing ready served paid cancelled"`
}

type BillRequest struct {
	TableQRValue string `json:"table_qr_value" validate:"required,uuid4"`
}

// OrderTotalCents sums quantity x unit price over the cart. Subtotals are
// computed the same way per line when items are persisted, so the order
// total always equals the sum of its line subtotals at creation time.
func OrderTotalCents(items []OrderItemRequest) int64 {
	var total int64
	for _, it := range items {
		total += int64(it.Quantity) * it.ProductPriceCents
	}
	return total
}
