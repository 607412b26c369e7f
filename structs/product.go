package structs

import "mesalink_server/structs/tables"

type CreateProductRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	PriceCents  int64  `json:"price_cents" validate:"gt=0"`
	CategoryId  string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	ImageURL    string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	PriceCents  *int64  `json:"price_cents,omitempty" validate:"omitempty,gt=0"`
	CategoryId  *string `json:"category_id,omitempty" validate:"omitempty,uuid4"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,url"`
}

type UpdateProductStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available temporarily_unavailable"`
}

type CreateCategoryRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Description  string `json:"description,omitempty" validate:"omitempty,max=500"`
	DisplayOrder *int   `json:"display_order,omitempty" validate:"omitempty,gte=0"`
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description  *string `json:"description,omitempty" validate:"omitempty,max=500"`
	DisplayOrder *int    `json:"display_order,omitempty" validate:"omitempty,gte=0"`
}

// MenuPayload is the public menu for one bar: what a customer sees after a
// successful QR scan. Cached per bar and rebuilt on any menu mutation.
type MenuPayload struct {
	Bar        *tables.Bar       `json:"bar"`
	Table      *tables.Table     `json:"table"`
	Categories []tables.Category `json:"categories"`
	Products   []tables.Product  `json:"products"`
}
