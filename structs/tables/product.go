package tables

import (
	"time"

	"github.com/google/uuid"
)

type ProductStatus string

const (
	ProductStatusAvailable   ProductStatus = "available"
	ProductStatusUnavailable ProductStatus = "temporarily_unavailable"
)

// Available derives the availability flag from the status. Status is the
// single source of truth; is_available is never written independently, so
// the two columns cannot drift apart.
func (s ProductStatus) Available() bool {
	return s == ProductStatusAvailable
}

func (s ProductStatus) Valid() bool {
	return s == ProductStatusAvailable || s == ProductStatusUnavailable
}

type Product struct {
	tableName  struct{}   `bun:"table:products,alias:p"`
	Id         uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	BarId      uuid.UUID  `bun:"bar_id,notnull,type:uuid" json:"bar_id"`
	CategoryId *uuid.UUID `bun:"category_id,type:uuid" json:"category_id,omitempty"`

	Name        string `bun:"name,notnull" json:"name"`
	Description string `bun:"description" json:"description,omitempty"`
	ImageURL    string `bun:"image_url" json:"image_url,omitempty"`
	PriceCents  int64  `bun:"price_cents,notnull" json:"price_cents"`

	Status      ProductStatus `bun:"status,notnull,default:'available'" json:"status"`
	IsAvailable bool          `bun:"is_available,notnull,default:true" json:"is_available"`

	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`

	Category *Category `bun:"rel:belongs-to,join:category_id=id" json:"category,omitempty"`
}

// SetStatus is the only write path for status and availability.
func (p *Product) SetStatus(s ProductStatus) {
	p.Status = s
	p.IsAvailable = s.Available()
}
