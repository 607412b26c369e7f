package tables

import (
	"time"

	"github.com/google/uuid"
)

// Bar is the tenant root. Every other row is scoped to a bar, directly or
// through its parent. Bars are never hard-deleted outside of an explicit
// admin purge; "delete" means deactivate.
type Bar struct {
	tableName struct{}  `bun:"table:bars,alias:b"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull" json:"name"`

	Description   string `bun:"description" json:"description,omitempty"`
	Address       string `bun:"address" json:"address,omitempty"`
	Phone         string `bun:"phone" json:"phone,omitempty"`
	Email         string `bun:"email" json:"email,omitempty"`
	LogoURL       string `bun:"logo_url" json:"logo_url,omitempty"`
	CoverImageURL string `bun:"cover_image_url" json:"cover_image_url,omitempty"`

	IsActive  bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}
