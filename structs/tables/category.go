package tables

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	tableName   struct{}  `bun:"table:categories,alias:c"`
	Id          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	BarId       uuid.UUID `bun:"bar_id,notnull,type:uuid" json:"bar_id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Description string    `bun:"description" json:"description,omitempty"`

	// Menu sort position. Assigned as max+1 at creation; there is no
	// renumbering operation.
	DisplayOrder int `bun:"display_order,notnull,default:0" json:"display_order"`

	IsActive  bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
