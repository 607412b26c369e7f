package tables

import (
	"time"

	"github.com/google/uuid"
)

// Table is the only entity resolved from the outside by something other
// than its id: the QR token printed on the physical table is the sole
// credential a scanned URL carries. The token is unique across the system
// and may be rotated, which permanently invalidates previously printed
// codes for that table.
type Table struct {
	tableName   struct{}  `bun:"table:tables,alias:t"`
	Id          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	BarId       uuid.UUID `bun:"bar_id,notnull,type:uuid" json:"bar_id"`
	TableName   string    `bun:"table_name,notnull" json:"table_name"`
	TableNumber string    `bun:"table_number,notnull" json:"table_number"`
	QRCodeValue string    `bun:"qr_code_value,notnull,unique" json:"qr_code_value"`
	IsActive    bool      `bun:"is_active,notnull,default:true" json:"is_active"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,notnull,default:current_timestamp" json:"updated_at"`
}
