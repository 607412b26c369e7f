package tables

import (
	"time"

	"github.com/google/uuid"
)

// DemoRequest is the local copy of an outbound demo enquiry. The row is
// written before the relay attempt so the enquiry survives a relay outage.
type DemoRequest struct {
	tableName   struct{}  `bun:"table:demo_requests,alias:dr"`
	Id          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	BarName     string    `bun:"bar_name,notnull" json:"bar_name"`
	ContactName string    `bun:"contact_name,notnull" json:"contact_name"`
	Email       string    `bun:"email,notnull" json:"email"`
	Phone       string    `bun:"phone,notnull" json:"phone"`
	Location    string    `bun:"location,notnull" json:"location"`
	Message     string    `bun:"message" json:"message,omitempty"`
	Relayed     bool      `bun:"relayed,notnull,default:false" json:"relayed"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
