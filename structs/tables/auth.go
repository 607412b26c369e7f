package tables

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// StaffUser is a dashboard login. Staff accounts are scoped to one bar;
// admin accounts have no bar and gate the provisioning console.
type StaffUser struct {
	tableName    struct{}   `bun:"table:staff_users,alias:su"`
	Id           uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	BarId        *uuid.UUID `bun:"bar_id,type:uuid" json:"bar_id,omitempty"`
	Email        string     `bun:"email,notnull,unique" json:"email"`
	PasswordHash string     `bun:"password_hash,notnull" json:"-"`
	Role         string     `bun:"role,notnull,default:'staff'" json:"role"`
	CreatedAt    time.Time  `bun:"created_at,notnull,default:current_timestamp" json:"created_at"`
}
