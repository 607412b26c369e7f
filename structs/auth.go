package structs

import (
	"time"

	"github.com/google/uuid"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// CreateStaffRequest adds another dashboard login to an existing bar.
type CreateStaffRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// AuthClaims is the decoded access-token payload. BarId is nil for admin
// accounts; for staff it scopes every dashboard query.
type AuthClaims struct {
	Sub   uuid.UUID
	Email string
	Role  string
	BarId *uuid.UUID
	Iat   time.Time
	Exp   time.Time
	Jti   uuid.UUID
}

// ArgonParams are the argon2id hashing parameters.
type ArgonParams struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}
