package services

import (
	"context"
	"mesalink_server/database"
	"mesalink_server/lib"
	"mesalink_server/structs"
	"mesalink_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger, db *database.DB) *AuthService {
	return &AuthService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

// Login verifies dashboard credentials and returns the staff user on success
func (as *AuthService) Login(loginRequest *structs.LoginRequest) (*tables.StaffUser, error) {
	startTime := time.Now()

	user, err := database.Query[tables.StaffUser](as.db).Where("email", loginRequest.Email).First(context.Background())
	if err != nil {
		mappedErr := lib.MapDBError(err)

		// Only log as error if it's not a "not found" error
		if !lib.IsNotFound(mappedErr) {
			as.logger.Error("Unexpected database error during login",
				gecho.Field("error", mappedErr),
				gecho.Field("identifier", loginRequest.Email),
			)
		}

		// Always return invalid credentials (don't leak account existence)
		return nil, lib.ErrInvalidCredentials
	}

	// First() can return nil, nil for no results
	if user == nil {
		as.logger.Debug("Account not found during login attempt", gecho.Field("identifier", loginRequest.Email))
		return nil, lib.ErrInvalidCredentials
	}

	valid, err := lib.VerifyPassword(loginRequest.Password, user.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash",
			gecho.Field("error", err),
			gecho.Field("user_id", user.Id),
		)
		return nil, err
	}
	if !valid {
		as.logger.Debug("Invalid password attempt",
			gecho.Field("identifier", loginRequest.Email),
			gecho.Field("user_id", user.Id),
		)
		return nil, lib.ErrInvalidCredentials
	}

	// Staff accounts for a deactivated bar can no longer log in
	if user.BarId != nil {
		bar, err := database.FindByID[tables.Bar](as.db, context.Background(), *user.BarId)
		if err != nil {
			as.logger.Error("Failed to load bar during login",
				gecho.Field("error", err),
				gecho.Field("bar_id", *user.BarId),
			)
			return nil, lib.ErrInvalidCredentials
		}
		if bar == nil || !bar.IsActive {
			as.logger.Debug("Login rejected for inactive bar", gecho.Field("bar_id", *user.BarId))
			return nil, lib.ErrInvalidCredentials
		}
	}

	as.logger.Debug("Staff user logged in successfully",
		gecho.Field("user_id", user.Id),
		gecho.Field("elapsed_time_ms", time.Since(startTime).Milliseconds()),
	)

	// Never expose the hash downstream
	user.PasswordHash = ""

	return user, nil
}

// CreateStaffUser provisions a dashboard login, hashing the password first.
// Used by admin bar provisioning; there is no open registration.
func (as *AuthService) CreateStaffUser(ctx context.Context, email, password, role string, barId *uuid.UUID) (*tables.StaffUser, error) {
	passwordHash, err := lib.HashPassword(password, lib.DefaultArgonParams)
	if err != nil {
		as.logger.Error("Failed to hash password", gecho.Field("error", err))
		return nil, err
	}

	user := &tables.StaffUser{
		BarId:        barId,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         role,
	}

	user, err = database.Query[tables.StaffUser](as.db).Insert(ctx, user)
	if err != nil {
		mappedErr := lib.MapDBError(err)

		if lib.IsConflict(mappedErr) {
			as.logger.Warn("Staff user creation failed - duplicate email", gecho.Field("email", email))
		} else {
			as.logger.Error("Database error during staff user creation",
				gecho.Field("error", mappedErr),
				gecho.Field("email", email),
			)
		}

		return nil, mappedErr
	}

	user.PasswordHash = ""
	return user, nil
}

// GenerateAccessToken signs a session token for the given staff user
func (as *AuthService) GenerateAccessToken(user *tables.StaffUser) (string, error) {
	now := time.Now()

	claims := &structs.AuthClaims{
		Sub:   user.Id,
		Email: user.Email,
		Role:  user.Role,
		BarId: user.BarId,
		Iat:   now,
		Exp:   as.GetAccessTokenExpiration(),
		Jti:   uuid.New(),
	}

	return lib.CreateToken(claims, as.cfg.Auth.AccessTokenSecret)
}

// GetAccessTokenExpiration returns the expiration time for access tokens
func (as *AuthService) GetAccessTokenExpiration() time.Time {
	return time.Now().Add(as.cfg.Auth.AccessTokenExpiry)
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}
