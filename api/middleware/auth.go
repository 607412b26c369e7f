package middleware

import (
	"context"
	"mesalink_server/lib"
	"mesalink_server/structs"
	"mesalink_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// Context keys for storing session data in request context
type contextKey string

const ClaimsContextKey contextKey = "claims"

// StaffAuthMiddleware protects dashboard routes. It requires a valid session
// cookie belonging to a staff account scoped to a bar; every downstream query
// is bound to that bar through the claims.
func (mw *Middleware) StaffAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := lib.ExtractClaims(r, mw.authService.GetAccessTokenSecret())
		if err != nil {
			mw.logger.Warn("Failed to extract claims from request", gecho.Field("error", err))
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing session"), gecho.Send())
			return
		}

		if claims.BarId == nil {
			mw.logger.Warn("Session without bar scope on a dashboard route",
				gecho.Field("user_id", claims.Sub),
				gecho.Field("role", claims.Role),
			)
			gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminAuthMiddleware protects the provisioning console to platform admins
func (mw *Middleware) AdminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := lib.ExtractClaims(r, mw.authService.GetAccessTokenSecret())
		if err != nil {
			mw.logger.Warn("Failed to extract claims from request", gecho.Field("error", err))
			gecho.Forbidden(w, gecho.WithMessage("Access denied"), gecho.Send())
			return
		}

		if claims.Role != tables.RoleAdmin {
			mw.logger.Warn("Non-admin user attempted to access admin route",
				gecho.Field("user_id", claims.Sub),
				gecho.Field("role", claims.Role),
			)
			gecho.Forbidden(w, gecho.WithMessage("Admin access required"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaimsFromContext is a helper function to extract the claims from request context
func GetClaimsFromContext(ctx context.Context) (*structs.AuthClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*structs.AuthClaims)
	return claims, ok
}

// BarIdFromContext returns the bar the session is scoped to. Only set on
// routes behind StaffAuthMiddleware.
func BarIdFromContext(ctx context.Context) (uuid.UUID, bool) {
	claims, ok := GetClaimsFromContext(ctx)
	if !ok || claims.BarId == nil {
		return uuid.Nil, false
	}
	return *claims.BarId, true
}
