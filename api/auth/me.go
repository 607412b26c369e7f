package auth

import (
	"mesalink_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// HandleMe reports the session the dashboard is running under. The frontend
// calls it on load to decide between the login screen and the dashboard.
func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, err := lib.ExtractClaims(r, arm.authService.GetAccessTokenSecret())
	if err != nil {
		gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing session"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"user_id": claims.Sub,
			"email":   claims.Email,
			"role":    claims.Role,
			"bar_id":  claims.BarId,
		}),
		gecho.Send(),
	)
}
