package admin

import (
	"mesalink_server/lib"
	"mesalink_server/structs"
	"mesalink_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandleCreateStaff adds another dashboard login to an existing bar. There is
// no open registration; this and bar provisioning are the only ways staff
// accounts come into existence.
func (arm *AdminRoutesManager) HandleCreateStaff(w http.ResponseWriter, r *http.Request) {
	barId, err := uuid.Parse(chi.URLParam(r, "barID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid bar id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CreateStaffRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the staff details"), gecho.WithData(err), gecho.Send())
		return
	}

	// The bar must exist and be active before it gets more logins
	bar, err := arm.barService.GetBar(r.Context(), barId)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Bar not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load the bar"), gecho.Send())
		return
	}
	if !bar.IsActive {
		gecho.Conflict(w, gecho.WithMessage("This bar is deactivated"), gecho.Send())
		return
	}

	user, err := arm.authService.CreateStaffUser(r.Context(), body.Email, body.Password, tables.RoleStaff, &barId)
	if err != nil {
		if lib.IsConflict(err) {
			gecho.Conflict(w, gecho.WithMessage("This email is already registered"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to create the staff account"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Staff account created"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
