package admin

import (
	"mesalink_server/lib"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandleDeactivateBar is the everyday removal path: the bar disappears from
// service but every row survives
func (arm *AdminRoutesManager) HandleDeactivateBar(w http.ResponseWriter, r *http.Request) {
	barId, err := uuid.Parse(chi.URLParam(r, "barID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid bar id"), gecho.Send())
		return
	}

	if err := arm.barService.DeactivateBar(r.Context(), barId); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Bar not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to deactivate the bar"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Bar deactivated"),
		gecho.Send(),
	)
}

// HandlePurgeBar permanently erases a tenant and all its data. There is no
// undo; this exists for data erasure requests.
func (arm *AdminRoutesManager) HandlePurgeBar(w http.ResponseWriter, r *http.Request) {
	barId, err := uuid.Parse(chi.URLParam(r, "barID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid bar id"), gecho.Send())
		return
	}

	if err := arm.barService.PurgeBar(r.Context(), barId); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Bar not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to purge the bar"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Bar purged"),
		gecho.Send(),
	)
}
