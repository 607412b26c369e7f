package admin

import (
	"mesalink_server/lib"
	"mesalink_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (arm *AdminRoutesManager) HandleListBars(w http.ResponseWriter, r *http.Request) {
	bars, err := arm.barService.ListBars(r.Context())
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load bars"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(bars),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) HandleGetBar(w http.ResponseWriter, r *http.Request) {
	barId, err := uuid.Parse(chi.URLParam(r, "barID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid bar id"), gecho.Send())
		return
	}

	bar, err := arm.barService.GetBar(r.Context(), barId)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Bar not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load the bar"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(bar),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) HandleCreateBar(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateBarRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the bar details"), gecho.WithData(err), gecho.Send())
		return
	}

	bar, err := arm.barService.CreateBar(r.Context(), body)
	if err != nil {
		if lib.IsConflict(err) {
			gecho.Conflict(w, gecho.WithMessage("This staff email is already registered"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to provision the bar"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Bar provisioned"),
		gecho.WithData(bar),
		gecho.Send(),
	)
}

func (arm *AdminRoutesManager) HandleUpdateBar(w http.ResponseWriter, r *http.Request) {
	barId, err := uuid.Parse(chi.URLParam(r, "barID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid bar id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateBarRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the bar details"), gecho.WithData(err), gecho.Send())
		return
	}

	bar, err := arm.barService.UpdateBar(r.Context(), barId, body)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Bar not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update the bar"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Bar updated"),
		gecho.WithData(bar),
		gecho.Send(),
	)
}
