package admin

import (
	"mesalink_server/lib"
	"mesalink_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandleBulkCreateTables seats a tenant in one call during onboarding.
// Entries are independent; failures are reported alongside the successes.
func (arm *AdminRoutesManager) HandleBulkCreateTables(w http.ResponseWriter, r *http.Request) {
	barId, err := uuid.Parse(chi.URLParam(r, "barID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid bar id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.BulkCreateTablesRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the table entries"), gecho.WithData(err), gecho.Send())
		return
	}

	created, failures := arm.tableService.BulkCreateTables(r.Context(), barId, body)

	gecho.Success(w,
		gecho.WithMessage("Tables created"),
		gecho.WithData(map[string]any{
			"created":  created,
			"failures": failures,
		}),
		gecho.Send(),
	)
}

// HandleReconcileTableCount grows or shrinks a tenant's seating to the
// requested count
func (arm *AdminRoutesManager) HandleReconcileTableCount(w http.ResponseWriter, r *http.Request) {
	barId, err := uuid.Parse(chi.URLParam(r, "barID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid bar id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.TableCountRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please provide a valid table count"), gecho.WithData(err), gecho.Send())
		return
	}

	list, err := arm.tableService.ReconcileTableCount(r.Context(), barId, body.Count)
	if err != nil {
		arm.logger.Error("Failed to reconcile table count", gecho.Field("error", err), gecho.Field("bar_id", barId))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to adjust the table count"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Table count updated"),
		gecho.WithData(list),
		gecho.Send(),
	)
}
