package tables

import (
	"mesalink_server/api/middleware"
	"mesalink_server/lib"
	"mesalink_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

func (trm *TableRoutesManager) HandleBulkCreateTables(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.BulkCreateTablesRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the table entries"), gecho.WithData(err), gecho.Send())
		return
	}

	created, failures := trm.tableService.BulkCreateTables(r.Context(), barId, body)

	gecho.Success(w,
		gecho.WithMessage("Tables created"),
		gecho.WithData(map[string]any{
			"created":  created,
			"failures": failures,
		}),
		gecho.Send(),
	)
}

func (trm *TableRoutesManager) HandleReconcileCount(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.TableCountRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please provide a valid table count"), gecho.WithData(err), gecho.Send())
		return
	}

	list, err := trm.tableService.ReconcileTableCount(r.Context(), barId, body.Count)
	if err != nil {
		trm.logger.Error("Failed to reconcile table count", gecho.Field("error", err), gecho.Field("bar_id", barId))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to adjust the table count"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Table count updated"),
		gecho.WithData(list),
		gecho.Send(),
	)
}
