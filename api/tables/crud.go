package tables

import (
	"mesalink_server/api/middleware"
	"mesalink_server/lib"
	"mesalink_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (trm *TableRoutesManager) HandleListTables(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	list, err := trm.tableService.ListTables(r.Context(), barId)
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load tables"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(list),
		gecho.Send(),
	)
}

func (trm *TableRoutesManager) HandleCreateTable(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CreateTableRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the table details"), gecho.WithData(err), gecho.Send())
		return
	}

	table, err := trm.tableService.CreateTable(r.Context(), barId, body)
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("Unable to create the table"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Table created"),
		gecho.WithData(table),
		gecho.Send(),
	)
}

func (trm *TableRoutesManager) HandleUpdateTable(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	tableId, err := uuid.Parse(chi.URLParam(r, "tableID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid table id"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateTableRequest](r)
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Please check the table details"), gecho.WithData(err), gecho.Send())
		return
	}

	table, err := trm.tableService.UpdateTable(r.Context(), barId, tableId, body)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Table not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to update the table"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Table updated"),
		gecho.WithData(table),
		gecho.Send(),
	)
}

func (trm *TableRoutesManager) HandleDeactivateTable(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	tableId, err := uuid.Parse(chi.URLParam(r, "tableID"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid table id"), gecho.Send())
		return
	}

	if err := trm.tableService.DeactivateTable(r.Context(), barId, tableId); err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Table not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to remove the table"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Table removed"),
		gecho.Send(),
	)
}
