package menu

import (
	"mesalink_server/lib"
	"mesalink_server/structs/tables"
	"net/http"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// resolveTable turns the scanned token into a table, rejecting tokens that
// don't belong to the bar in the URL
func (mrm *MenuRoutesManager) resolveTable(r *http.Request, token string) (*tables.Table, error) {
	barId, err := uuid.Parse(chi.URLParam(r, "barID"))
	if err != nil {
		return nil, lib.ErrInvalidQRToken
	}

	table, err := mrm.tableService.ValidateQR(r.Context(), token)
	if err != nil {
		return nil, err
	}
	if table.BarId != barId {
		return nil, lib.ErrInvalidQRToken
	}

	return table, nil
}

func (mrm *MenuRoutesManager) HandleGetMenu(w http.ResponseWriter, r *http.Request) {
	table, err := mrm.resolveTable(r, r.URL.Query().Get("qr"))
	if err != nil {
		mrm.logger.Debug("Menu fetch rejected", gecho.Field("error", err))
		gecho.NotFound(w, gecho.WithMessage("This QR code is not valid"), gecho.Send())
		return
	}

	bar, err := mrm.barService.GetBar(r.Context(), table.BarId)
	if err != nil {
		mrm.logger.Error("Failed to load bar for menu", gecho.Field("error", err), gecho.Field("bar_id", table.BarId))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load the menu. Please try again"), gecho.Send())
		return
	}

	menu, err := mrm.productService.BuildMenu(r.Context(), bar, table)
	if err != nil {
		mrm.logger.Error("Failed to build menu", gecho.Field("error", err), gecho.Field("bar_id", table.BarId))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to load the menu. Please try again"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(menu),
		gecho.Send(),
	)
}
