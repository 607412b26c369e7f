package tables

import (
	"mesalink_server/api/middleware"
	"mesalink_server/lib"
	"mesalink_server/qr"
	"net/http"
	"strconv"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (trm *TableRoutesManager) HandleRegenerateQR(w http.ResponseWriter, r *http.Request) {
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

	table, err := trm.tableService.RegenerateQR(r.Context(), barId, tableId)
	if err != nil {
		if lib.IsNotFound(err) {
			gecho.NotFound(w, gecho.WithMessage("Table not found"), gecho.Send())
			return
		}
		gecho.InternalServerError(w, gecho.WithMessage("Unable to regenerate the QR code"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithMessage("QR code regenerated"),
		gecho.WithData(table),
		gecho.Send(),
	)
}

// renderOptions reads the optional size override from the query string
func renderOptions(r *http.Request) qr.Options {
	opts := qr.Options{}
	if raw := r.URL.Query().Get("size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil {
			opts.Size = size
		}
	}
	return opts
}

// HandleRenderQR serves one table's code as PNG (default) or SVG for
// print-quality downloads
func (trm *TableRoutesManager) HandleRenderQR(w http.ResponseWriter, r *http.Request) {
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

	if r.URL.Query().Get("format") == "svg" {
		svg, err := trm.tableService.RenderTableQRSVG(r.Context(), barId, tableId, renderOptions(r))
		if err != nil {
			trm.renderError(w, err, tableId)
			return
		}

		w.Header().Set("Content-Type", "image/svg+xml")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(svg))
		return
	}

	png, err := trm.tableService.RenderTableQR(r.Context(), barId, tableId, renderOptions(r))
	if err != nil {
		trm.renderError(w, err, tableId)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (trm *TableRoutesManager) renderError(w http.ResponseWriter, err error, tableId uuid.UUID) {
	if lib.IsNotFound(err) {
		gecho.NotFound(w, gecho.WithMessage("Table not found"), gecho.Send())
		return
	}
	trm.logger.Error("Failed to render table QR", gecho.Field("error", err), gecho.Field("table_id", tableId))
	gecho.InternalServerError(w, gecho.WithMessage("Unable to render the QR code"), gecho.Send())
}

func (trm *TableRoutesManager) HandleExportQRCodes(w http.ResponseWriter, r *http.Request) {
	barId, ok := middleware.BarIdFromContext(r.Context())
	if !ok {
		gecho.Forbidden(w, gecho.WithMessage("No bar assigned to this account"), gecho.Send())
		return
	}

	export, err := trm.tableService.ExportQRCodes(r.Context(), barId, renderOptions(r))
	if err != nil {
		gecho.InternalServerError(w, gecho.WithMessage("Unable to export QR codes"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(export),
		gecho.Send(),
	)
}
