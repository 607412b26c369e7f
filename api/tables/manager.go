package tables

import (
	"mesalink_server/api/middleware"
	"mesalink_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type TableRoutesManager struct {
	logger       *gecho.Logger
	tableService *services.TableService
	mw           *middleware.Middleware
}

func NewTableRoutesManager(
	logger *gecho.Logger,
	tableService *services.TableService,
	mw *middleware.Middleware,
) *TableRoutesManager {
	return &TableRoutesManager{
		logger:       logger,
		tableService: tableService,
		mw:           mw,
	}
}

func (trm *TableRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/tables", func(r chi.Router) {
		r.Use(trm.mw.StaffAuthMiddleware)

		r.Get("/", trm.HandleListTables)
		r.Post("/", trm.HandleCreateTable)
		r.Post("/bulk", trm.HandleBulkCreateTables)
		r.Put("/count", trm.HandleReconcileCount)
		r.Get("/qr/export", trm.HandleExportQRCodes)

		r.Route("/{tableID}", func(r chi.Router) {
			r.Put("/", trm.HandleUpdateTable)
			r.Delete("/", trm.HandleDeactivateTable)
			r.Post("/regenerate", trm.HandleRegenerateQR)
			r.Get("/qr", trm.HandleRenderQR)
		})
	})
}
