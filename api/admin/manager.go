package admin

import (
	"mesalink_server/api/middleware"
	"mesalink_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// AdminRoutesManager serves the provisioning console: tenant lifecycle and
// staff account management. Everything here sits behind AdminAuthMiddleware.
type AdminRoutesManager struct {
	logger         *gecho.Logger
	barService     *services.BarService
	authService    *services.AuthService
	tableService   *services.TableService
	productService *services.ProductService
	mw             *middleware.Middleware
}

func NewAdminRoutesManager(
	logger *gecho.Logger,
	barService *services.BarService,
	authService *services.AuthService,
	tableService *services.TableService,
	productService *services.ProductService,
	mw *middleware.Middleware,
) *AdminRoutesManager {
	return &AdminRoutesManager{
		logger:         logger,
		barService:     barService,
		authService:    authService,
		tableService:   tableService,
		productService: productService,
		mw:             mw,
	}
}

func (arm *AdminRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(arm.mw.AdminAuthMiddleware)

		r.Route("/bars", func(r chi.Router) {
			r.Get("/", arm.HandleListBars)
			r.Post("/", arm.HandleCreateBar)

			r.Route("/{barID}", func(r chi.Router) {
				r.Get("/", arm.HandleGetBar)
				r.Put("/", arm.HandleUpdateBar)
				r.Delete("/", arm.HandleDeactivateBar)
				r.Delete("/purge", arm.HandlePurgeBar)
				r.Post("/staff", arm.HandleCreateStaff)
				r.Post("/tables/bulk", arm.HandleBulkCreateTables)
				r.Put("/tables/count", arm.HandleReconcileTableCount)
				r.Delete("/products/{productID}", arm.HandlePurgeProduct)
			})
		})
	})
}
