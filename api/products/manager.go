package products

import (
	"mesalink_server/api/middleware"
	"mesalink_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	productService *services.ProductService
	mw             *middleware.Middleware
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	productService *services.ProductService,
	mw *middleware.Middleware,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		productService: productService,
		mw:             mw,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/products", func(r chi.Router) {
		r.Use(prm.mw.StaffAuthMiddleware)

		r.Get("/", prm.HandleListProducts)
		r.Post("/", prm.HandleCreateProduct)

		r.Route("/{productID}", func(r chi.Router) {
			r.Get("/", prm.HandleGetProduct)
			r.Put("/", prm.HandleUpdateProduct)
			r.Delete("/", prm.HandleDeleteProduct)
			r.Patch("/status", prm.HandleSetStatus)
		})
	})
}
