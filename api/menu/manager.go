package menu

import (
	"mesalink_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

// MenuRoutesManager serves the customer-facing routes. They carry no session;
// the scanned table token is the only credential.
type MenuRoutesManager struct {
	logger         *gecho.Logger
	barService     *services.BarService
	tableService   *services.TableService
	productService *services.ProductService
	orderService   *services.OrderService
}

func NewMenuRoutesManager(
	logger *gecho.Logger,
	barService *services.BarService,
	tableService *services.TableService,
	productService *services.ProductService,
	orderService *services.OrderService,
) *MenuRoutesManager {
	return &MenuRoutesManager{
		logger:         logger,
		barService:     barService,
		tableService:   tableService,
		productService: productService,
		orderService:   orderService,
	}
}

func (mrm *MenuRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/bar/{barID}", func(r chi.Router) {
		r.Get("/menu", mrm.HandleGetMenu)
		r.Post("/orders", mrm.HandleCreateOrder)
		r.Post("/bill", mrm.HandleRequestBill)
	})
}
