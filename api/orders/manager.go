package orders

import (
	"mesalink_server/api/middleware"
	"mesalink_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type OrderRoutesManager struct {
	logger       *gecho.Logger
	orderService *services.OrderService
	feedService  *services.FeedService
	mw           *middleware.Middleware
}

func NewOrderRoutesManager(
	logger *gecho.Logger,
	orderService *services.OrderService,
	feedService *services.FeedService,
	mw *middleware.Middleware,
) *OrderRoutesManager {
	return &OrderRoutesManager{
		logger:       logger,
		orderService: orderService,
		feedService:  feedService,
		mw:           mw,
	}
}

func (orm *OrderRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Use(orm.mw.StaffAuthMiddleware)

		r.Get("/", orm.HandleListOrders)
		r.Get("/stats", orm.HandleOrderStats)
		r.Get("/search", orm.HandleSearchOrders)
		r.Get("/events", orm.HandleOrderEvents)
		r.Patch("/{orderID}/status", orm.HandleUpdateStatus)
	})
}
