package api

import (
	"mesalink_server/api/admin"
	"mesalink_server/api/auth"
	"mesalink_server/api/categories"
	"mesalink_server/api/demo"
	"mesalink_server/api/health"
	"mesalink_server/api/menu"
	"mesalink_server/api/middleware"
	"mesalink_server/api/orders"
	"mesalink_server/api/products"
	"mesalink_server/api/tables"
	"mesalink_server/services"
	"mesalink_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	authRoutes     *auth.AuthRoutesManager
	menuRoutes     *menu.MenuRoutesManager
	tableRoutes    *tables.TableRoutesManager
	categoryRoutes *categories.CategoryRoutesManager
	productRoutes  *products.ProductRoutesManager
	orderRoutes    *orders.OrderRoutesManager
	adminRoutes    *admin.AdminRoutesManager
	demoRoutes     *demo.DemoRoutesManager
	healthRoutes   *health.HealthRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	mw *middleware.Middleware,
	sm *services.ServiceManager,
) *routerManager {
	return &routerManager{
		authRoutes: auth.NewAuthRoutesManager(logger, sm.AuthService, cfg, mw),
		menuRoutes: menu.NewMenuRoutesManager(logger, sm.BarService, sm.TableService,
			sm.ProductService, sm.OrderService),
		tableRoutes:    tables.NewTableRoutesManager(logger, sm.TableService, mw),
		categoryRoutes: categories.NewCategoryRoutesManager(logger, sm.CategoryService, mw),
		productRoutes:  products.NewProductRoutesManager(logger, sm.ProductService, mw),
		orderRoutes:    orders.NewOrderRoutesManager(logger, sm.OrderService, sm.FeedService, mw),
		adminRoutes: admin.NewAdminRoutesManager(logger, sm.BarService, sm.AuthService,
			sm.TableService, sm.ProductService, mw),
		demoRoutes:     demo.NewDemoRoutesManager(logger, sm.EmailService),
		healthRoutes:   health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.authRoutes.RegisterRoutes(r)
	rm.menuRoutes.RegisterRoutes(r)
	rm.tableRoutes.RegisterRoutes(r)
	rm.categoryRoutes.RegisterRoutes(r)
	rm.productRoutes.RegisterRoutes(r)
	rm.orderRoutes.RegisterRoutes(r)
	rm.adminRoutes.RegisterRoutes(r)
	rm.demoRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
