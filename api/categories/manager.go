package categories

import (
	"mesalink_server/api/middleware"
	"mesalink_server/services"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type CategoryRoutesManager struct {
	logger          *gecho.Logger
	categoryService *services.CategoryService
	mw              *middleware.Middleware
}

func NewCategoryRoutesManager(
	logger *gecho.Logger,
	categoryService *services.CategoryService,
	mw *middleware.Middleware,
) *CategoryRoutesManager {
	return &CategoryRoutesManager{
		logger:          logger,
		categoryService: categoryService,
		mw:              mw,
	}
}

func (crm *CategoryRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/categories", func(r chi.Router) {
		r.Use(crm.mw.StaffAuthMiddleware)

		r.Get("/", crm.HandleListCategories)
		r.Post("/", crm.HandleCreateCategory)
		r.Put("/{categoryID}", crm.HandleUpdateCategory)
		r.Delete("/{categoryID}", crm.HandleDeactivateCategory)
	})
}
