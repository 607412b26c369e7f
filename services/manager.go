package services

import (
	"mesalink_server/database"
	"mesalink_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService     *AuthService
	BarService      *BarService
	TableService    *TableService
	CategoryService *CategoryService
	ProductService  *ProductService
	OrderService    *OrderService
	FeedService     *FeedService
	NotifyService   *NotifyService
	CacheService    *CacheService
	EmailService    *EmailService
	HealthService   *HealthService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	cacheService := NewCacheService(logger, cfg)
	notifyService := NewNotifyService(logger)
	authService := NewAuthService(cfg, logger, db)
	tableService := NewTableService(logger, cfg, db)
	categoryService := NewCategoryService(logger, db, cacheService)
	productService := NewProductService(logger, db, cacheService)
	orderService := NewOrderService(logger, cfg, db, tableService, notifyService)
	feedService := NewFeedService(logger, orderService, notifyService)
	barService := NewBarService(logger, cfg, db, tableService, cacheService)
	emailService := NewEmailService(logger, cfg, db)
	healthService := NewHealthService(logger, db, cacheService)

	return &ServiceManager{
		AuthService:     authService,
		BarService:      barService,
		TableService:    tableService,
		CategoryService: categoryService,
		ProductService:  productService,
		OrderService:    orderService,
		FeedService:     feedService,
		NotifyService:   notifyService,
		CacheService:    cacheService,
		EmailService:    emailService,
		HealthService:   healthService,
	}
}

// Close releases long-lived resources held by the services
func (sm *ServiceManager) Close() {
	sm.FeedService.Close()
	_ = sm.CacheService.Close()
}
