package services

import (
	"context"
	"mesalink_server/database"
	"mesalink_server/lib"
	"mesalink_server/structs"
	"mesalink_server/structs/tables"
	"sort"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type ProductService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewProductService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *ProductService {
	return &ProductService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// ListProducts returns a bar's products with their categories preloaded
func (ps *ProductService) ListProducts(ctx context.Context, barId uuid.UUID) ([]tables.Product, error) {
	products, err := database.Query[tables.Product](ps.db).
		Where("bar_id", barId).
		OrderBy("created_at", database.ASC).
		With("Category").
		Timeout(menuReadTimeout).
		All(ctx)
	if err != nil {
		ps.logger.Error("Failed to list products", gecho.Field("error", err), gecho.Field("bar_id", barId))
		return nil, lib.MapDBError(err)
	}
	return products, nil
}

// ListAvailableProducts returns the products a customer may order, by name.
// The public menu is served from this; the staff dashboard sees everything
// through ListProducts.
func (ps *ProductService) ListAvailableProducts(ctx context.Context, barId uuid.UUID) ([]tables.Product, error) {
	products, err := database.Query[tables.Product](ps.db).
		Where("bar_id", barId).
		Where("is_available", true).
		OrderBy("name", database.ASC).
		With("Category").
		Timeout(menuReadTimeout).
		All(ctx)
	if err != nil {
		ps.logger.Error("Failed to list available products", gecho.Field("error", err), gecho.Field("bar_id", barId))
		return nil, lib.MapDBError(err)
	}
	return menuProducts(products), nil
}

// menuProducts keeps the orderable products in name order. Status is the
// source of truth for availability; the is_available column is only its
// indexed projection.
func menuProducts(products []tables.Product) []tables.Product {
	out := make([]tables.Product, 0, len(products))
	for _, p := range products {
		if p.Status.Available() {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// GetProduct returns one product of a bar
func (ps *ProductService) GetProduct(ctx context.Context, barId, productId uuid.UUID) (*tables.Product, error) {
	product, err := database.Query[tables.Product](ps.db).
		Where("id", productId).
		Where("bar_id", barId).
		Timeout(defaultReadTimeout).
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}
	return product, nil
}

// CreateProduct adds a product to the menu, available by default
func (ps *ProductService) CreateProduct(ctx context.Context, barId uuid.UUID, req *structs.CreateProductRequest) (*tables.Product, error) {
	product := &tables.Product{
		BarId:       barId,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		ImageURL:    req.ImageURL,
	}
	product.SetStatus(tables.ProductStatusAvailable)

	if req.CategoryId != "" {
		categoryId, err := uuid.Parse(req.CategoryId)
		if err != nil {
			return nil, lib.ErrNotFound
		}
		product.CategoryId = &categoryId
	}

	product, err := database.Query[tables.Product](ps.db).Insert(ctx, product)
	if err != nil {
		ps.logger.Error("Failed to create product", gecho.Field("error", err), gecho.Field("bar_id", barId))
		return nil, lib.MapDBError(err)
	}

	ps.invalidateMenu(barId)
	ps.logger.Info("Product created", gecho.Field("product_id", product.Id), gecho.Field("bar_id", barId))
	return product, nil
}

// UpdateProduct applies a partial update; nil fields are left untouched
func (ps *ProductService) UpdateProduct(ctx context.Context, barId, productId uuid.UUID, req *structs.UpdateProductRequest) (*tables.Product, error) {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.PriceCents != nil {
		updates["price_cents"] = *req.PriceCents
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.CategoryId != nil {
		categoryId, err := uuid.Parse(*req.CategoryId)
		if err != nil {
			return nil, lib.ErrNotFound
		}
		updates["category_id"] = categoryId
	}
	if len(updates) == 0 {
		return ps.GetProduct(ctx, barId, productId)
	}
	updates["updated_at"] = time.Now()

	updated, err := database.Query[tables.Product](ps.db).
		Where("id", productId).
		Where("bar_id", barId).
		UpdateReturning(ctx, updates)
	if err != nil {
		ps.logger.Error("Failed to update product", gecho.Field("error", err), gecho.Field("product_id", productId))
		return nil, lib.MapDBError(err)
	}
	if len(updated) == 0 {
		return nil, lib.ErrNotFound
	}

	ps.invalidateMenu(barId)
	return &updated[0], nil
}

// SetProductStatus flips a product between available and temporarily
// unavailable. The availability flag is derived from the status here and
// nowhere else.
func (ps *ProductService) SetProductStatus(ctx context.Context, barId, productId uuid.UUID, status tables.ProductStatus) (*tables.Product, error) {
	if !status.Valid() {
		return nil, lib.ErrNotFound
	}

	product, err := ps.GetProduct(ctx, barId, productId)
	if err != nil {
		return nil, err
	}

	product.SetStatus(status)

	updated, err := database.Query[tables.Product](ps.db).
		Where("id", productId).
		Where("bar_id", barId).
		UpdateReturning(ctx, map[string]any{
			"status":       product.Status,
			"is_available": product.IsAvailable,
			"updated_at":   time.Now(),
		})
	if err != nil {
		ps.logger.Error("Failed to update product status", gecho.Field("error", err), gecho.Field("product_id", productId))
		return nil, lib.MapDBError(err)
	}
	if len(updated) == 0 {
		return nil, lib.ErrNotFound
	}

	ps.invalidateMenu(barId)
	ps.logger.Info("Product status updated",
		gecho.Field("product_id", productId),
		gecho.Field("status", status),
	)
	return &updated[0], nil
}

// DeleteProduct removes a product from the menu permanently. Order items
// keep their name/price snapshot, so history is unaffected.
func (ps *ProductService) DeleteProduct(ctx context.Context, barId, productId uuid.UUID) error {
	rows, err := database.Query[tables.Product](ps.db).
		Where("id", productId).
		Where("bar_id", barId).
		Delete(ctx)
	if err != nil {
		ps.logger.Error("Failed to delete product", gecho.Field("error", err), gecho.Field("product_id", productId))
		return lib.MapDBError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	ps.invalidateMenu(barId)
	ps.logger.Info("Product deleted", gecho.Field("product_id", productId), gecho.Field("bar_id", barId))
	return nil
}

// BuildMenu assembles the public menu for a validated table: the bar's
// profile, the scanned table, active categories and the available products
// by name. Cached per bar/table until the next menu mutation.
func (ps *ProductService) BuildMenu(ctx context.Context, bar *tables.Bar, table *tables.Table) (*structs.MenuPayload, error) {
	cached, err := ps.cacheService.GetMenu(bar.Id, table.QRCodeValue)
	if err == nil && cached != nil {
		return cached, nil
	}

	categories, err := database.Query[tables.Category](ps.db).
		Where("bar_id", bar.Id).
		Where("is_active", true).
		OrderBy("display_order", database.ASC).
		Timeout(menuReadTimeout).
		All(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	products, err := ps.ListAvailableProducts(ctx, bar.Id)
	if err != nil {
		return nil, err
	}

	menu := &structs.MenuPayload{
		Bar:        bar,
		Table:      table,
		Categories: categories,
		Products:   products,
	}

	if err := ps.cacheService.SetMenu(bar.Id, table.QRCodeValue, menu); err != nil {
		ps.logger.Warn("Failed to cache menu", gecho.Field("error", err), gecho.Field("bar_id", bar.Id))
	}

	return menu, nil
}

func (ps *ProductService) invalidateMenu(barId uuid.UUID) {
	if err := ps.cacheService.InvalidateMenu(barId); err != nil {
		ps.logger.Warn("Failed to invalidate menu cache", gecho.Field("error", err), gecho.Field("bar_id", barId))
	}
}
