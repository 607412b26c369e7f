package services

import (
	"context"
	"mesalink_server/database"
	"mesalink_server/lib"
	"mesalink_server/structs"
	"mesalink_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// menuReadTimeout bounds category and product listings, which join into the
// customer menu and tolerate a slightly slower read than point lookups
const menuReadTimeout = 15 * time.Second

type CategoryService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewCategoryService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *CategoryService {
	return &CategoryService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// ListCategories returns a bar's active categories in menu order
func (cs *CategoryService) ListCategories(ctx context.Context, barId uuid.UUID) ([]tables.Category, error) {
	categories, err := database.Query[tables.Category](cs.db).
		Where("bar_id", barId).
		Where("is_active", true).
		OrderBy("display_order", database.ASC).
		OrderBy("created_at", database.ASC).
		Timeout(menuReadTimeout).
		All(ctx)
	if err != nil {
		cs.logger.Error("Failed to list categories", gecho.Field("error", err), gecho.Field("bar_id", barId))
		return nil, lib.MapDBError(err)
	}
	return categories, nil
}

// CreateCategory appends a category to the menu. Without an explicit
// position it lands at the end (max display_order + 1).
func (cs *CategoryService) CreateCategory(ctx context.Context, barId uuid.UUID, req *structs.CreateCategoryRequest) (*tables.Category, error) {
	displayOrder := 0
	if req.DisplayOrder != nil {
		displayOrder = *req.DisplayOrder
	} else {
		existing, err := cs.ListCategories(ctx, barId)
		if err != nil {
			return nil, err
		}
		for _, c := range existing {
			if c.DisplayOrder >= displayOrder {
				displayOrder = c.DisplayOrder + 1
			}
		}
	}

	category := &tables.Category{
		BarId:        barId,
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: displayOrder,
		IsActive:     true,
	}

	category, err := database.Query[tables.Category](cs.db).Insert(ctx, category)
	if err != nil {
		cs.logger.Error("Failed to create category", gecho.Field("error", err), gecho.Field("bar_id", barId))
		return nil, lib.MapDBError(err)
	}

	cs.invalidateMenu(barId)
	return category, nil
}

// GetCategory returns one category of a bar
func (cs *CategoryService) GetCategory(ctx context.Context, barId, categoryId uuid.UUID) (*tables.Category, error) {
	category, err := database.Query[tables.Category](cs.db).
		Where("id", categoryId).
		Where("bar_id", barId).
		Timeout(defaultReadTimeout).
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if category == nil {
		return nil, lib.ErrNotFound
	}
	return category, nil
}

// UpdateCategory applies a partial update; nil fields are left untouched
func (cs *CategoryService) UpdateCategory(ctx context.Context, barId, categoryId uuid.UUID, req *structs.UpdateCategoryRequest) (*tables.Category, error) {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.DisplayOrder != nil {
		updates["display_order"] = *req.DisplayOrder
	}
	if len(updates) == 0 {
		return cs.GetCategory(ctx, barId, categoryId)
	}

	updated, err := database.Query[tables.Category](cs.db).
		Where("id", categoryId).
		Where("bar_id", barId).
		UpdateReturning(ctx, updates)
	if err != nil {
		cs.logger.Error("Failed to update category", gecho.Field("error", err), gecho.Field("category_id", categoryId))
		return nil, lib.MapDBError(err)
	}
	if len(updated) == 0 {
		return nil, lib.ErrNotFound
	}

	cs.invalidateMenu(barId)
	return &updated[0], nil
}

// DeactivateCategory hides a category from the menu. Its products keep their
// category link and reappear if the category is ever reactivated.
func (cs *CategoryService) DeactivateCategory(ctx context.Context, barId, categoryId uuid.UUID) error {
	rows, err := database.Query[tables.Category](cs.db).
		Where("id", categoryId).
		Where("bar_id", barId).
		Update(ctx, map[string]any{
			"is_active": false,
		})
	if err != nil {
		cs.logger.Error("Failed to deactivate category", gecho.Field("error", err), gecho.Field("category_id", categoryId))
		return lib.MapDBError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	cs.invalidateMenu(barId)
	cs.logger.Info("Category deactivated", gecho.Field("category_id", categoryId), gecho.Field("bar_id", barId))
	return nil
}

func (cs *CategoryService) invalidateMenu(barId uuid.UUID) {
	if err := cs.cacheService.InvalidateMenu(barId); err != nil {
		cs.logger.Warn("Failed to invalidate menu cache", gecho.Field("error", err), gecho.Field("bar_id", barId))
	}
}
