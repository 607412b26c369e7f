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
	"github.com/uptrace/bun"
)

type BarService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	tableService *TableService
	cacheService *CacheService
}

func NewBarService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, tableService *TableService, cacheService *CacheService) *BarService {
	return &BarService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		tableService: tableService,
		cacheService: cacheService,
	}
}

// ListBars returns every bar, active and inactive, newest first
func (bs *BarService) ListBars(ctx context.Context) ([]tables.Bar, error) {
	bars, err := database.Query[tables.Bar](bs.db).
		OrderBy("created_at", database.DESC).
		Timeout(defaultReadTimeout).
		All(ctx)
	if err != nil {
		bs.logger.Error("Failed to list bars", gecho.Field("error", err))
		return nil, lib.MapDBError(err)
	}
	return bars, nil
}

// GetBar returns one bar by id
func (bs *BarService) GetBar(ctx context.Context, barId uuid.UUID) (*tables.Bar, error) {
	bar, err := database.FindByID[tables.Bar](bs.db, ctx, barId)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if bar == nil {
		return nil, lib.ErrNotFound
	}
	return bar, nil
}

// CreateBar provisions a tenant: the bar row and its staff login commit
// together, so a bar never exists without a way to run it. Initial tables
// are created after the commit; a table failure leaves a usable bar behind.
func (bs *BarService) CreateBar(ctx context.Context, req *structs.CreateBarRequest) (*tables.Bar, error) {
	passwordHash, err := lib.HashPassword(req.StaffPassword, lib.DefaultArgonParams)
	if err != nil {
		bs.logger.Error("Failed to hash staff password", gecho.Field("error", err))
		return nil, err
	}

	bar, err := database.RunInTxWithResult(ctx, bs.db, func(ctx context.Context, tx bun.Tx) (*tables.Bar, error) {
		bar := &tables.Bar{
			Name:        req.Name,
			Description: req.Description,
			Address:     req.Address,
			Phone:       req.Phone,
			Email:       req.Email,
			IsActive:    true,
		}
		if _, err := tx.NewInsert().Model(bar).Returning("*").Exec(ctx); err != nil {
			return nil, err
		}

		staff := &tables.StaffUser{
			BarId:        &bar.Id,
			Email:        req.StaffEmail,
			PasswordHash: passwordHash,
			Role:         tables.RoleStaff,
		}
		if _, err := tx.NewInsert().Model(staff).Returning("*").Exec(ctx); err != nil {
			return nil, err
		}

		return bar, nil
	})
	if err != nil {
		mappedErr := lib.MapDBError(err)
		if lib.IsConflict(mappedErr) {
			bs.logger.Warn("Bar provisioning failed - duplicate staff email", gecho.Field("email", req.StaffEmail))
		} else {
			bs.logger.Error("Failed to provision bar", gecho.Field("error", err), gecho.Field("name", req.Name))
		}
		return nil, mappedErr
	}

	if req.TableCount > 0 {
		if _, err := bs.tableService.ReconcileTableCount(ctx, bar.Id, req.TableCount); err != nil {
			bs.logger.Warn("Failed to create initial tables",
				gecho.Field("error", err),
				gecho.Field("bar_id", bar.Id),
			)
		}
	}

	bs.logger.Info("Bar provisioned",
		gecho.Field("bar_id", bar.Id),
		gecho.Field("name", bar.Name),
		gecho.Field("table_count", req.TableCount),
	)
	return bar, nil
}

// UpdateBar applies a partial update to the bar profile
func (bs *BarService) UpdateBar(ctx context.Context, barId uuid.UUID, req *structs.UpdateBarRequest) (*tables.Bar, error) {
	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.LogoURL != nil {
		updates["logo_url"] = *req.LogoURL
	}
	if req.CoverImageURL != nil {
		updates["cover_image_url"] = *req.CoverImageURL
	}
	if len(updates) == 0 {
		return bs.GetBar(ctx, barId)
	}
	updates["updated_at"] = time.Now()

	updated, err := database.Query[tables.Bar](bs.db).
		Where("id", barId).
		UpdateReturning(ctx, updates)
	if err != nil {
		bs.logger.Error("Failed to update bar", gecho.Field("error", err), gecho.Field("bar_id", barId))
		return nil, lib.MapDBError(err)
	}
	if len(updated) == 0 {
		return nil, lib.ErrNotFound
	}

	bs.invalidateMenu(barId)
	return &updated[0], nil
}

// DeactivateBar takes a tenant out of service. QR tokens stop resolving and
// staff logins are refused, but every row survives for a later reactivation
// or purge.
func (bs *BarService) DeactivateBar(ctx context.Context, barId uuid.UUID) error {
	rows, err := database.Query[tables.Bar](bs.db).
		Where("id", barId).
		Update(ctx, map[string]any{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if err != nil {
		bs.logger.Error("Failed to deactivate bar", gecho.Field("error", err), gecho.Field("bar_id", barId))
		return lib.MapDBError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	bs.invalidateMenu(barId)
	bs.logger.Info("Bar deactivated", gecho.Field("bar_id", barId))
	return nil
}

// PurgeBar irrevocably deletes a tenant and everything under it, children
// first, in a single transaction. Deactivation is the everyday removal
// path; purge exists for data erasure requests.
func (bs *BarService) PurgeBar(ctx context.Context, barId uuid.UUID) error {
	err := database.RunInTx(ctx, bs.db, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*tables.OrderItem)(nil)).
			Where("order_id IN (SELECT id FROM orders WHERE bar_id = ?)", barId).
			Exec(ctx); err != nil {
			return err
		}

		if _, err := tx.NewDelete().Model((*tables.Order)(nil)).Where("bar_id = ?", barId).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewDelete().Model((*tables.Product)(nil)).Where("bar_id = ?", barId).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewDelete().Model((*tables.Category)(nil)).Where("bar_id = ?", barId).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewDelete().Model((*tables.Table)(nil)).Where("bar_id = ?", barId).Exec(ctx); err != nil {
			return err
		}
		if _, err := tx.NewDelete().Model((*tables.StaffUser)(nil)).Where("bar_id = ?", barId).Exec(ctx); err != nil {
			return err
		}

		res, err := tx.NewDelete().Model((*tables.Bar)(nil)).Where("id = ?", barId).Exec(ctx)
		if err != nil {
			return err
		}
		if rows, _ := res.RowsAffected(); rows == 0 {
			return lib.ErrNotFound
		}
		return nil
	})
	if err != nil {
		if !lib.IsNotFound(err) {
			bs.logger.Error("Failed to purge bar", gecho.Field("error", err), gecho.Field("bar_id", barId))
		}
		return lib.MapDBError(err)
	}

	bs.invalidateMenu(barId)
	bs.logger.Info("Bar purged", gecho.Field("bar_id", barId))
	return nil
}

func (bs *BarService) invalidateMenu(barId uuid.UUID) {
	if err := bs.cacheService.InvalidateMenu(barId); err != nil {
		bs.logger.Warn("Failed to invalidate menu cache", gecho.Field("error", err), gecho.Field("bar_id", barId))
	}
}
