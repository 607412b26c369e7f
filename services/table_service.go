package services

import (
	"context"
	"fmt"
	"mesalink_server/database"
	"mesalink_server/lib"
	"mesalink_server/qr"
	"mesalink_server/structs"
	"mesalink_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// defaultReadTimeout bounds simple single-table reads
const defaultReadTimeout = 10 * time.Second

type TableService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewTableService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *TableService {
	return &TableService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

// withMenuURL pairs a table with the menu URL its printed code points at
func (ts *TableService) withMenuURL(table *tables.Table) *structs.TableWithQR {
	return &structs.TableWithQR{
		Table:   table,
		MenuURL: qr.MenuURL(ts.cfg.App.PublicOrigin, table.BarId, table.QRCodeValue),
	}
}

// ListTables returns a bar's active tables with their menu URLs
func (ts *TableService) ListTables(ctx context.Context, barId uuid.UUID) ([]*structs.TableWithQR, error) {
	rows, err := database.Query[tables.Table](ts.db).
		Where("bar_id", barId).
		Where("is_active", true).
		OrderBy("created_at", database.ASC).
		Timeout(defaultReadTimeout).
		All(ctx)
	if err != nil {
		ts.logger.Error("Failed to list tables", gecho.Field("error", err), gecho.Field("bar_id", barId))
		return nil, lib.MapDBError(err)
	}

	out := make([]*structs.TableWithQR, 0, len(rows))
	for i := range rows {
		out = append(out, ts.withMenuURL(&rows[i]))
	}
	return out, nil
}

// GetTable returns one active table of a bar
func (ts *TableService) GetTable(ctx context.Context, barId, tableId uuid.UUID) (*tables.Table, error) {
	table, err := database.Query[tables.Table](ts.db).
		Where("id", tableId).
		Where("bar_id", barId).
		Timeout(defaultReadTimeout).
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if table == nil || !table.IsActive {
		return nil, lib.ErrNotFound
	}
	return table, nil
}

// CreateTable creates a table with a freshly minted QR token
func (ts *TableService) CreateTable(ctx context.Context, barId uuid.UUID, req *structs.CreateTableRequest) (*structs.TableWithQR, error) {
	table := &tables.Table{
		BarId:       barId,
		TableName:   req.TableName,
		TableNumber: req.TableNumber,
		QRCodeValue: qr.GenerateToken(),
		IsActive:    true,
	}

	table, err := database.Query[tables.Table](ts.db).Insert(ctx, table)
	if err != nil {
		ts.logger.Error("Failed to create table", gecho.Field("error", err), gecho.Field("bar_id", barId))
		return nil, lib.MapDBError(err)
	}

	ts.logger.Info("Table created",
		gecho.Field("table_id", table.Id),
		gecho.Field("bar_id", barId),
	)
	return ts.withMenuURL(table), nil
}

// BulkCreateTables creates many tables in one call. Entries are independent:
// a failed entry is reported in the result and does not roll back the rest.
func (ts *TableService) BulkCreateTables(ctx context.Context, barId uuid.UUID, req *structs.BulkCreateTablesRequest) ([]*structs.TableWithQR, []string) {
	var created []*structs.TableWithQR
	var failures []string

	for _, entry := range req.Tables {
		table, err := ts.CreateTable(ctx, barId, &structs.CreateTableRequest{
			TableName:   entry.Name,
			TableNumber: entry.Number,
		})
		if err != nil {
			failures = append(failures, fmt.Sprintf("%s: %v", entry.Name, err))
			continue
		}
		created = append(created, table)
	}

	return created, failures
}

// UpdateTable renames a table. The QR token is untouched; use RegenerateQR
// to rotate it.
func (ts *TableService) UpdateTable(ctx context.Context, barId, tableId uuid.UUID, req *structs.UpdateTableRequest) (*structs.TableWithQR, error) {
	updated, err := database.Query[tables.Table](ts.db).
		Where("id", tableId).
		Where("bar_id", barId).
		UpdateReturning(ctx, map[string]any{
			"table_name":   req.TableName,
			"table_number": req.TableNumber,
			"updated_at":   time.Now(),
		})
	if err != nil {
		ts.logger.Error("Failed to update table", gecho.Field("error", err), gecho.Field("table_id", tableId))
		return nil, lib.MapDBError(err)
	}
	if len(updated) == 0 {
		return nil, lib.ErrNotFound
	}

	return ts.withMenuURL(&updated[0]), nil
}

// DeactivateTable removes a table from service without deleting its history
func (ts *TableService) DeactivateTable(ctx context.Context, barId, tableId uuid.UUID) error {
	rows, err := database.Query[tables.Table](ts.db).
		Where("id", tableId).
		Where("bar_id", barId).
		Update(ctx, map[string]any{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	if err != nil {
		ts.logger.Error("Failed to deactivate table", gecho.Field("error", err), gecho.Field("table_id", tableId))
		return lib.MapDBError(err)
	}
	if rows == 0 {
		return lib.ErrNotFound
	}

	ts.logger.Info("Table deactivated", gecho.Field("table_id", tableId), gecho.Field("bar_id", barId))
	return nil
}

// RegenerateQR rotates a table's token. Previously printed codes for the
// table stop resolving immediately.
func (ts *TableService) RegenerateQR(ctx context.Context, barId, tableId uuid.UUID) (*structs.TableWithQR, error) {
	updated, err := database.Query[tables.Table](ts.db).
		Where("id", tableId).
		Where("bar_id", barId).
		Where("is_active", true).
		UpdateReturning(ctx, map[string]any{
			"qr_code_value": qr.GenerateToken(),
			"updated_at":    time.Now(),
		})
	if err != nil {
		ts.logger.Error("Failed to regenerate table token", gecho.Field("error", err), gecho.Field("table_id", tableId))
		return nil, lib.MapDBError(err)
	}
	if len(updated) == 0 {
		return nil, lib.ErrNotFound
	}

	ts.logger.Info("Table QR token rotated", gecho.Field("table_id", tableId), gecho.Field("bar_id", barId))
	return ts.withMenuURL(&updated[0]), nil
}

// ReconcileTableCount adjusts a bar's active table set to the requested
// count. Missing tables are created as "Mesa N"; surplus tables are
// deactivated newest-first so the original seating survives.
func (ts *TableService) ReconcileTableCount(ctx context.Context, barId uuid.UUID, count int) ([]*structs.TableWithQR, error) {
	current, err := database.Query[tables.Table](ts.db).
		Where("bar_id", barId).
		Where("is_active", true).
		OrderBy("created_at", database.ASC).
		Timeout(defaultReadTimeout).
		All(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	switch {
	case len(current) < count:
		for n := len(current) + 1; n <= count; n++ {
			name := fmt.Sprintf("Mesa %d", n)
			if _, err := ts.CreateTable(ctx, barId, &structs.CreateTableRequest{
				TableName:   name,
				TableNumber: fmt.Sprintf("%d", n),
			}); err != nil {
				return nil, err
			}
		}

	case len(current) > count:
		for i := len(current) - 1; i >= count; i-- {
			if err := ts.DeactivateTable(ctx, barId, current[i].Id); err != nil {
				return nil, err
			}
		}
	}

	return ts.ListTables(ctx, barId)
}

// ValidateQR resolves a scanned token to its table. Inactive tables and
// tables of inactive bars both resolve to ErrInvalidQRToken so a revoked
// code is indistinguishable from one that never existed.
func (ts *TableService) ValidateQR(ctx context.Context, token string) (*tables.Table, error) {
	if !qr.ValidToken(token) {
		return nil, lib.ErrInvalidQRToken
	}

	table, err := database.Query[tables.Table](ts.db).
		Where("qr_code_value", token).
		Timeout(defaultReadTimeout).
		First(ctx)
	if err != nil {
		ts.logger.Error("Failed to resolve QR token", gecho.Field("error", err))
		return nil, lib.MapDBError(err)
	}
	if table == nil || !table.IsActive {
		return nil, lib.ErrInvalidQRToken
	}

	bar, err := database.FindByID[tables.Bar](ts.db, ctx, table.BarId)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if bar == nil || !bar.IsActive {
		return nil, lib.ErrInvalidQRToken
	}

	return table, nil
}

// RenderTableQR renders one table's code as a downloadable PNG
func (ts *TableService) RenderTableQR(ctx context.Context, barId, tableId uuid.UUID, opts qr.Options) ([]byte, error) {
	table, err := ts.GetTable(ctx, barId, tableId)
	if err != nil {
		return nil, err
	}

	url := qr.MenuURL(ts.cfg.App.PublicOrigin, table.BarId, table.QRCodeValue)
	return qr.RenderPNG(url, opts)
}

// RenderTableQRSVG renders one table's code as a scalable SVG, used for
// print-quality exports
func (ts *TableService) RenderTableQRSVG(ctx context.Context, barId, tableId uuid.UUID, opts qr.Options) (string, error) {
	table, err := ts.GetTable(ctx, barId, tableId)
	if err != nil {
		return "", err
	}

	url := qr.MenuURL(ts.cfg.App.PublicOrigin, table.BarId, table.QRCodeValue)
	return qr.RenderSVG(url, opts)
}

// ExportQRCodes renders every active table's code as an embedded data URL.
// A table whose render fails is reported in its entry and skipped, the rest
// of the export still succeeds.
func (ts *TableService) ExportQRCodes(ctx context.Context, barId uuid.UUID, opts qr.Options) ([]structs.TableQRExport, error) {
	list, err := ts.ListTables(ctx, barId)
	if err != nil {
		return nil, err
	}

	out := make([]structs.TableQRExport, 0, len(list))
	for _, table := range list {
		entry := structs.TableQRExport{
			TableId:     table.Id.String(),
			TableName:   table.TableName,
			TableNumber: table.TableNumber,
			MenuURL:     table.MenuURL,
		}

		dataURL, err := qr.RenderDataURL(table.MenuURL, opts)
		if err != nil {
			ts.logger.Warn("Failed to render QR for export",
				gecho.Field("error", err),
				gecho.Field("table_id", table.Id),
			)
			entry.Error = err.Error()
		} else {
			entry.QRDataURL = dataURL
		}

		out = append(out, entry)
	}

	return out, nil
}
