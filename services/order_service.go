package services

import (
	"context"
	"fmt"
	"mesalink_server/database"
	"mesalink_server/lib"
	"mesalink_server/structs"
	"mesalink_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const (
	// joinedReadTimeout bounds order reads, which preload items and tables
	joinedReadTimeout = 20 * time.Second

	// recentOrdersLimit caps dashboard listings at the newest orders
	recentOrdersLimit = 50

	// orderNumberAttempts bounds the retry loop when two orders race for
	// the same sequential number
	orderNumberAttempts = 3
)

type OrderService struct {
	logger        *gecho.Logger
	cfg           *structs.Config
	db            *database.DB
	tableService  *TableService
	notifyService *NotifyService
}

func NewOrderService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, tableService *TableService, notifyService *NotifyService) *OrderService {
	return &OrderService{
		logger:        logger,
		cfg:           cfg,
		db:            db,
		tableService:  tableService,
		notifyService: notifyService,
	}
}

// ListOrders returns the newest orders of a bar with items and tables
// preloaded, newest first
func (os *OrderService) ListOrders(ctx context.Context, barId uuid.UUID) ([]tables.Order, error) {
	orders, err := database.Query[tables.Order](os.db).
		Where("bar_id", barId).
		OrderBy("created_at", database.DESC).
		Limit(recentOrdersLimit).
		With("Items").
		With("Table").
		Timeout(joinedReadTimeout).
		All(ctx)
	if err != nil {
		os.logger.Error("Failed to list orders", gecho.Field("error", err), gecho.Field("bar_id", barId))
		return nil, lib.MapDBError(err)
	}
	return orders, nil
}

// GetOrder returns one order of a bar with items and table preloaded
func (os *OrderService) GetOrder(ctx context.Context, barId, orderId uuid.UUID) (*tables.Order, error) {
	orders, err := database.Query[tables.Order](os.db).
		Where("o.id", orderId).
		Where("o.bar_id", barId).
		With("Items").
		With("Table").
		Timeout(joinedReadTimeout).
		All(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if len(orders) == 0 {
		return nil, lib.ErrNotFound
	}
	return &orders[0], nil
}

// CreateOrder places a customer order. The table token is the only
// credential: it must resolve to an active table of an active bar. Item
// snapshots (name, unit price) are taken from the current products, not from
// the client, and the order number is assigned transactionally per bar.
func (os *OrderService) CreateOrder(ctx context.Context, req *structs.CreateOrderRequest) (*tables.Order, error) {
	table, err := os.tableService.ValidateQR(ctx, req.TableQRValue)
	if err != nil {
		return nil, err
	}

	items, total, err := os.snapshotItems(ctx, table.BarId, req.Items)
	if err != nil {
		return nil, err
	}

	// A drifted cart total means a price changed between menu render and
	// submit; the server snapshot wins either way.
	if clientTotal := structs.OrderTotalCents(req.Items); clientTotal != total {
		os.logger.Warn("Cart total drifted from current prices",
			gecho.Field("bar_id", table.BarId),
			gecho.Field("client_total_cents", clientTotal),
			gecho.Field("server_total_cents", total),
		)
	}

	var order *tables.Order

	// The unique (bar_id, order_number) index turns a numbering race into a
	// conflict; losing the race just means picking the next number again.
	for attempt := 1; attempt <= orderNumberAttempts; attempt++ {
		order, err = os.insertOrder(ctx, table, req, items, total)
		if err == nil {
			break
		}
		if !lib.IsConflict(lib.MapDBError(err)) {
			os.logger.Error("Failed to create order",
				gecho.Field("error", err),
				gecho.Field("bar_id", table.BarId),
			)
			return nil, lib.MapDBError(err)
		}
		os.logger.Debug("Order number conflict, retrying",
			gecho.Field("bar_id", table.BarId),
			gecho.Field("attempt", attempt),
		)
	}
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	// Reload with relations so subscribers get the complete order
	full, err := os.GetOrder(ctx, table.BarId, order.Id)
	if err != nil {
		os.logger.Warn("Failed to reload order after create", gecho.Field("error", err), gecho.Field("order_id", order.Id))
		full = order
	}

	os.notifyService.PublishRow(ctx, structs.EventTableOrders, structs.EventInsert, table.BarId, full)

	os.logger.Info("Order created",
		gecho.Field("order_id", full.Id),
		gecho.Field("order_number", full.OrderNumber),
		gecho.Field("bar_id", table.BarId),
		gecho.Field("total_cents", full.TotalCents),
	)
	return full, nil
}

// snapshotItems resolves each cart line against the live products of the bar
// and fixes name, unit price and subtotal at order time
func (os *OrderService) snapshotItems(ctx context.Context, barId uuid.UUID, reqItems []structs.OrderItemRequest) ([]*tables.OrderItem, int64, error) {
	ids := make([]any, 0, len(reqItems))
	for _, item := range reqItems {
		productId, err := uuid.Parse(item.ProductId)
		if err != nil {
			return nil, 0, lib.ErrProductUnavailable
		}
		ids = append(ids, productId)
	}

	products, err := database.Query[tables.Product](os.db).
		Where("bar_id", barId).
		WhereIn("id", ids).
		Timeout(menuReadTimeout).
		All(ctx)
	if err != nil {
		return nil, 0, lib.MapDBError(err)
	}

	byId := make(map[uuid.UUID]*tables.Product, len(products))
	for i := range products {
		byId[products[i].Id] = &products[i]
	}

	var items []*tables.OrderItem
	var total int64

	for _, item := range reqItems {
		productId, _ := uuid.Parse(item.ProductId)
		product, ok := byId[productId]
		if !ok || !product.IsAvailable {
			return nil, 0, lib.ErrProductUnavailable
		}

		subtotal := int64(item.Quantity) * product.PriceCents
		total += subtotal

		items = append(items, &tables.OrderItem{
			ProductId:         product.Id,
			ProductName:       product.Name,
			ProductPriceCents: product.PriceCents,
			Quantity:          item.Quantity,
			SubtotalCents:     subtotal,
			Notes:             item.Notes,
		})
	}

	return items, total, nil
}

// insertOrder writes the order and its items in one transaction, assigning
// the next sequential order number for the bar inside the same transaction
func (os *OrderService) insertOrder(ctx context.Context, table *tables.Table, req *structs.CreateOrderRequest, items []*tables.OrderItem, total int64) (*tables.Order, error) {
	return database.RunInTxWithResult(ctx, os.db, func(ctx context.Context, tx bun.Tx) (*tables.Order, error) {
		var nextNumber int
		err := tx.NewSelect().
			Model((*tables.Order)(nil)).
			ColumnExpr("COALESCE(MAX(order_number), 0) + 1").
			Where("bar_id = ?", table.BarId).
			Scan(ctx, &nextNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to assign order number: %w", err)
		}

		order := &tables.Order{
			BarId:        table.BarId,
			TableQRValue: table.QRCodeValue,
			OrderNumber:  nextNumber,
			Status:       tables.OrderStatusPending,
			TotalCents:   total,
			Notes:        req.Notes,
		}

		if _, err := tx.NewInsert().Model(order).Returning("*").Exec(ctx); err != nil {
			return nil, err
		}

		for _, item := range items {
			item.OrderId = order.Id
		}
		if _, err := tx.NewInsert().Model(&items).Returning("*").Exec(ctx); err != nil {
			return nil, err
		}

		order.Items = items
		return order, nil
	})
}

// UpdateOrderStatus moves an order through the workflow. Only whitelisted
// transitions are applied; everything else fails with ErrInvalidTransition
// and leaves the row untouched.
func (os *OrderService) UpdateOrderStatus(ctx context.Context, barId, orderId uuid.UUID, next tables.OrderStatus) (*tables.Order, error) {
	if !next.Valid() {
		return nil, lib.ErrInvalidTransition
	}

	order, err := os.GetOrder(ctx, barId, orderId)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransition(next) {
		os.logger.Warn("Rejected order status transition",
			gecho.Field("order_id", orderId),
			gecho.Field("from", order.Status),
			gecho.Field("to", next),
		)
		return nil, lib.ErrInvalidTransition
	}

	// Guard the update with the expected current status so two concurrent
	// transitions can't both win
	updated, err := database.Query[tables.Order](os.db).
		Where("id", orderId).
		Where("bar_id", barId).
		Where("status", order.Status).
		UpdateReturning(ctx, map[string]any{
			"status":     next,
			"updated_at": time.Now(),
		})
	if err != nil {
		os.logger.Error("Failed to update order status", gecho.Field("error", err), gecho.Field("order_id", orderId))
		return nil, lib.MapDBError(err)
	}
	if len(updated) == 0 {
		return nil, lib.ErrInvalidTransition
	}

	order.Status = updated[0].Status
	order.UpdatedAt = updated[0].UpdatedAt

	os.notifyService.PublishRow(ctx, structs.EventTableOrders, structs.EventUpdate, barId, order)

	os.logger.Info("Order status updated",
		gecho.Field("order_id", orderId),
		gecho.Field("status", next),
	)
	return order, nil
}

// billStampLayout is the timestamp appended to a bill request marker
const billStampLayout = "2006-01-02 15:04:05"

// RequestBill marks every open order of the scanned table so staff see the
// request inline on the dashboard. Terminal orders are left alone; the call
// reports how many orders were stamped.
func (os *OrderService) RequestBill(ctx context.Context, req *structs.BillRequest) (int, error) {
	table, err := os.tableService.ValidateQR(ctx, req.TableQRValue)
	if err != nil {
		return 0, err
	}

	stamp := fmt.Sprintf("CUENTA SOLICITADA - %s", time.Now().Format(billStampLayout))

	updated, err := database.Query[tables.Order](os.db).
		Where("bar_id", table.BarId).
		Where("table_qr_value", table.QRCodeValue).
		WhereIn("status", []any{
			tables.OrderStatusPending,
			tables.OrderStatusPreparing,
			tables.OrderStatusReady,
		}).
		UpdateReturning(ctx, map[string]any{
			"notes":      stamp,
			"updated_at": time.Now(),
		})
	if err != nil {
		os.logger.Error("Failed to stamp bill request", gecho.Field("error", err), gecho.Field("bar_id", table.BarId))
		return 0, lib.MapDBError(err)
	}

	for i := range updated {
		os.notifyService.PublishRow(ctx, structs.EventTableOrders, structs.EventUpdate, table.BarId, &updated[i])
	}

	os.logger.Info("Bill requested",
		gecho.Field("bar_id", table.BarId),
		gecho.Field("table_id", table.Id),
		gecho.Field("orders_stamped", len(updated)),
	)
	return len(updated), nil
}
