// Package feed maintains the in-memory live view of a bar's recent orders
// that the staff dashboard is served from. The view is updated incrementally
// from change events and periodically replaced from the database.
package feed

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"mesalink_server/structs/tables"

	"github.com/google/uuid"
)

// MaxOrders caps the view at the most recent orders
const MaxOrders = 50

// Stats summarizes the current view for the dashboard header
type Stats struct {
	Total        int                        `json:"total"`
	ByStatus     map[tables.OrderStatus]int `json:"by_status"`
	OpenBills    int                        `json:"open_bills"`
	RevenueCents int64                      `json:"revenue_cents"`
}

// Feed holds the recent orders of a single bar, newest first
type Feed struct {
	mu     sync.RWMutex
	orders []tables.Order
}

func New() *Feed {
	return &Feed{}
}

// ReplaceAll swaps the whole view, used on initial load and periodic resync
func (f *Feed) ReplaceAll(orders []tables.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.orders = make([]tables.Order, len(orders))
	copy(f.orders, orders)
	f.sortAndTrimLocked()
}

// Upsert applies an inserted or updated order to the view
func (f *Feed) Upsert(order tables.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.orders {
		if f.orders[i].Id == order.Id {
			f.orders[i] = order
			f.sortAndTrimLocked()
			return
		}
	}

	f.orders = append(f.orders, order)
	f.sortAndTrimLocked()
}

// Remove drops an order from the view
func (f *Feed) Remove(id uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.orders {
		if f.orders[i].Id == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return
		}
	}
}

// All returns a copy of the current view, newest first
func (f *Feed) All() []tables.Order {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]tables.Order, len(f.orders))
	copy(out, f.orders)
	return out
}

// Get returns the order with the given id, if present
func (f *Feed) Get(id uuid.UUID) (tables.Order, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for i := range f.orders {
		if f.orders[i].Id == id {
			return f.orders[i], true
		}
	}
	return tables.Order{}, false
}

// Len returns the number of orders in the view
func (f *Feed) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.orders)
}

// ByStatus returns the orders currently in the given status, newest first
func (f *Feed) ByStatus(status tables.OrderStatus) []tables.Order {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var out []tables.Order
	for i := range f.orders {
		if f.orders[i].Status == status {
			out = append(out, f.orders[i])
		}
	}
	return out
}

// Search filters the view by order number, table name or item product name
func (f *Feed) Search(query string) []tables.Order {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return f.All()
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	var out []tables.Order
	for i := range f.orders {
		if matches(&f.orders[i], query) {
			out = append(out, f.orders[i])
		}
	}
	return out
}

func matches(order *tables.Order, query string) bool {
	if strings.Contains(strconv.Itoa(order.OrderNumber), query) {
		return true
	}
	if order.Table != nil {
		if strings.Contains(strings.ToLower(order.Table.TableName), query) ||
			strings.Contains(strings.ToLower(order.Table.TableNumber), query) {
			return true
		}
	}
	for _, item := range order.Items {
		if strings.Contains(strings.ToLower(item.ProductName), query) {
			return true
		}
	}
	return false
}

// Stats computes dashboard statistics over the current view. Revenue counts
// paid orders only; open bills are unpaid non-terminal orders.
func (f *Feed) Stats() Stats {
	f.mu.RLock()
	defer f.mu.RUnlock()

	stats := Stats{
		Total:    len(f.orders),
		ByStatus: make(map[tables.OrderStatus]int),
	}

	for i := range f.orders {
		order := &f.orders[i]
		stats.ByStatus[order.Status]++

		if order.Status == tables.OrderStatusPaid {
			stats.RevenueCents += order.TotalCents
		}
		if !order.Status.Terminal() {
			stats.OpenBills++
		}
	}

	return stats
}

// sortAndTrimLocked keeps the view newest-first and capped at MaxOrders.
// Callers must hold the write lock.
func (f *Feed) sortAndTrimLocked() {
	sort.SliceStable(f.orders, func(i, j int) bool {
		return f.orders[i].CreatedAt.After(f.orders[j].CreatedAt)
	})
	if len(f.orders) > MaxOrders {
		f.orders = f.orders[:MaxOrders]
	}
}
