package feed

import (
	"testing"
	"time"

	"mesalink_server/structs/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrder(number int, status tables.OrderStatus, totalCents int64, createdAt time.Time) tables.Order {
	return tables.Order{
		Id:          uuid.New(),
		BarId:       uuid.New(),
		OrderNumber: number,
		Status:      status,
		TotalCents:  totalCents,
		CreatedAt:   createdAt,
	}
}

func TestReplaceAllKeepsNewestFirst(t *testing.T) {
	f := New()
	now := time.Now()

	f.ReplaceAll([]tables.Order{
		makeOrder(1, tables.OrderStatusPending, 500, now.Add(-2*time.Minute)),
		makeOrder(3, tables.OrderStatusPending, 700, now),
		makeOrder(2, tables.OrderStatusPending, 600, now.Add(-time.Minute)),
	})

	orders := f.All()
	require.Len(t, orders, 3)
	assert.Equal(t, 3, orders[0].OrderNumber)
	assert.Equal(t, 2, orders[1].OrderNumber)
	assert.Equal(t, 1, orders[2].OrderNumber)
}

func TestUpsertInsertsAndUpdates(t *testing.T) {
	f := New()
	now := time.Now()

	order := makeOrder(1, tables.OrderStatusPending, 500, now)
	f.Upsert(order)
	require.Equal(t, 1, f.Len())

	// updating the same order must not duplicate it
	order.Status = tables.OrderStatusPreparing
	f.Upsert(order)
	require.Equal(t, 1, f.Len())

	got, ok := f.Get(order.Id)
	require.True(t, ok)
	assert.Equal(t, tables.OrderStatusPreparing, got.Status)
}

func TestUpsertCapsAtMaxOrders(t *testing.T) {
	f := New()
	now := time.Now()

	for i := 0; i < MaxOrders+10; i++ {
		f.Upsert(makeOrder(i+1, tables.OrderStatusPending, 100, now.Add(time.Duration(i)*time.Second)))
	}

	orders := f.All()
	require.Len(t, orders, MaxOrders)

	// the oldest orders fell off, the newest stayed
	assert.Equal(t, MaxOrders+10, orders[0].OrderNumber)
	assert.Equal(t, 11, orders[len(orders)-1].OrderNumber)
}

func TestRemove(t *testing.T) {
	f := New()
	order := makeOrder(1, tables.OrderStatusPending, 500, time.Now())
	f.Upsert(order)

	f.Remove(order.Id)
	assert.Equal(t, 0, f.Len())

	// removing an unknown id is a no-op
	f.Remove(uuid.New())
	assert.Equal(t, 0, f.Len())
}

func TestByStatus(t *testing.T) {
	f := New()
	now := time.Now()

	f.ReplaceAll([]tables.Order{
		makeOrder(1, tables.OrderStatusPending, 500, now),
		makeOrder(2, tables.OrderStatusReady, 600, now),
		makeOrder(3, tables.OrderStatusPending, 700, now),
	})

	pending := f.ByStatus(tables.OrderStatusPending)
	assert.Len(t, pending, 2)
	assert.Len(t, f.ByStatus(tables.OrderStatusPaid), 0)
}

func TestSearch(t *testing.T) {
	f := New()
	now := time.Now()

	withTable := makeOrder(42, tables.OrderStatusPending, 500, now)
	withTable.Table = &tables.Table{TableName: "Mesa 7", TableNumber: "7"}

	withItem := makeOrder(8, tables.OrderStatusPending, 600, now)
	withItem.Items = []*tables.OrderItem{{ProductName: "Cerveza Artesanal"}}

	f.ReplaceAll([]tables.Order{withTable, withItem})

	assert.Len(t, f.Search("42"), 1)
	assert.Len(t, f.Search("mesa 7"), 1)
	assert.Len(t, f.Search("cerveza"), 1)
	assert.Len(t, f.Search("pizza"), 0)

	// empty query returns everything
	assert.Len(t, f.Search("  "), 2)
}

func TestStats(t *testing.T) {
	f := New()
	now := time.Now()

	f.ReplaceAll([]tables.Order{
		makeOrder(1, tables.OrderStatusPending, 500, now),
		makeOrder(2, tables.OrderStatusServed, 600, now),
		makeOrder(3, tables.OrderStatusPaid, 700, now),
		makeOrder(4, tables.OrderStatusCancelled, 800, now),
	})

	stats := f.Stats()
	assert.Equal(t, 4, stats.Total)
	assert.Equal(t, 1, stats.ByStatus[tables.OrderStatusPending])
	assert.Equal(t, 1, stats.ByStatus[tables.OrderStatusCancelled])

	// only paid orders count toward revenue
	assert.Equal(t, int64(700), stats.RevenueCents)

	// paid and cancelled orders are settled
	assert.Equal(t, 2, stats.OpenBills)
}

func TestStatsRevenueIgnoresUnpaidOrders(t *testing.T) {
	f := New()
	now := time.Now()

	f.ReplaceAll([]tables.Order{
		makeOrder(1, tables.OrderStatusPending, 500, now),
		makeOrder(2, tables.OrderStatusPreparing, 600, now),
		makeOrder(3, tables.OrderStatusReady, 700, now),
		makeOrder(4, tables.OrderStatusServed, 800, now),
		makeOrder(5, tables.OrderStatusCancelled, 900, now),
	})

	// nothing has been paid yet
	assert.Equal(t, int64(0), f.Stats().RevenueCents)

	f.ReplaceAll([]tables.Order{
		makeOrder(6, tables.OrderStatusPaid, 1000, now),
		makeOrder(7, tables.OrderStatusPaid, 250, now),
		makeOrder(8, tables.OrderStatusServed, 9999, now),
	})

	assert.Equal(t, int64(1250), f.Stats().RevenueCents)
}
