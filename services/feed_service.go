package services

import (
	"context"
	"encoding/json"
	"mesalink_server/feed"
	"mesalink_server/structs"
	"mesalink_server/structs/tables"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// resyncInterval is how often a live feed is rebuilt from the database to
// recover from any dropped pub/sub events
const resyncInterval = 30 * time.Second

// FeedService keeps one live order view per bar while at least one dashboard
// is subscribed. The view is seeded from the database, patched incrementally
// from change events and fully resynced on a timer.
type FeedService struct {
	logger        *gecho.Logger
	orderService  *OrderService
	notifyService *NotifyService

	mu   sync.Mutex
	bars map[uuid.UUID]*barFeed
}

type barFeed struct {
	feed        *feed.Feed
	cancel      context.CancelFunc
	subscribers map[int]chan structs.ChangeEvent
	nextSubId   int
}

func NewFeedService(logger *gecho.Logger, orderService *OrderService, notifyService *NotifyService) *FeedService {
	return &FeedService{
		logger:        logger,
		orderService:  orderService,
		notifyService: notifyService,
		bars:          make(map[uuid.UUID]*barFeed),
	}
}

// Subscribe attaches a dashboard to a bar's live feed, starting it if this
// is the first subscriber. It returns the current snapshot, the event stream
// and an unsubscribe function. The feed is torn down when the last
// subscriber leaves.
func (fs *FeedService) Subscribe(ctx context.Context, barId uuid.UUID) ([]tables.Order, <-chan structs.ChangeEvent, func(), error) {
	fs.mu.Lock()

	bf, ok := fs.bars[barId]
	if !ok {
		orders, err := fs.orderService.ListOrders(ctx, barId)
		if err != nil {
			fs.mu.Unlock()
			return nil, nil, nil, err
		}

		runCtx, cancel := context.WithCancel(context.Background())
		bf = &barFeed{
			feed:        feed.New(),
			cancel:      cancel,
			subscribers: make(map[int]chan structs.ChangeEvent),
		}
		bf.feed.ReplaceAll(orders)
		fs.bars[barId] = bf

		go fs.run(runCtx, barId, bf)
	}

	subId := bf.nextSubId
	bf.nextSubId++
	// Buffered so one stalled client can't block the fan-out
	events := make(chan structs.ChangeEvent, 16)
	bf.subscribers[subId] = events

	snapshot := bf.feed.All()
	fs.mu.Unlock()

	unsubscribe := func() {
		fs.mu.Lock()
		defer fs.mu.Unlock()

		if current, ok := fs.bars[barId]; ok && current == bf {
			delete(bf.subscribers, subId)
			close(events)

			if len(bf.subscribers) == 0 {
				bf.cancel()
				delete(fs.bars, barId)
				fs.logger.Debug("Order feed stopped", gecho.Field("bar_id", barId))
			}
		}
	}

	return snapshot, events, unsubscribe, nil
}

// run consumes a bar's change events and resyncs the view on a timer
func (fs *FeedService) run(ctx context.Context, barId uuid.UUID, bf *barFeed) {
	pubsub := fs.notifyService.Subscribe(ctx, barId)
	defer pubsub.Close()

	messages := pubsub.Channel()
	ticker := time.NewTicker(resyncInterval)
	defer ticker.Stop()

	fs.logger.Debug("Order feed started", gecho.Field("bar_id", barId))

	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-messages:
			if !ok {
				return
			}
			event, err := fs.notifyService.Decode(msg)
			if err != nil {
				fs.logger.Warn("Dropped undecodable change event",
					gecho.Field("error", err),
					gecho.Field("bar_id", barId),
				)
				continue
			}
			fs.apply(ctx, barId, bf, event)
			fs.broadcast(bf, event)

		case <-ticker.C:
			orders, err := fs.orderService.ListOrders(ctx, barId)
			if err != nil {
				fs.logger.Warn("Feed resync failed", gecho.Field("error", err), gecho.Field("bar_id", barId))
				continue
			}
			bf.feed.ReplaceAll(orders)
		}
	}
}

// apply patches the view from a single change event. Order events carry the
// changed row and are applied directly; item events only carry the item, so
// the owning order is refetched.
func (fs *FeedService) apply(ctx context.Context, barId uuid.UUID, bf *barFeed, event *structs.ChangeEvent) {
	switch event.Table {
	case structs.EventTableOrders:
		var order tables.Order
		if err := json.Unmarshal(event.Payload, &order); err != nil {
			fs.logger.Warn("Dropped malformed order event", gecho.Field("error", err), gecho.Field("bar_id", barId))
			return
		}

		if event.Type == structs.EventDelete {
			bf.feed.Remove(order.Id)
			return
		}
		bf.feed.Upsert(order)

	case structs.EventTableOrderItems:
		var item tables.OrderItem
		if err := json.Unmarshal(event.Payload, &item); err != nil {
			fs.logger.Warn("Dropped malformed order item event", gecho.Field("error", err), gecho.Field("bar_id", barId))
			return
		}

		order, err := fs.orderService.GetOrder(ctx, barId, item.OrderId)
		if err != nil {
			// The order is gone; if we were tracking it, drop it
			bf.feed.Remove(item.OrderId)
			return
		}
		bf.feed.Upsert(*order)
	}
}

func (fs *FeedService) broadcast(bf *barFeed, event *structs.ChangeEvent) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for _, ch := range bf.subscribers {
		select {
		case ch <- *event:
		default:
			// Slow consumer; it will catch up from its next resync
		}
	}
}

// live returns the running feed for a bar, if any
func (fs *FeedService) live(barId uuid.UUID) *feed.Feed {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if bf, ok := fs.bars[barId]; ok {
		return bf.feed
	}
	return nil
}

// Orders serves the dashboard order list: from the live feed when one is
// running, straight from the database otherwise
func (fs *FeedService) Orders(ctx context.Context, barId uuid.UUID) ([]tables.Order, error) {
	if f := fs.live(barId); f != nil {
		return f.All(), nil
	}
	return fs.orderService.ListOrders(ctx, barId)
}

// Stats serves the dashboard statistics header
func (fs *FeedService) Stats(ctx context.Context, barId uuid.UUID) (feed.Stats, error) {
	if f := fs.live(barId); f != nil {
		return f.Stats(), nil
	}

	orders, err := fs.orderService.ListOrders(ctx, barId)
	if err != nil {
		return feed.Stats{}, err
	}

	tmp := feed.New()
	tmp.ReplaceAll(orders)
	return tmp.Stats(), nil
}

// Search filters the dashboard order list by number, table or product name
func (fs *FeedService) Search(ctx context.Context, barId uuid.UUID, query string) ([]tables.Order, error) {
	if f := fs.live(barId); f != nil {
		return f.Search(query), nil
	}

	orders, err := fs.orderService.ListOrders(ctx, barId)
	if err != nil {
		return nil, err
	}

	tmp := feed.New()
	tmp.ReplaceAll(orders)
	return tmp.Search(query), nil
}

// Close tears down every live feed; called on shutdown
func (fs *FeedService) Close() {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	for barId, bf := range fs.bars {
		bf.cancel()
		for _, ch := range bf.subscribers {
			close(ch)
		}
		delete(fs.bars, barId)
	}
}
