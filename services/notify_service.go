package services

import (
	"context"
	"encoding/json"
	"fmt"
	"mesalink_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// NotifyService publishes and subscribes to row-change events over Redis
// pub/sub. Channels are scoped per bar so a dashboard only receives its own
// bar's traffic.
type NotifyService struct {
	logger *gecho.Logger
	client *redis.Client
}

func NewNotifyService(logger *gecho.Logger) *NotifyService {
	return &NotifyService{
		logger: logger,
		client: getRedisClient(),
	}
}

func channelFor(table string, barId uuid.UUID) string {
	return fmt.Sprintf("%s:%s", table, barId.String())
}

// Publish fans a change event out to the bar's channel. Publishing is
// best-effort: a dropped event is recovered by the periodic resync, so
// failures are logged and swallowed.
func (ns *NotifyService) Publish(ctx context.Context, event *structs.ChangeEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		ns.logger.Error("Failed to marshal change event",
			gecho.Field("error", err),
			gecho.Field("table", event.Table),
		)
		return
	}

	channel := channelFor(event.Table, event.BarId)
	if err := ns.client.Publish(ctx, channel, data).Err(); err != nil {
		ns.logger.Warn("Failed to publish change event",
			gecho.Field("error", err),
			gecho.Field("channel", channel),
		)
	}
}

// PublishRow marshals a changed row and publishes it as a change event
func (ns *NotifyService) PublishRow(ctx context.Context, table, eventType string, barId uuid.UUID, row any) {
	payload, err := json.Marshal(row)
	if err != nil {
		ns.logger.Error("Failed to marshal event payload",
			gecho.Field("error", err),
			gecho.Field("table", table),
		)
		return
	}

	ns.Publish(ctx, &structs.ChangeEvent{
		Table:   table,
		Type:    eventType,
		BarId:   barId,
		Payload: payload,
	})
}

// Subscribe opens a subscription on a bar's order and order-item channels.
// The returned PubSub must be closed by the caller.
func (ns *NotifyService) Subscribe(ctx context.Context, barId uuid.UUID) *redis.PubSub {
	return ns.client.Subscribe(ctx,
		channelFor(structs.EventTableOrders, barId),
		channelFor(structs.EventTableOrderItems, barId),
	)
}

// Decode parses a raw pub/sub message back into a change event
func (ns *NotifyService) Decode(msg *redis.Message) (*structs.ChangeEvent, error) {
	var event structs.ChangeEvent
	if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
		return nil, fmt.Errorf("failed to decode change event: %w", err)
	}
	return &event, nil
}
