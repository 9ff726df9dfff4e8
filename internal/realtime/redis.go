package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const notificationChannel = "tracking:realtime:events"

// RedisBroker delivers events locally and relays them through Redis so that
// every API instance reaches its own clients.
type RedisBroker struct {
	hub        *Hub
	client     *redis.Client
	instanceID string
}

func NewRedisBroker(hub *Hub, client *redis.Client) *RedisBroker {
	return &RedisBroker{
		hub:        hub,
		client:     client,
		instanceID: uuid.NewString(),
	}
}

func (b *RedisBroker) Emit(ctx context.Context, ev Event) {
	b.hub.Deliver(ev)

	ev.InstanceID = b.instanceID
	data, err := json.Marshal(ev)
	if err != nil {
		slog.Error("marshal realtime event for redis", "event", ev.Name, "error", err)
		return
	}
	if err := b.client.Publish(ctx, notificationChannel, data).Err(); err != nil {
		slog.Error("publish realtime event", "event", ev.Name, "room", ev.Room, "error", err)
	}
}

// Run subscribes until ctx is done, reconnecting with backoff.
func (b *RedisBroker) Run(ctx context.Context) error {
	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		err := b.subscribe(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		slog.Warn("realtime subscription disconnected, reconnecting", "error", err, "backoff", backoff)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (b *RedisBroker) subscribe(ctx context.Context) error {
	pubsub := b.client.Subscribe(ctx, notificationChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("subscribe to %s: %w", notificationChannel, err)
	}
	slog.Info("subscribed to realtime channel", "channel", notificationChannel, "instance_id", b.instanceID)

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			b.handle(msg.Payload)
		}
	}
}

// handle delivers a relayed event unless this instance published it.
func (b *RedisBroker) handle(payload string) {
	var ev Event
	if err := json.Unmarshal([]byte(payload), &ev); err != nil {
		slog.Warn("decode realtime event", "error", err)
		return
	}
	if ev.InstanceID == b.instanceID {
		return
	}
	b.hub.Deliver(ev)
}
