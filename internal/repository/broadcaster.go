package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tilous-backend/internal/entity"
)

// Broadcaster - publishes game snapshots over a redis channel.
type Broadcaster interface {
	Publish(ctx context.Context, snapshot *entity.Snapshot) error
	Subscribe(ctx context.Context) (<-chan []byte, error)
}

type redisBroadcaster struct {
	client  *redis.Client
	channel string
}

func NewBroadcaster(client *redis.Client, channel string) Broadcaster {
	return &redisBroadcaster{
		client:  client,
		channel: channel,
	}
}

func (that *redisBroadcaster) Publish(ctx context.Context, snapshot *entity.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}

	return nil
}

// Subscribe - returns raw payloads until ctx is done, the channel is closed afterwards.
func (that *redisBroadcaster) Subscribe(ctx context.Context) (<-chan []byte, error) {
	pubsub := that.client.Subscribe(ctx, that.channel)

	// wait for the confirmation, otherwise early publishes are lost
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", that.channel, err)
	}

	payloads := make(chan []byte)

	go func() {
		defer close(payloads)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}

				select {
				case payloads <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return payloads, nil
}
