package notify

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisPublisher sends events to a pub/sub channel so every API instance
// running Relay can forward them to its own hub.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
}

func NewRedisPublisher(rdb *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{rdb: rdb, channel: channel}
}

func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.rdb.Publish(ctx, p.channel, string(payload)).Err()
}

// Relay forwards channel messages into hub until ctx is done.
func Relay(ctx context.Context, rdb *redis.Client, channel string, hub *Hub, logger *zap.Logger) {
	log := logger.Named("notify.relay")
	sub := rdb.Subscribe(ctx, channel)
	defer sub.Close()

	log.Info("relay started", zap.String("channel", channel))
	msgs := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			log.Info("relay stopped")
			return
		case msg, ok := <-msgs:
			if !ok {
				log.Warn("relay subscription closed")
				return
			}
			event, err := DecodeEvent(msg.Payload)
			if err != nil {
				log.Error("decode relayed event failed", zap.Error(err))
				continue
			}
			hub.Broadcast(event)
		}
	}
}

func DecodeEvent(payload string) (Event, error) {
	var event Event
	err := json.Unmarshal([]byte(payload), &event)
	return event, err
}
