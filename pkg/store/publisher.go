package store

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/tubedigest/tubedigest/pkg/errors"
	"github.com/tubedigest/tubedigest/pkg/interfaces"
)

const progressChannelPrefix = "tubedigest:progress:"

// ProgressPublisher mirrors progress updates onto a redis channel so other
// processes (for example an SSE gateway) can stream them without polling the
// database. A nil publisher is valid and publishes nothing.
type ProgressPublisher struct {
	client *redis.Client
	logger interfaces.Logger
}

// NewProgressPublisher connects to redis at redisURL. An empty URL yields a
// nil publisher, which every method accepts.
func NewProgressPublisher(ctx context.Context, redisURL string, logger interfaces.Logger) (*ProgressPublisher, error) {
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.NewConfigInvalidError("invalid redis url: " + err.Error())
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewConnectionFailedError("redis")
	}

	return &ProgressPublisher{client: client, logger: logger}, nil
}

// Publish sends a progress update for taskID. Publish failures are logged and
// swallowed: redis is a mirror, the database record is the source of truth.
func (p *ProgressPublisher) Publish(ctx context.Context, taskID string, data map[string]interface{}) {
	if p == nil {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		p.logger.Warn("progress update not serializable", map[string]interface{}{
			"task_id": taskID,
		})
		return
	}

	if err := p.client.Publish(ctx, progressChannelPrefix+taskID, payload).Err(); err != nil {
		p.logger.Warn("progress publish failed", map[string]interface{}{
			"task_id": taskID,
			"error":   err.Error(),
		})
	}
}

// Subscribe returns a channel of raw progress payloads for taskID. The
// subscription ends when ctx is done.
func (p *ProgressPublisher) Subscribe(ctx context.Context, taskID string) <-chan string {
	out := make(chan string)
	if p == nil {
		close(out)
		return out
	}

	sub := p.client.Subscribe(ctx, progressChannelPrefix+taskID)
	go func() {
		defer close(out)
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				out <- msg.Payload
			}
		}
	}()
	return out
}

// Close releases the redis connection.
func (p *ProgressPublisher) Close() error {
	if p == nil {
		return nil
	}
	return p.client.Close()
}
