package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"

	"github.com/redis/go-redis/v9"
)

// EventQueue carries report events from the lifecycle to the fan-out worker.
// LPush on the hot path, blocking BRPop on the consumer side.
type EventQueue struct {
	client *redis.Client
	key    string
}

func NewEventQueue(client *redis.Client, key string) *EventQueue {
	return &EventQueue{client: client, key: key}
}

func (q *EventQueue) Enqueue(ctx context.Context, event domain.ReportEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *EventQueue) Dequeue(ctx context.Context, timeout time.Duration) (domain.ReportEvent, error) {
	var ev domain.ReportEvent

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ev, e.ErrQueueEmpty
		}
		return ev, err
	}
	if len(res) < 2 {
		return ev, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &ev); err != nil {
		return ev, err
	}
	return ev, nil
}
