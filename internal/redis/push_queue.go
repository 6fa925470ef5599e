package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// PushQueue is the queued best-effort push channel: one capped list per
// recipient, drained by whatever transport actually reaches the client.
type PushQueue struct {
	client *goredis.Client
	maxLen int64
	ttl    time.Duration
}

func NewPushQueue(r *Redis) *PushQueue {
	return &PushQueue{client: r.Client, maxLen: 100, ttl: 72 * time.Hour}
}

func (q *PushQueue) key(userID uuid.UUID) string {
	return "push:inbox:" + userID.String()
}

func (q *PushQueue) Push(ctx context.Context, n domain.Notification) error {
	b, err := json.Marshal(n)
	if err != nil {
		return err
	}

	key := q.key(n.RecipientID)
	pipe := q.client.TxPipeline()
	pipe.LPush(ctx, key, b)
	pipe.LTrim(ctx, key, 0, q.maxLen-1)
	pipe.Expire(ctx, key, q.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

// Pending returns the queued notifications for a recipient, newest first.
func (q *PushQueue) Pending(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	raw, err := q.client.LRange(ctx, q.key(userID), 0, q.maxLen-1).Result()
	if err != nil {
		return nil, err
	}

	out := make([]domain.Notification, 0, len(raw))
	for _, item := range raw {
		var n domain.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		out = append(out, n)
	}
	return out, nil
}
