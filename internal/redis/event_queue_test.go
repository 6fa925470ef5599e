package redis_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	appredis "github.com/MarkatV2/ProyectoAvanzada-sub001/internal/redis"
	"github.com/MarkatV2/ProyectoAvanzada-sub001/pkg/e"
)

func TestEventQueue_RoundTrip(t *testing.T) {
	r, _ := testRedis(t)
	q := appredis.NewEventQueue(r.Client, "events:reports")
	ctx := context.Background()

	ev := domain.ReportEvent{
		Type:       domain.NotificationNewReport,
		ReportID:   uuid.New(),
		Title:      "flooded underpass",
		Lat:        4.61,
		Lng:        -74.07,
		ActorID:    uuid.New(),
		OwnerID:    uuid.New(),
		OccurredAt: time.Date(2026, 5, 2, 8, 30, 0, 0, time.UTC),
	}

	require.NoError(t, q.Enqueue(ctx, ev))

	got, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	assert.Equal(t, ev.Type, got.Type)
	assert.Equal(t, ev.ReportID, got.ReportID)
	assert.Equal(t, ev.OwnerID, got.OwnerID)
	assert.True(t, ev.OccurredAt.Equal(got.OccurredAt))
}

func TestEventQueue_FIFO(t *testing.T) {
	r, _ := testRedis(t)
	q := appredis.NewEventQueue(r.Client, "events:reports")
	ctx := context.Background()

	first := domain.ReportEvent{Type: domain.NotificationNewReport, ReportID: uuid.New()}
	second := domain.ReportEvent{Type: domain.NotificationNewComment, ReportID: uuid.New()}

	require.NoError(t, q.Enqueue(ctx, first))
	require.NoError(t, q.Enqueue(ctx, second))

	got1, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	got2, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)

	assert.Equal(t, first.ReportID, got1.ReportID)
	assert.Equal(t, second.ReportID, got2.ReportID)
}

func TestEventQueue_EmptyTimesOut(t *testing.T) {
	r, _ := testRedis(t)
	q := appredis.NewEventQueue(r.Client, "events:reports")

	_, err := q.Dequeue(context.Background(), 10*time.Millisecond)
	assert.True(t, errors.Is(err, e.ErrQueueEmpty), "expected queue-empty, got %v", err)
}
