package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MarkatV2/ProyectoAvanzada-sub001/internal/domain"
	appredis "github.com/MarkatV2/ProyectoAvanzada-sub001/internal/redis"
)

func testRedis(t *testing.T) (*appredis.Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return &appredis.Redis{Client: client}, mr
}

func TestReportCache_SetGet(t *testing.T) {
	r, _ := testRedis(t)
	cache := appredis.NewReportCache(r, time.Minute)
	ctx := context.Background()

	report := &domain.Report{
		ID:     uuid.New(),
		Title:  "pothole on main st",
		Status: domain.ReportVerified,
		Lat:    4.6,
		Lng:    -74.0,
	}

	require.NoError(t, cache.Set(ctx, report))

	got, err := cache.Get(ctx, report.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, report.ID, got.ID)
	assert.Equal(t, report.Title, got.Title)
	assert.Equal(t, report.Status, got.Status)
}

func TestReportCache_MissIsNilNil(t *testing.T) {
	r, _ := testRedis(t)
	cache := appredis.NewReportCache(r, time.Minute)

	got, err := cache.Get(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReportCache_Invalidate(t *testing.T) {
	r, _ := testRedis(t)
	cache := appredis.NewReportCache(r, time.Minute)
	ctx := context.Background()

	report := &domain.Report{ID: uuid.New(), Title: "x", Status: domain.ReportPending}
	require.NoError(t, cache.Set(ctx, report))
	require.NoError(t, cache.Invalidate(ctx, report.ID))

	got, err := cache.Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestReportCache_TTLExpires(t *testing.T) {
	r, mr := testRedis(t)
	cache := appredis.NewReportCache(r, 10*time.Second)
	ctx := context.Background()

	report := &domain.Report{ID: uuid.New(), Status: domain.ReportPending}
	require.NoError(t, cache.Set(ctx, report))

	mr.FastForward(11 * time.Second)

	got, err := cache.Get(ctx, report.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
