package service

import (
	"context"
	"testing"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/video/infras/redis"
	"VideoHub.com/pkg/testutil"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func useRedis(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis container in short mode")
	}
	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7-alpine")
	if err != nil {
		t.Skipf("redis container unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })
	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)
	opt, err := goredis.ParseURL(uri)
	require.NoError(t, err)
	client := goredis.NewClient(opt)
	prev := redis.SetClient(client)
	t.Cleanup(func() {
		redis.SetClient(prev)
		_ = client.Close()
	})
}

func TestSyncVisitRankingDisabled(t *testing.T) {
	prev := redis.SetClient(nil)
	defer redis.SetClient(prev)
	assert.NoError(t, SyncVisitRanking(context.Background()))
}

func TestSyncVisitRankingSeedsUnrankedVideos(t *testing.T) {
	gdb, u, c := seed(t)
	useRedis(t)
	ctx := context.Background()
	old := testutil.CreateVideo(t, gdb, u, c, model.Video{Title: "before redis", IsPublished: true, Views: 40})
	ranked := testutil.CreateVideo(t, gdb, u, c, model.Video{Title: "ranked", IsPublished: true, Views: 2})
	require.NoError(t, redis.PutVideoVisit(ctx, ranked.ID, 3))

	videos, err := NewVideoListService(ctx).PopularVideos(1)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, ranked.ID, videos[0].ID)

	require.NoError(t, SyncVisitRanking(ctx))
	videos, err = NewVideoListService(ctx).PopularVideos(2)
	require.NoError(t, err)
	require.Len(t, videos, 2)
	assert.Equal(t, old.ID, videos[0].ID)
	assert.Equal(t, ranked.ID, videos[1].ID)
}
