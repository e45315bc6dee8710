package service

import (
	"context"

	"VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/cmd/video/infras/redis"
	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const rankingBatch = 500

// SyncVisitRanking copies the views column into the redis ranking, so videos
// viewed while redis was away still rank by their real count.
func SyncVisitRanking(ctx context.Context) error {
	if redis.Client() == nil {
		return nil
	}
	err := db.ScanVideoViews(ctx, rankingBatch, func(batch []db.VideoViews) error {
		visits := make([]goredis.Z, 0, len(batch))
		for _, v := range batch {
			visits = append(visits, goredis.Z{Score: float64(v.Views), Member: v.ID})
		}
		return redis.SeedVideoVisits(ctx, visits)
	})
	return errors.WithMessage(err, "sync visit ranking failed")
}
