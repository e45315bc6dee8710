package redis

import (
	"context"

	"VideoHub.com/pkg/constants"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// PutVideoVisit mirrors the stored view count of vid into the visit ranking.
func PutVideoVisit(ctx context.Context, vid string, views int64) error {
	if redisDBVideoInfo == nil {
		return nil
	}
	err := redisDBVideoInfo.ZAdd(ctx, constants.VisitZSetKey, redis.Z{Score: float64(views), Member: vid}).Err()
	return errors.Wrapf(err, "ZAdd visit failed, vid: %s", vid)
}

// TopVideos returns at most n ids by views, highest first. ok is false when
// the cache is disabled or empty so callers fall back to the database.
func TopVideos(ctx context.Context, n int) ([]string, bool, error) {
	if redisDBVideoInfo == nil {
		return nil, false, nil
	}
	ids, err := redisDBVideoInfo.ZRevRange(ctx, constants.VisitZSetKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, false, errors.Wrap(err, "ZRevRange visit failed")
	}
	return ids, len(ids) > 0, nil
}

func DeleteVideoVisit(ctx context.Context, vid string) error {
	if redisDBVideoInfo == nil {
		return nil
	}
	return errors.Wrapf(redisDBVideoInfo.ZRem(ctx, constants.VisitZSetKey, vid).Err(), "ZRem visit failed, vid: %s", vid)
}

// SeedVideoVisits adds missing members and raises stale scores. A score is
// never lowered, so counts written by live views survive a reseed.
func SeedVideoVisits(ctx context.Context, visits []redis.Z) error {
	if redisDBVideoInfo == nil || len(visits) == 0 {
		return nil
	}
	err := redisDBVideoInfo.ZAddArgs(ctx, constants.VisitZSetKey, redis.ZAddArgs{GT: true, Members: visits}).Err()
	return errors.Wrapf(err, "ZAdd GT visits failed, count: %d", len(visits))
}
