package redis

import (
	"context"
	"time"

	"VideoHub.com/pkg/constants"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/pkg/errors"
)

const videoLockExpiry = 2 * time.Minute

// LockVideo serialises media processing of one video across workers. The
// returned unlock is a no-op when the cache is disabled.
func LockVideo(ctx context.Context, vid string) (unlock func(), err error) {
	if redisDBVideoInfo == nil {
		return func() {}, nil
	}
	rs := redsync.New(goredis.NewPool(redisDBVideoInfo))
	mutex := rs.NewMutex(constants.VideoLockPrefix+vid, redsync.WithExpiry(videoLockExpiry))
	if err = mutex.LockContext(ctx); err != nil {
		return nil, errors.Wrapf(err, "lock video %s failed", vid)
	}
	return func() {
		// 锁过期后解锁会失败, 忽略即可
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}
