package database_test

import (
	"regexp"
	"testing"

	"VideoHub.com/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateDeclaresCascadingForeignKeys(t *testing.T) {
	db := testutil.NewDB(t)

	cases := []struct {
		table, constraint, column, references string
	}{
		{"videos", "fk_videos_user", "user_id", "users"},
		{"likes", "fk_videos_likes", "video_id", "videos"},
		{"likes", "fk_likes_user", "user_id", "users"},
		{"comments", "fk_comments_video", "video_id", "videos"},
		{"comments", "fk_comments_user", "user_id", "users"},
		{"playlists", "fk_playlists_user", "user_id", "users"},
		{"playlist_videos", "fk_playlists_playlist_videos", "playlist_id", "playlists"},
		{"playlist_videos", "fk_playlist_videos_video", "video_id", "videos"},
		{"subscriptions", "fk_subscriptions_channel", "channel_id", "users"},
		{"subscriptions", "fk_subscriptions_subscriber", "subscriber_id", "users"},
	}
	for _, c := range cases {
		var ddl string
		require.NoError(t, db.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", c.table).Scan(&ddl).Error)
		pattern := "CONSTRAINT `" + c.constraint + "` FOREIGN KEY \\(`" + c.column + "`\\) REFERENCES `" + c.references + "`\\s*\\(`id`\\) ON DELETE CASCADE"
		assert.Regexp(t, regexp.MustCompile(pattern), ddl, c.constraint)
	}
}
