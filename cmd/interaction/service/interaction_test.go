package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLike(t *testing.T) {
	gdb := testutil.NewDB(t)
	u := testutil.CreateUser(t, gdb, model.User{Email: "a@example.com", Username: "alice"})
	v := testutil.CreateVideo(t, gdb, u, nil, model.Video{Title: "clip", IsPublished: true})
	draft := testutil.CreateVideo(t, gdb, u, nil, model.Video{Title: "draft"})
	s := NewLikeService(context.Background())

	_, _, err := s.ToggleLike(u.ID, v.ID, "LOVE")
	assert.Equal(t, errno.InvalidLikeTypeErr, errno.ConvertErr(err))
	_, _, err = s.ToggleLike(u.ID, draft.ID, constants.LikeTypeLike)
	assert.Equal(t, errno.VideoNotFoundErr, errno.ConvertErr(err))

	steps := []struct {
		typ    string
		action string
		want   *string
	}{
		{constants.LikeTypeLike, "created", ptr(constants.LikeTypeLike)},
		{constants.LikeTypeDislike, "updated", ptr(constants.LikeTypeDislike)},
		{constants.LikeTypeDislike, "removed", nil},
		{constants.LikeTypeLike, "created", ptr(constants.LikeTypeLike)},
	}
	for _, step := range steps {
		action, current, err := s.ToggleLike(u.ID, v.ID, step.typ)
		require.NoError(t, err)
		assert.Equal(t, step.action, action)
		assert.Equal(t, step.want, current)

		status, err := s.LikeStatus(u.ID, v.ID)
		require.NoError(t, err)
		assert.Equal(t, step.want, status)
	}

	likes, dislikes, err := s.LikeCounts(v.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), likes)
	assert.Equal(t, int64(0), dislikes)
}

func TestComments(t *testing.T) {
	gdb := testutil.NewDB(t)
	ctx := context.Background()
	alice := testutil.CreateUser(t, gdb, model.User{Email: "a@example.com", Username: "alice"})
	bob := testutil.CreateUser(t, gdb, model.User{Email: "b@example.com", Username: "bob"})
	mod := testutil.CreateUser(t, gdb, model.User{Email: "m@example.com", Username: "mod", Role: constants.RoleModerator})
	v := testutil.CreateVideo(t, gdb, alice, nil, model.Video{Title: "clip", IsPublished: true})
	s := NewCommentService(ctx)

	_, err := s.CreateComment(bob, v.ID, "   ")
	assert.Equal(t, errno.CommentContentErr, errno.ConvertErr(err))
	_, err = s.CreateComment(bob, v.ID, strings.Repeat("x", 1001))
	assert.Equal(t, errno.CommentTooLongErr, errno.ConvertErr(err))
	_, err = s.CreateComment(bob, "missing", "hi")
	assert.Equal(t, errno.VideoNotFoundErr, errno.ConvertErr(err))

	first, err := s.CreateComment(bob, v.ID, " first ")
	require.NoError(t, err)
	assert.Equal(t, "first", first.Content)
	assert.Equal(t, "bob", first.User.Username)
	require.NoError(t, gdb.Model(&model.Comment{}).Where("id = ?", first.ID).Update("created_at", testutil.Ago(time.Hour)).Error)
	second, err := s.CreateComment(alice, v.ID, "second")
	require.NoError(t, err)

	newest, err := s.ListComments(v.ID, "")
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, second.ID, newest[0].ID)
	assert.Equal(t, "alice", newest[0].User.Username)
	oldest, err := s.ListComments(v.ID, SortOldest)
	require.NoError(t, err)
	assert.Equal(t, first.ID, oldest[0].ID)

	assert.Equal(t, errno.PermissionDeniedErr, errno.ConvertErr(s.DeleteComment(alice, v.ID, first.ID)))
	assert.Equal(t, errno.CommentNotFoundErr, errno.ConvertErr(s.DeleteComment(bob, "other-video", first.ID)))
	require.NoError(t, s.DeleteComment(bob, v.ID, first.ID))
	require.NoError(t, s.DeleteComment(mod, v.ID, second.ID))
	assert.Equal(t, errno.CommentNotFoundErr, errno.ConvertErr(s.DeleteComment(mod, v.ID, second.ID)))
}

func ptr(s string) *string {
	return &s
}
