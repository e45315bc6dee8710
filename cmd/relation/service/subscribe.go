package service

import (
	"context"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/relation/dal/db"
	userdb "VideoHub.com/cmd/user/dal/db"
	videodb "VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/pkg/errno"
	"github.com/pkg/errors"
)

type RelationService struct {
	ctx context.Context
}

func NewRelationService(ctx context.Context) *RelationService {
	return &RelationService{ctx: ctx}
}

// Subscribe toggles the subscription of userId to channelId.
func (s *RelationService) Subscribe(userId, channelId string) (subscribed bool, err error) {
	if userId == channelId {
		return false, errno.SelfSubscribeErr
	}
	channel, err := userdb.GetUser(s.ctx, channelId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.GetUser failed")
	}
	if channel == nil {
		return false, errno.ChannelNotFound
	}
	if subscribed, err = db.ToggleSubscription(s.ctx, userId, channelId); err != nil {
		return false, errors.WithMessage(err, "dao.ToggleSubscription failed")
	}
	return subscribed, nil
}

func (s *RelationService) IsSubscribed(userId, channelId string) (bool, error) {
	ok, err := db.IsSubscribed(s.ctx, userId, channelId)
	if err != nil {
		return false, errors.WithMessage(err, "dao.IsSubscribed failed")
	}
	return ok, nil
}

// Subscriptions lists the channels userId follows with their counts.
func (s *RelationService) Subscriptions(userId string) ([]*model.Author, error) {
	user, err := userdb.GetUser(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	if user == nil {
		return nil, errno.UserNotFoundErr
	}
	subs, err := db.ListSubscriptions(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListSubscriptions failed")
	}
	channels := make([]*model.Author, 0, len(subs))
	for _, sub := range subs {
		if sub.Channel == nil {
			continue
		}
		if sub.Channel.Count, err = s.AuthorCount(sub.ChannelID); err != nil {
			return nil, err
		}
		channels = append(channels, sub.Channel)
	}
	return channels, nil
}

// AuthorCount returns the video and subscriber totals shown next to a channel.
func (s *RelationService) AuthorCount(channelId string) (*model.AuthorCount, error) {
	subscribers, err := db.CountSubscribers(s.ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountSubscribers failed")
	}
	videos, err := videodb.CountVideosByUser(s.ctx, channelId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CountVideosByUser failed")
	}
	return &model.AuthorCount{Videos: videos, Subscribers: subscribers}, nil
}
