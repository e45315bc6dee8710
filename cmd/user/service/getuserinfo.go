package service

import (
	"context"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/user/dal/db"
	"VideoHub.com/pkg/errno"
	"github.com/pkg/errors"
)

type GetUserInfoService struct {
	ctx context.Context
}

func NewGetUserInfoService(ctx context.Context) *GetUserInfoService {
	return &GetUserInfoService{ctx: ctx}
}

// GetActiveUser loads a user that may hold a session: it must exist and not be disabled.
func (s *GetUserInfoService) GetActiveUser(userId string) (*model.User, error) {
	if userId == "" {
		return nil, errno.AuthorizationFailedErr
	}
	user, err := db.GetUser(s.ctx, userId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	if user == nil {
		return nil, errno.AuthorizationFailedErr
	}
	if user.Disabled {
		return nil, errno.AccountDisabledErr
	}
	return user, nil
}

func (s *GetUserInfoService) ListUsers() ([]model.UserSummary, error) {
	users, err := db.ListUsers(s.ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ListUsers failed")
	}
	summaries := make([]model.UserSummary, 0, len(users))
	for _, u := range users {
		summaries = append(summaries, u.Summary())
	}
	return summaries, nil
}
