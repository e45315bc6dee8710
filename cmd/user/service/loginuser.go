package service

import (
	"context"
	"strings"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/user/dal/db"
	"VideoHub.com/pkg/errno"
	"github.com/pkg/errors"
)

type LoginUserService struct {
	ctx context.Context
}

func NewLoginUserService(ctx context.Context) *LoginUserService {
	return &LoginUserService{ctx: ctx}
}

func (s *LoginUserService) LoginUser(req *LoginRequest) (*model.User, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return nil, errno.MissingCredentialsErr
	}
	user, err := db.CheckUser(s.ctx, email, req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.CheckUser failed")
	}
	return user, nil
}
