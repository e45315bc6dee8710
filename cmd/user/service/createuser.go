package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/user/dal/db"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/utils"
	"github.com/pkg/errors"
)

type CreateUserService struct {
	ctx context.Context
}

func NewCreateUserService(ctx context.Context) *CreateUserService {
	return &CreateUserService{ctx: ctx}
}

// CreateUser registers a USER account on behalf of an admin.
func (s *CreateUserService) CreateUser(req *CreateUserRequest) (*model.User, error) {
	email := strings.TrimSpace(req.Email)
	username := strings.TrimSpace(req.Username)
	name := strings.TrimSpace(req.Name)
	if email == "" || username == "" || name == "" || req.Password == "" {
		return nil, errno.SignupFieldsErr
	}
	if utf8.RuneCountInString(req.Password) < constants.MinPasswordLen {
		return nil, errno.PasswordTooShortErr
	}
	exists, err := db.ExistsByEmailOrUsername(s.ctx, email, username)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.ExistsByEmailOrUsername failed")
	}
	if exists {
		return nil, errno.UserAlreadyExistErr
	}
	password, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, errors.WithMessage(err, "Password fail to crypt")
	}
	user := &model.User{
		Email:    email,
		Username: username,
		Name:     name,
		Password: password,
		Role:     constants.RoleUser,
	}
	if err = db.CreateUser(s.ctx, user); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateUser failed")
	}
	return user, nil
}
