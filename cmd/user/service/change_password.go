package service

import (
	"context"
	"unicode/utf8"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/user/dal/db"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/errno"
	"VideoHub.com/pkg/utils"
	"github.com/pkg/errors"
)

type ChangePasswordService struct {
	ctx context.Context
}

func NewChangePasswordService(ctx context.Context) *ChangePasswordService {
	return &ChangePasswordService{ctx: ctx}
}

// ChangePassword 用户修改自己的密码, 需要校验当前密码
func (s *ChangePasswordService) ChangePassword(user *model.User, req *ChangePasswordRequest) error {
	if utf8.RuneCountInString(req.NewPassword) < constants.MinPasswordLen {
		return errno.NewPasswordShortErr
	}
	if _, ok := utils.VerifyPassword(req.CurrentPassword, user.Password); !ok {
		return errno.WrongPasswordErr
	}
	hashed, err := utils.Crypt(req.NewPassword)
	if err != nil {
		return errors.WithMessage(err, "Password fail to crypt")
	}
	if err = db.UpdateUserPassword(s.ctx, user.ID, hashed); err != nil {
		return errors.WithMessage(err, "dao.UpdateUserPassword failed")
	}
	return nil
}

// ResetPassword 管理员直接重置任意用户的密码
func (s *ChangePasswordService) ResetPassword(req *ResetPasswordRequest) (*model.User, error) {
	if req.UserId == "" || req.NewPassword == "" {
		return nil, errno.ResetFieldsErr
	}
	if utf8.RuneCountInString(req.NewPassword) < constants.MinPasswordLen {
		return nil, errno.NewPasswordShortErr
	}
	target, err := db.GetUser(s.ctx, req.UserId)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUser failed")
	}
	if target == nil {
		return nil, errno.UserNotFoundErr
	}
	hashed, err := utils.Crypt(req.NewPassword)
	if err != nil {
		return nil, errors.WithMessage(err, "Password fail to crypt")
	}
	if err = db.UpdateUserPassword(s.ctx, target.ID, hashed); err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateUserPassword failed")
	}
	return target, nil
}
