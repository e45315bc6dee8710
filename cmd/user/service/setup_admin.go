package service

import (
	"context"

	"VideoHub.com/cmd/model"
	"VideoHub.com/cmd/user/dal/db"
	"VideoHub.com/config"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/errno"
	"github.com/pkg/errors"
)

type SetupAdminService struct {
	ctx context.Context
}

func NewSetupAdminService(ctx context.Context) *SetupAdminService {
	return &SetupAdminService{ctx: ctx}
}

// SetupAdmin promotes the configured admin account. Without a session it is
// only allowed while no ADMIN exists yet; afterwards the caller must be an admin.
func (s *SetupAdminService) SetupAdmin(actor *model.User) (*model.User, error) {
	hasAdmin, err := db.HasAdmin(s.ctx)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.HasAdmin failed")
	}
	if hasAdmin && (actor == nil || !actor.IsAdmin()) {
		return nil, errno.AdminExistsErr
	}
	admin, err := db.GetUserByEmail(s.ctx, config.ConfigInfo.Admin.Email)
	if err != nil {
		return nil, errors.WithMessage(err, "dao.GetUserByEmail failed")
	}
	if admin == nil {
		return nil, errno.AdminNotFoundErr
	}
	if err = db.PromoteAdmin(s.ctx, admin.ID); err != nil {
		return nil, errors.WithMessage(err, "dao.PromoteAdmin failed")
	}
	admin.Role = constants.RoleAdmin
	admin.Disabled = false
	return admin, nil
}
