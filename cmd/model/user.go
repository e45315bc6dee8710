package model

import (
	"time"

	"VideoHub.com/pkg/constants"
)

type User struct {
	Base
	Email    string `gorm:"column:email;type:varchar(191);uniqueIndex" json:"email"`
	Username string `gorm:"column:username;type:varchar(64);uniqueIndex" json:"username"`
	Name     string `gorm:"column:name;type:varchar(128)" json:"name"`
	Password string `gorm:"column:password;type:varchar(255)" json:"-"` // bcrypt 哈希, 不序列化
	Avatar   string `gorm:"column:avatar;type:varchar(512)" json:"avatar"`
	Bio      string `gorm:"column:bio;type:text" json:"bio"`
	Role     string `gorm:"column:role;type:varchar(16);default:USER" json:"role"`
	Disabled bool   `gorm:"column:disabled" json:"disabled"`

	VideosCount int64 `gorm:"column:videos_count;->;-:migration" json:"-"`
}

func (u *User) TableName() string {
	return constants.UserTableName
}

func (u *User) IsAdmin() bool {
	return u.Role == constants.RoleAdmin
}

func (u *User) CanModerate() bool {
	return u.Role == constants.RoleAdmin || u.Role == constants.RoleModerator
}

// Author is the public projection of a user embedded in videos, comments and playlists.
type Author struct {
	ID       string       `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	Username string       `gorm:"column:username;type:varchar(64)" json:"username"`
	Name     string       `gorm:"column:name;type:varchar(128)" json:"name"`
	Avatar   string       `gorm:"column:avatar;type:varchar(512)" json:"avatar"`
	Bio      string       `gorm:"column:bio;type:text" json:"bio,omitempty"`
	Count    *AuthorCount `gorm:"-" json:"_count,omitempty"`
}

func (a *Author) TableName() string {
	return constants.UserTableName
}

type AuthorCount struct {
	Videos      int64 `json:"videos"`
	Subscribers int64 `json:"subscribers"`
}

// UserSummary is the row shape of the admin user table.
type UserSummary struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Username  string           `json:"username"`
	Name      string           `json:"name"`
	Avatar    string           `json:"avatar"`
	Role      string           `json:"role"`
	Disabled  bool             `json:"disabled"`
	CreatedAt time.Time        `json:"createdAt"`
	Count     UserSummaryCount `json:"_count"`
}

type UserSummaryCount struct {
	Videos int64 `json:"videos"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Name:      u.Name,
		Avatar:    u.Avatar,
		Role:      u.Role,
		Disabled:  u.Disabled,
		CreatedAt: u.CreatedAt,
		Count:     UserSummaryCount{Videos: u.VideosCount},
	}
}
