// Package testutil wires a throw-away SQLite database in place of MySQL and
// offers fixtures shared by the dal, service and handler tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/utils"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a migrated SQLite file under t.TempDir and installs it as database.DB.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "videohub.db")
	db, err := gorm.Open(sqlite.Open(path+"?_pragma=busy_timeout(5000)"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		_ = sqlDB.Close()
	})
	return db
}

const DefaultPassword = "password123"

// CreateUser inserts a user with DefaultPassword unless one is set on u.
func CreateUser(t *testing.T, db *gorm.DB, u model.User) *model.User {
	t.Helper()
	if u.Password == "" {
		u.Password = DefaultPassword
	}
	hashed, err := utils.Crypt(u.Password)
	require.NoError(t, err)
	u.Password = hashed
	if u.Role == "" {
		u.Role = constants.RoleUser
	}
	if u.Name == "" {
		u.Name = u.Username
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func CreateCategory(t *testing.T, db *gorm.DB, name, slug string) *model.Category {
	t.Helper()
	c := model.Category{Name: name, Slug: slug, Color: "#3B82F6"}
	require.NoError(t, db.Create(&c).Error)
	return &c
}

// CreateVideo inserts v owned by owner. A zero CreatedAt is set to now.
func CreateVideo(t *testing.T, db *gorm.DB, owner *model.User, category *model.Category, v model.Video) *model.Video {
	t.Helper()
	v.UserID = owner.ID
	if category != nil {
		v.CategoryID = &category.ID
	}
	if v.VideoURL == "" {
		v.VideoURL = "/uploads/videos/" + utils.UniqueFileName("clip.mp4")
	}
	if v.CreatedAt.IsZero() {
		v.CreatedAt = time.Now()
	}
	require.NoError(t, db.Omit("User", "Category", "Likes").Create(&v).Error)
	return &v
}

// Ago returns a timestamp d before now, used to order fixtures.
func Ago(d time.Duration) time.Time {
	return time.Now().Add(-d)
}
