package db

import (
	"context"

	"VideoHub.com/pkg/database"
	"gorm.io/gorm"
)

func conn(ctx context.Context) *gorm.DB {
	return database.DB.WithContext(ctx)
}
