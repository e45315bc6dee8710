package db

import (
	"context"

	"VideoHub.com/cmd/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func ListCategories(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	if err := conn(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, errors.Wrapf(err, "ListCategories failed,err:%v", err)
	}
	return categories, nil
}

// GetCategory returns nil when id does not exist.
func GetCategory(ctx context.Context, id string) (*model.Category, error) {
	var category model.Category
	err := conn(ctx).Where("id = ?", id).First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "GetCategory failed,err:%v", err)
	}
	return &category, nil
}

// UpsertCategory inserts c or refreshes the row with the same slug.
func UpsertCategory(ctx context.Context, c *model.Category) error {
	err := conn(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "color", "updated_at"}),
	}).Create(c).Error
	if err != nil {
		return errors.Wrapf(err, "UpsertCategory failed, slug: %s", c.Slug)
	}
	return nil
}
