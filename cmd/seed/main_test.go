package main

import (
	"context"
	"testing"

	"VideoHub.com/cmd/model"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/testutil"
	"VideoHub.com/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedIsIdempotent(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()

	require.NoError(t, seed(ctx, "admin@example.com", "admin123"))
	require.NoError(t, seed(ctx, "admin@example.com", "admin456"))

	var categories int64
	require.NoError(t, db.Model(&model.Category{}).Count(&categories).Error)
	assert.Equal(t, int64(len(defaultCategories)), categories)

	var admin model.User
	require.NoError(t, db.Where("email = ?", "admin@example.com").First(&admin).Error)
	assert.Equal(t, constants.RoleAdmin, admin.Role)
	_, ok := utils.VerifyPassword("admin456", admin.Password)
	assert.True(t, ok)
}

func TestSeedPromotesExistingUser(t *testing.T) {
	db := testutil.NewDB(t)
	existing := testutil.CreateUser(t, db, model.User{Email: "admin@example.com", Username: "boss", Disabled: true})

	require.NoError(t, seed(context.Background(), "admin@example.com", "admin123"))

	var admin model.User
	require.NoError(t, db.First(&admin, "id = ?", existing.ID).Error)
	assert.Equal(t, constants.RoleAdmin, admin.Role)
	assert.False(t, admin.Disabled)
}

func TestSeedRejectsShortPassword(t *testing.T) {
	testutil.NewDB(t)
	assert.Error(t, seed(context.Background(), "admin@example.com", "123"))
}
