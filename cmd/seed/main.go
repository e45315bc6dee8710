package main

import (
	"context"
	"flag"
	"unicode/utf8"

	"VideoHub.com/cmd/model"
	userdb "VideoHub.com/cmd/user/dal/db"
	videodb "VideoHub.com/cmd/video/dal/db"
	"VideoHub.com/config"
	"VideoHub.com/pkg/constants"
	"VideoHub.com/pkg/database"
	"VideoHub.com/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

var defaultCategories = []model.Category{
	{Name: "Bra", Slug: "bra", Description: "Bra styles, fits, and fashion", Color: "#FF69B4"},
	{Name: "Knickers", Slug: "knickers", Description: "Knickers, panties, and underwear styles", Color: "#FF1493"},
	{Name: "Swimwear", Slug: "swimwear", Description: "Swimsuits, bikinis, and beachwear", Color: "#00CED1"},
	{Name: "Slips", Slug: "slips", Description: "Slips, camisoles, and intimate apparel", Color: "#9370DB"},
	{Name: "Others", Slug: "others", Description: "Other lingerie and intimate wear", Color: "#FFA500"},
}

func main() {
	path := flag.String("config", "", "config file, defaults to the config.yml search path")
	flag.Parse()
	if *path != "" {
		if err := config.InitFromFile(*path); err != nil {
			logrus.Fatalf("load config %s: %v", *path, err)
		}
	} else {
		config.Init()
	}
	database.Init()

	if err := seed(context.Background(), config.ConfigInfo.Admin.Email, config.ConfigInfo.Admin.Password); err != nil {
		logrus.Fatalf("seed failed: %+v", err)
	}
	logrus.Infof("seed done, admin: %s", config.ConfigInfo.Admin.Email)
}

// seed upserts the default categories and the admin account.
func seed(ctx context.Context, adminEmail, adminPassword string) error {
	for i := range defaultCategories {
		c := defaultCategories[i]
		if err := videodb.UpsertCategory(ctx, &c); err != nil {
			return err
		}
	}
	if adminEmail == "" || utf8.RuneCountInString(adminPassword) < constants.MinPasswordLen {
		return errors.New("admin.email and admin.password (at least 6 characters) are required")
	}
	hashed, err := utils.Crypt(adminPassword)
	if err != nil {
		return errors.WithMessage(err, "Password fail to crypt")
	}
	admin, err := userdb.GetUserByEmail(ctx, adminEmail)
	if err != nil {
		return err
	}
	if admin == nil {
		return userdb.CreateUser(ctx, &model.User{
			Email:    adminEmail,
			Username: "admin",
			Name:     "VideoHub Admin",
			Password: hashed,
			Role:     constants.RoleAdmin,
		})
	}
	if err = userdb.UpdateUserPassword(ctx, admin.ID, hashed); err != nil {
		return err
	}
	return userdb.PromoteAdmin(ctx, admin.ID)
}
