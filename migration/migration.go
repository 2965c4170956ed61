package migration

import (
	"context"
	"errors"
	"fmt"

	"github.com/microblog-lab/backend/internal/entity"
	"github.com/microblog-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// migrations are applied in order. Append new versions at the end; never
// reorder or remove applied ones.
var migrations = []func(context.Context) error{
	migrate0000,
}

// Migrate applies every migration the database has not seen yet, recording
// each applied version.
func Migrate(ctx context.Context) error {
	if err := xcontext.DB(ctx).AutoMigrate(&entity.Migration{}); err != nil {
		return err
	}

	for i, m := range migrations {
		version := fmt.Sprintf("%04d", i)

		err := xcontext.DB(ctx).Where("version=?", version).Take(&entity.Migration{}).Error
		if err == nil {
			continue
		}

		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		xcontext.Logger(ctx).Infof("Applying migration %s", version)
		if err := m(ctx); err != nil {
			return err
		}

		if err := xcontext.DB(ctx).Create(&entity.Migration{Version: version}).Error; err != nil {
			return err
		}
	}

	return nil
}

// AutoMigrate creates the full schema at the latest version. When this is
// used, no other migrator needs to run.
func AutoMigrate(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&entity.User{},
		&entity.Post{},
		&entity.Follower{},
		&entity.Migration{},
	)
}
