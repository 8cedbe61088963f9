package seeds

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	authService "jemaat_backend/internals/features/users/auth/service"
	"jemaat_backend/internals/seeds/masters"
)

type Options struct {
	AdminUsername string
	AdminPassword string
}

// RunAllSeeds is idempotent: rows that already exist are skipped.
func RunAllSeeds(ctx context.Context, db *gorm.DB, opt Options) error {
	db = db.WithContext(ctx)

	//* Wilayah
	if err := masters.SeedWilayah(db); err != nil {
		return err
	}

	//* Master
	n, err := masters.SeedMasters(db)
	if err != nil {
		return err
	}
	zap.L().Info("master rows inserted", zap.Int64("rows", n))

	//* Admin
	if opt.AdminUsername == "" {
		zap.L().Warn("SEED_ADMIN_USERNAME kosong, admin tidak dibuat")
		return nil
	}
	created, err := authService.EnsureAdmin(ctx, db, opt.AdminUsername, opt.AdminPassword)
	if err != nil {
		return err
	}
	zap.L().Info("admin seed", zap.String("username", opt.AdminUsername), zap.Bool("created", created))
	return nil
}
