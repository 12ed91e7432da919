package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/norce-drilling/wellbore-api/internal/infrastructure/database/entities"
)

// AutoMigrate applies the database schema and reports the stored row count.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(&entities.WellBore{}); err != nil {
		return err
	}

	var count int64
	if err := db.WithContext(ctx).Model(&entities.WellBore{}).Count(&count).Error; err != nil {
		return err
	}
	log.Info().Int64("rows", count).Msg("wellbore table ready")

	return nil
}
