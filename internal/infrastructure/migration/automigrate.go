package migration

import (
	"fmt"

	"gorm.io/gorm"

	"fixmylab/internal/infrastructure/persistence/models"
	"fixmylab/internal/shared/logger"
)

// GormAutoMigrateStrategy migrates the schema from the model structs.
// Development convenience only; versioned scripts run everywhere else.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() Strategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, modelList ...interface{}) error {
	if len(modelList) == 0 {
		modelList = AutoMigrateModels()
	}

	s.logger.Infow("starting gorm auto-migration", "models_count", len(modelList))

	if err := db.AutoMigrate(modelList...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	s.logger.Infow("gorm auto-migration completed")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels returns every persistence model the schema holds.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketModel{},
		&models.AttachmentModel{},
		&models.SettingModel{},
		&models.UserModel{},
	}
}
