package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"fixmylab/internal/domain/setting"
	"fixmylab/internal/infrastructure/persistence/mappers"
	"fixmylab/internal/infrastructure/persistence/models"
	"fixmylab/internal/shared/logger"
)

// SettingRepository implements setting.Repository
type SettingRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.SettingMapper
}

// NewSettingRepository creates a new SettingRepository
func NewSettingRepository(db *gorm.DB, log logger.Interface) setting.Repository {
	return &SettingRepository{
		db:     db,
		logger: log,
		mapper: mappers.NewSettingMapper(),
	}
}

// Get retrieves a setting by key. A missing row is (nil, nil).
func (r *SettingRepository) Get(ctx context.Context, key setting.Key) (*setting.Setting, error) {
	var model models.SettingModel

	err := r.db.WithContext(ctx).
		Where("setting_key = ?", string(key)).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get setting", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get setting by key: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// GetAll retrieves all settings
func (r *SettingRepository) GetAll(ctx context.Context) ([]*setting.Setting, error) {
	var modelList []*models.SettingModel

	err := r.db.WithContext(ctx).
		Order("setting_key ASC").
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to get all settings", "error", err)
		return nil, fmt.Errorf("failed to get all settings: %w", err)
	}

	return r.mapper.ToDomainList(modelList), nil
}

// Set creates or updates a setting in a single atomic statement. Concurrent
// writers race on the unique setting_key index; the loser turns into an
// update instead of a duplicate row.
func (r *SettingRepository) Set(ctx context.Context, s *setting.Setting) error {
	model := r.mapper.ToModel(s)

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(model).Error
	if err != nil {
		r.logger.Errorw("failed to upsert setting", "key", s.Key(), "error", err)
		return fmt.Errorf("failed to upsert setting: %w", err)
	}

	return nil
}

// Delete removes a setting by key
func (r *SettingRepository) Delete(ctx context.Context, key setting.Key) error {
	result := r.db.WithContext(ctx).
		Where("setting_key = ?", string(key)).
		Delete(&models.SettingModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete setting", "key", key, "error", result.Error)
		return fmt.Errorf("failed to delete setting: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return setting.ErrSettingNotFound
	}

	return nil
}
