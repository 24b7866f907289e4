package usecases

import (
	"context"
	"time"

	"fixmylab/internal/domain/setting"
	"fixmylab/internal/shared/errors"
	"fixmylab/internal/shared/logger"
)

type SettingDTO struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetSettingsUseCase reads the settings panel values.
type GetSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewGetSettingsUseCase(settingRepo setting.Repository, log logger.Interface) *GetSettingsUseCase {
	return &GetSettingsUseCase{
		settingRepo: settingRepo,
		logger:      log,
	}
}

// Get returns a single setting value, empty when absent.
func (uc *GetSettingsUseCase) Get(ctx context.Context, key string) (*SettingDTO, error) {
	k := setting.Key(key)
	if !k.IsValid() {
		return nil, errors.NewValidationError("unknown setting key: " + key)
	}

	s, err := uc.settingRepo.Get(ctx, k)
	if err != nil {
		uc.logger.Errorw("failed to get setting", "key", key, "error", err)
		return nil, errors.NewInternalError("failed to load setting")
	}
	if s == nil {
		return &SettingDTO{Key: key}, nil
	}
	return &SettingDTO{
		Key:       s.Key().String(),
		Value:     s.Value(),
		UpdatedAt: s.UpdatedAt(),
	}, nil
}

// GetAll returns every stored setting.
func (uc *GetSettingsUseCase) GetAll(ctx context.Context) ([]SettingDTO, error) {
	settings, err := uc.settingRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to get settings", "error", err)
		return nil, errors.NewInternalError("failed to load settings")
	}

	dtos := make([]SettingDTO, 0, len(settings))
	for _, s := range settings {
		dtos = append(dtos, SettingDTO{
			Key:       s.Key().String(),
			Value:     s.Value(),
			UpdatedAt: s.UpdatedAt(),
		})
	}
	return dtos, nil
}
