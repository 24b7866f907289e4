package usecases

import (
	"context"
	"strconv"

	"fixmylab/internal/domain/setting"
	"fixmylab/internal/shared/errors"
	"fixmylab/internal/shared/logger"
)

// UpdateSettingsUseCase writes settings panel values. Each write is an
// atomic upsert; concurrent saves of the same key cannot produce duplicate
// rows.
type UpdateSettingsUseCase struct {
	settingRepo setting.Repository
	logger      logger.Interface
}

func NewUpdateSettingsUseCase(settingRepo setting.Repository, log logger.Interface) *UpdateSettingsUseCase {
	return &UpdateSettingsUseCase{
		settingRepo: settingRepo,
		logger:      log,
	}
}

func (uc *UpdateSettingsUseCase) Set(ctx context.Context, key, value string) error {
	k := setting.Key(key)
	if !k.IsValid() {
		return errors.NewValidationError("unknown setting key: " + key)
	}
	if err := validateValue(k, value); err != nil {
		return err
	}

	s, err := setting.NewSetting(k, value)
	if err != nil {
		return errors.NewValidationError(err.Error())
	}

	if err := uc.settingRepo.Set(ctx, s); err != nil {
		uc.logger.Errorw("failed to save setting", "key", key, "error", err)
		return errors.NewInternalError("failed to save setting")
	}

	uc.logger.Infow("setting saved", "key", key)
	return nil
}

// SetAll writes multiple settings; it stops at the first failure.
func (uc *UpdateSettingsUseCase) SetAll(ctx context.Context, values map[string]string) error {
	for key, value := range values {
		if err := uc.Set(ctx, key, value); err != nil {
			return err
		}
	}
	return nil
}

// validateValue parses typed settings once, at the boundary, so malformed
// values never reach the store.
func validateValue(key setting.Key, value string) error {
	switch key {
	case setting.KeyNotifyNewTicket, setting.KeyNotifyStatusChange, setting.KeyNotifyOldTickets:
		if value != "true" && value != "false" {
			return errors.NewValidationError("setting " + key.String() + " must be \"true\" or \"false\"")
		}
	case setting.KeyOldTicketsDays:
		if value != "" {
			if n, err := strconv.Atoi(value); err != nil || n < 1 {
				return errors.NewValidationError("setting " + key.String() + " must be a positive integer")
			}
		}
	}
	return nil
}
