package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixmylab/internal/domain/setting"
	"fixmylab/internal/shared/errors"
)

func TestUpdateSettingsUseCase_Set(t *testing.T) {
	t.Run("stores a valid value", func(t *testing.T) {
		var stored *setting.Setting
		repo := &mockSettingRepository{
			SetFunc: func(ctx context.Context, s *setting.Setting) error {
				stored = s
				return nil
			},
		}

		useCase := NewUpdateSettingsUseCase(repo, nopLogger{})
		err := useCase.Set(context.Background(), "email_admin_address", "admin@shop.example")

		require.NoError(t, err)
		require.NotNil(t, stored)
		assert.Equal(t, setting.KeyAdminEmail, stored.Key())
		assert.Equal(t, "admin@shop.example", stored.Value())
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		stored := false
		repo := &mockSettingRepository{
			SetFunc: func(ctx context.Context, s *setting.Setting) error {
				stored = true
				return nil
			},
		}

		useCase := NewUpdateSettingsUseCase(repo, nopLogger{})
		err := useCase.Set(context.Background(), "smtp_password", "hunter2")

		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
		assert.False(t, stored)
	})

	t.Run("toggles only accept true or false", func(t *testing.T) {
		useCase := NewUpdateSettingsUseCase(&mockSettingRepository{}, nopLogger{})

		for _, key := range []string{"email_new_ticket", "email_status_change", "email_admin_old_tickets"} {
			assert.NoError(t, useCase.Set(context.Background(), key, "true"))
			assert.NoError(t, useCase.Set(context.Background(), key, "false"))
			assert.Error(t, useCase.Set(context.Background(), key, "yes"))
			assert.Error(t, useCase.Set(context.Background(), key, "1"))
			assert.Error(t, useCase.Set(context.Background(), key, ""))
		}
	})

	t.Run("old tickets days must be a positive integer", func(t *testing.T) {
		useCase := NewUpdateSettingsUseCase(&mockSettingRepository{}, nopLogger{})

		assert.NoError(t, useCase.Set(context.Background(), "email_admin_old_tickets_days", "14"))
		assert.NoError(t, useCase.Set(context.Background(), "email_admin_old_tickets_days", ""))
		assert.Error(t, useCase.Set(context.Background(), "email_admin_old_tickets_days", "0"))
		assert.Error(t, useCase.Set(context.Background(), "email_admin_old_tickets_days", "-3"))
		assert.Error(t, useCase.Set(context.Background(), "email_admin_old_tickets_days", "soon"))
	})

	t.Run("free-form values pass through", func(t *testing.T) {
		useCase := NewUpdateSettingsUseCase(&mockSettingRepository{}, nopLogger{})

		assert.NoError(t, useCase.Set(context.Background(), "logo_url", "https://shop.example/logo.png"))
		assert.NoError(t, useCase.Set(context.Background(), "terms_and_conditions", "## Termini\n\nTesto."))
	})
}

func TestUpdateSettingsUseCase_SetAll(t *testing.T) {
	t.Run("stores every entry", func(t *testing.T) {
		stored := map[string]string{}
		repo := &mockSettingRepository{
			SetFunc: func(ctx context.Context, s *setting.Setting) error {
				stored[s.Key().String()] = s.Value()
				return nil
			},
		}

		useCase := NewUpdateSettingsUseCase(repo, nopLogger{})
		err := useCase.SetAll(context.Background(), map[string]string{
			"email_admin_address": "admin@shop.example",
			"email_new_ticket":    "true",
		})

		require.NoError(t, err)
		assert.Len(t, stored, 2)
		assert.Equal(t, "true", stored["email_new_ticket"])
	})

	t.Run("stops at the first invalid entry", func(t *testing.T) {
		useCase := NewUpdateSettingsUseCase(&mockSettingRepository{}, nopLogger{})
		err := useCase.SetAll(context.Background(), map[string]string{
			"email_new_ticket": "maybe",
		})
		assert.Error(t, err)
	})
}

func TestGetSettingsUseCase_Get(t *testing.T) {
	t.Run("absent setting reads as empty", func(t *testing.T) {
		useCase := NewGetSettingsUseCase(&mockSettingRepository{}, nopLogger{})

		dto, err := useCase.Get(context.Background(), "logo_url")
		require.NoError(t, err)
		assert.Equal(t, "logo_url", dto.Key)
		assert.Empty(t, dto.Value)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		useCase := NewGetSettingsUseCase(&mockSettingRepository{}, nopLogger{})

		_, err := useCase.Get(context.Background(), "shoe_size")
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
