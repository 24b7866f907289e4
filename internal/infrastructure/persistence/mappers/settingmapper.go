package mappers

import (
	"fixmylab/internal/domain/setting"
	"fixmylab/internal/infrastructure/persistence/models"
)

// SettingMapper handles the conversion between Setting domain entities and persistence models.
type SettingMapper interface {
	ToModel(s *setting.Setting) *models.SettingModel
	ToDomain(model *models.SettingModel) *setting.Setting
	ToDomainList(modelList []*models.SettingModel) []*setting.Setting
}

type SettingMapperImpl struct{}

func NewSettingMapper() SettingMapper {
	return &SettingMapperImpl{}
}

func (m *SettingMapperImpl) ToModel(s *setting.Setting) *models.SettingModel {
	return &models.SettingModel{
		SettingKey: string(s.Key()),
		Value:      s.Value(),
		UpdatedAt:  s.UpdatedAt(),
	}
}

func (m *SettingMapperImpl) ToDomain(model *models.SettingModel) *setting.Setting {
	return setting.ReconstructSetting(
		setting.Key(model.SettingKey),
		model.Value,
		model.UpdatedAt,
	)
}

func (m *SettingMapperImpl) ToDomainList(modelList []*models.SettingModel) []*setting.Setting {
	settings := make([]*setting.Setting, len(modelList))
	for i, model := range modelList {
		settings[i] = m.ToDomain(model)
	}
	return settings
}
