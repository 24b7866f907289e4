package models

import (
	"time"
)

// SettingModel is the GORM model for the settings table
type SettingModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	SettingKey string    `gorm:"column:setting_key;type:varchar(100);not null;uniqueIndex"`
	Value      string    `gorm:"column:value;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName returns the table name for GORM
func (SettingModel) TableName() string {
	return "settings"
}
