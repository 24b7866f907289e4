package models

import (
	"time"
)

type UserModel struct {
	ID           uint      `gorm:"primaryKey"`
	Email        string    `gorm:"size:200;not null;uniqueIndex"`
	PasswordHash string    `gorm:"size:200;not null"`
	Role         string    `gorm:"size:20;not null;default:'staff'"`
	CreatedAt    time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
