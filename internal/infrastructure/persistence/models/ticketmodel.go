package models

import (
	"time"

	"gorm.io/datatypes"
)

type TicketModel struct {
	ID              uint    `gorm:"primaryKey"`
	Number          string  `gorm:"uniqueIndex;size:50;not null"`
	CustomerName    string  `gorm:"size:200;not null"`
	CustomerEmail   string  `gorm:"size:200;not null;index"`
	CustomerPhone   string  `gorm:"size:50"`
	DeviceType      string  `gorm:"size:100;not null"`
	Description     string  `gorm:"type:text;not null"`
	Status          string  `gorm:"size:30;not null;index"`
	Priority        string  `gorm:"size:20;not null;index"`
	Price           *float64
	PurchaseDate    *datatypes.Date
	OrderID         string    `gorm:"size:100"`
	DevicePassword  string    `gorm:"size:200"`
	UserID          string    `gorm:"size:100;not null;index"`
	AssignedTo      string    `gorm:"size:200"`
	AssignedToEmail string    `gorm:"size:200"`
	CreatedAt       time.Time `gorm:"autoCreateTime;not null;index"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type AttachmentModel struct {
	ID         uint      `gorm:"primaryKey"`
	TicketID   uint      `gorm:"not null;index"`
	FileURL    string    `gorm:"size:500;not null"`
	FileType   string    `gorm:"size:20;not null"`
	UploadedAt time.Time `gorm:"autoCreateTime;not null"`
}

func (AttachmentModel) TableName() string {
	return "ticket_attachments"
}
