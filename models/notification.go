package models

import (
	"gorm.io/gorm"
)

// Notification rows are append-only; they are created as a side effect of
// lifecycle transitions and never by a caller directly.
type Notification struct {
	gorm.Model
	RecipientID uint   `json:"recipient_id"`
	Recipient   User   `json:"recipient,omitempty" gorm:"foreignKey:RecipientID"`
	Message     string `json:"message"`
	IsRead      bool   `json:"is_read" gorm:"default:false"`
}
