package models

import (
	"time"
)

type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Username   string    `json:"username"`
	Email      string    `json:"email" gorm:"unique"`
	Password   string    `json:"password,omitempty"`
	IsClient   bool      `json:"is_client"`
	IsLawyer   bool      `json:"is_lawyer"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
