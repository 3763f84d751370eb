package models

import (
	"errors"

	"gorm.io/gorm"
)

// Role is the caller's resolved role, derived from which profile row the
// account owns. An account with neither profile resolves to RoleUnresolved.
type Role string

const (
	RoleUnresolved Role = "unresolved"
	RoleClient     Role = "client"
	RoleLawyer     Role = "lawyer"
)

type ClientProfile struct {
	gorm.Model
	UserID         uint   `json:"user_id" gorm:"uniqueIndex"`
	User           User   `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Address        string `json:"address"`
	City           string `json:"city" gorm:"default:Unknown"`
	ProfilePicture string `json:"profile_picture"`
}

type LawyerProfile struct {
	gorm.Model
	UserID         uint   `json:"user_id" gorm:"uniqueIndex"`
	User           User   `json:"user" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Specialization string `json:"specialization"`
	LicenseNumber  string `json:"license_number" gorm:"unique"`
	Verified       bool   `json:"verified"`
	Address        string `json:"address"`
	Experience     int    `json:"experience" gorm:"default:0"`
	Location       string `json:"location"`
	City           string `json:"city" gorm:"default:Unknown"`
	ProfilePicture string `json:"profile_picture"`
	// IsVerified mirrors the owning account's flag at read time; it is never stored.
	IsVerified bool `json:"is_verified" gorm:"-"`
}

func (p *LawyerProfile) AfterFind(tx *gorm.DB) (err error) {
	p.IsVerified = p.User.IsVerified
	return
}

// ResolveRole determines the caller's role from profile-row existence. Client
// membership is checked first, mirroring registration which materializes a
// client profile when both role flags are set.
func ResolveRole(tx *gorm.DB, userID uint) (Role, uint, error) {
	var client ClientProfile
	err := tx.Where("user_id = ?", userID).First(&client).Error
	if err == nil {
		return RoleClient, client.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return RoleUnresolved, 0, err
	}

	var lawyer LawyerProfile
	err = tx.Where("user_id = ?", userID).First(&lawyer).Error
	if err == nil {
		return RoleLawyer, lawyer.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return RoleUnresolved, 0, err
	}

	// No profile yet is a valid state, not an error.
	return RoleUnresolved, 0, nil
}
