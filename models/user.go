package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"morvarid-backend/utils"
)

// Roles a user can hold. Non-admin roles must be assigned to a farm.
const (
	RoleAdmin            = "admin"
	RoleRecordingOfficer = "recording_officer"
	RoleSalesOfficer     = "sales_officer"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Username string    `gorm:"uniqueIndex;not null" json:"username"`
	Password string    `gorm:"not null" json:"-"`
	FullName string    `gorm:"not null" json:"fullName"`

	Role           string     `gorm:"type:varchar(20);not null" json:"role"`
	AssignedFarmID *uuid.UUID `gorm:"type:uuid;index" json:"assignedFarmId"`

	LastLogin *time.Time `json:"lastLogin"`
	IsActive  bool       `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Initialize UUID and hash the password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
