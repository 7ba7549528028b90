package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DefaultRole is assigned when a user is created without explicit roles.
const DefaultRole = "Employee"

// User represents an authenticated user in the system.
type User struct {
	ID           uuid.UUID                       `json:"id" gorm:"type:char(36);primaryKey"`
	Email        string                          `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string                          `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Roles        datatypes.JSONSlice[string]     `json:"roles" gorm:"not null"`
	Active       bool                            `json:"active" gorm:"default:true"`
	CreatedAt    time.Time                       `json:"created_at"`
	UpdatedAt    time.Time                       `json:"updated_at"`
}

// BeforeCreate sets UUID and default roles before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if len(u.Roles) == 0 {
		u.Roles = datatypes.NewJSONSlice([]string{DefaultRole})
	}
	return nil
}
