package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Paper is one exam sitting of a course, unique by year. Questions is an
// ordered list of question ids.
type Paper struct {
	ID        uuid.UUID                      `json:"id" gorm:"type:char(36);primaryKey"`
	Year      string                         `json:"year" gorm:"uniqueIndex;size:64;not null"`
	CourseID  uuid.UUID                      `json:"courseId" gorm:"type:char(36);not null;index"`
	Questions datatypes.JSONSlice[uuid.UUID] `json:"questions"`
	CreatedAt time.Time                      `json:"created_at"`
	UpdatedAt time.Time                      `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Paper) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
