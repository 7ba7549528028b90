package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Exam is the top of the catalogue hierarchy. Courses reference it by ExamID;
// the Courses column is an ordered list of course ids kept for display order.
type Exam struct {
	ID        uuid.UUID                      `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string                         `json:"title" gorm:"uniqueIndex;size:255;not null"`
	Courses   datatypes.JSONSlice[uuid.UUID] `json:"courses"`
	CreatedAt time.Time                      `json:"created_at"`
	UpdatedAt time.Time                      `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Exam) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
