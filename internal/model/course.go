package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Course belongs to an Exam. Years is an ordered list of paper ids.
//
// No foreign-key constraint backs ExamID: a course may reference an exam that
// was never created. Deletion is guarded the other way round, by the
// dependent checks in the services.
type Course struct {
	ID        uuid.UUID                      `json:"id" gorm:"type:char(36);primaryKey"`
	Title     string                         `json:"title" gorm:"uniqueIndex;size:255;not null"`
	ExamID    uuid.UUID                      `json:"examId" gorm:"type:char(36);not null;index"`
	Structure string                         `json:"structure" gorm:"size:255;not null"`
	Years     datatypes.JSONSlice[uuid.UUID] `json:"years"`
	CreatedAt time.Time                      `json:"created_at"`
	UpdatedAt time.Time                      `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
