package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Question belongs to a Paper. Number is unique across all questions and
// compared numerically.
type Question struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Number    int       `json:"number" gorm:"uniqueIndex;not null"`
	PaperID   uuid.UUID `json:"paperId" gorm:"type:char(36);not null;index"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	Answer    string    `json:"answer" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
