package domain

import "time"

// Job is a posted role whose description is the reference for scoring uploads.
type Job struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      string `gorm:"size:128;index;not null"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text;not null"`
	CreatedAt   time.Time
}
