package entities

import (
	"time"
)

type Feedback struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Email     string    `gorm:"size:255;index;not null" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"type:timestamptz" json:"created_at"`
}
