package entities

import (
	"time"
)

type User struct {
	ID                uint       `gorm:"primary_key" json:"id"`
	Email             string     `gorm:"uniqueIndex;not null" json:"email"`
	Username          string     `gorm:"uniqueIndex;not null" json:"username"`
	Password          string     `json:"-"`
	FirstName         string     `json:"first_name,omitempty"`
	LastName          string     `json:"last_name,omitempty"`
	PhotoURL          string     `json:"photo_url,omitempty"`
	IsVerified        bool       `json:"is_verified"`
	UsernameChangedAt *time.Time `json:"-"`

	Recipes []*Recipe `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}
