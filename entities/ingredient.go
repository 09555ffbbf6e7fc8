package entities

import (
	"time"
)

type Ingredient struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	NameNorm  string    `gorm:"size:120;uniqueIndex:uq_ingredient_name_norm;not null" json:"-"`
	CreatedAt time.Time `gorm:"type:timestamptz" json:"created_at"`
}
