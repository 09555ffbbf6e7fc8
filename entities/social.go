package entities

import (
	"time"
)

type RecipeLike struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	RecipeID  uint      `gorm:"index;uniqueIndex:uq_recipe_like;not null" json:"recipe_id"`
	UserID    uint      `gorm:"index;uniqueIndex:uq_recipe_like;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"type:timestamptz" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type SavedRecipe struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	RecipeID  uint      `gorm:"index;uniqueIndex:uq_saved_recipe;not null" json:"recipe_id"`
	UserID    uint      `gorm:"index;uniqueIndex:uq_saved_recipe;not null" json:"user_id"`
	CreatedAt time.Time `gorm:"type:timestamptz" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type Comment struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	RecipeID  uint      `gorm:"index;not null" json:"recipe_id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	ParentID  *uint     `json:"parent_id,omitempty"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"type:timestamptz" json:"created_at"`

	Recipe  *Recipe    `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	User    *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Parent  *Comment   `gorm:"foreignKey:ParentID" json:"-"`
	Replies []*Comment `gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE" json:"-"`
}
