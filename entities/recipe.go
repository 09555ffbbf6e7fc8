package entities

type Recipe struct {
	ID           uint   `gorm:"primary_key" json:"id"`
	UserID       uint   `gorm:"index;not null" json:"user_id"`
	Title        string `gorm:"not null" json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Instructions string `gorm:"type:text" json:"instructions"`
	ImageURL     string `json:"image_url,omitempty"`
	IsPublished  bool   `gorm:"default:true" json:"is_published"`
	CategoryID   *uint  `json:"category_id,omitempty"`

	User        *User               `gorm:"foreignKey:UserID" json:"-"`
	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

type RecipeIngredient struct {
	RecipeID     uint `gorm:"primaryKey" json:"recipe_id"`
	IngredientID uint `gorm:"primaryKey" json:"ingredient_id"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE" json:"-"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID;constraint:OnDelete:CASCADE" json:"-"`
}
