package models

import "gorm.io/gorm"

// Category is the closed set of garment/item types a product can belong to.
type Category string

const (
	CategoryShirt       Category = "shirt"
	CategoryPants       Category = "pants"
	CategoryShoes       Category = "shoes"
	CategoryLeggings    Category = "leggings"
	CategoryHat         Category = "hat"
	CategoryAccessories Category = "accessories"
)

// CategoryLabels maps each category to its display label for rendering.
var CategoryLabels = map[Category]string{
	CategoryShirt:       "Shirts",
	CategoryPants:       "Pants",
	CategoryShoes:       "Shoes",
	CategoryLeggings:    "Leggings",
	CategoryHat:         "Hats",
	CategoryAccessories: "Accessories",
}

// ParseCategory returns the category matching s, or false if s is not a
// recognized category key.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	_, ok := CategoryLabels[c]
	return c, ok
}

// Gender is the closed set of target audiences used for catalog partitioning.
type Gender string

const (
	GenderMen   Gender = "men"
	GenderWomen Gender = "women"
	GenderKids  Gender = "kids"
)

// GenderLabels maps each gender to its display label for rendering.
var GenderLabels = map[Gender]string{
	GenderMen:   "Men",
	GenderWomen: "Women",
	GenderKids:  "Kids",
}

// ParseGender returns the gender matching s, or false if s is not a
// recognized gender key.
func ParseGender(s string) (Gender, bool) {
	g := Gender(s)
	_, ok := GenderLabels[g]
	return g, ok
}

// Product represents a product in the catalog.
// Exactly one of SizeClothes/SizeShoes is set, keyed by category:
// shoes carry a "min-max" shoe-size range, everything else a clothing size.
type Product struct {
	ID          string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Description string   `json:"description" validate:"required,max=500"`
	Price       float64  `json:"price" validate:"gte=0"`
	ImageURL    string   `json:"image_url" gorm:"type:varchar(255)"`
	IsHot       bool     `json:"is_hot" gorm:"index"`
	Category    Category `json:"category" gorm:"type:varchar(20);index"`
	Gender      Gender   `json:"gender" gorm:"type:varchar(10);index"`
	SizeClothes *string  `json:"size_clothes,omitempty" gorm:"type:varchar(20)"`
	SizeShoes   *string  `json:"size_shoes,omitempty" gorm:"type:varchar(20)"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
