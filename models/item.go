package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Item struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID uuid.UUID `gorm:"type:uuid;index;not null" json:"category_id"`

	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	ImageURL    string  `json:"image_url"`

	// Dietary/flavor tags, e.g. ["vegan","spicy"]
	Tags StringList `gorm:"type:jsonb" json:"tags"`

	IsAvailable bool `gorm:"default:true" json:"is_available"`
	IsFeatured  bool `gorm:"default:false" json:"is_featured"`
	SortOrder   int  `gorm:"default:0" json:"sort_order"`
}

func (i *Item) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
