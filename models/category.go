package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MenuID uuid.UUID `gorm:"type:uuid;index;not null" json:"menu_id"`

	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`

	Items []Item `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
