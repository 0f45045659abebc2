package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MenuSpecials holds the per-menu daily specials configuration: a weekday
// map of item price/label overrides plus an optional happy hour window.
type MenuSpecials struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MenuID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"menu_id"`

	Days      SpecialDays `gorm:"type:jsonb" json:"days"`
	HappyHour HappyHour   `gorm:"type:jsonb" json:"happy_hour"`

	UpdatedAt time.Time `json:"-"`
}

func (s *MenuSpecials) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// SpecialItem overrides one item's price and/or label for a given weekday.
type SpecialItem struct {
	ItemID uuid.UUID `json:"item_id"`
	Label  string    `json:"label"`
	Price  float64   `json:"price"`
}

// SpecialDays is keyed by lowercase weekday name ("monday".."sunday").
type SpecialDays map[string][]SpecialItem

func (d SpecialDays) Value() (driver.Value, error) {
	if d == nil {
		return json.Marshal(SpecialDays{})
	}
	return json.Marshal(d)
}

func (d *SpecialDays) Scan(value interface{}) error {
	return scanJSON(value, d)
}

type HappyHour struct {
	Enabled  bool       `json:"enabled"`
	Start    string     `json:"start"` // "HH:MM", 24h clock
	End      string     `json:"end"`
	Label    string     `json:"label"`
	Weekdays StringList `json:"weekdays"`
}

func (h HappyHour) Value() (driver.Value, error) {
	return json.Marshal(h)
}

func (h *HappyHour) Scan(value interface{}) error {
	return scanJSON(value, h)
}
