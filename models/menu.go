package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Menu struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`

	Name        string `gorm:"not null;default:'Main Menu'" json:"name"`
	Slug        string `gorm:"uniqueIndex;not null" json:"slug"`
	Description string `json:"description"`

	LogoURL      string `json:"logo_url"`
	PrimaryColor string `gorm:"default:'#E85D2C'" json:"primary_color"`
	BgColor      string `gorm:"default:'#FFFBF7'" json:"bg_color"`
	Font         string `gorm:"default:'Inter'" json:"font"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	// Optional multi-language support: language codes plus a per-record
	// translation map (record id -> translated name/description).
	Languages    StringList     `gorm:"type:jsonb" json:"languages"`
	Translations TranslationMap `gorm:"type:jsonb" json:"translations"`

	// Optional "order via phone/whatsapp" configuration for the public page.
	OrderConfig *OrderConfig `gorm:"type:jsonb" json:"order_config"`

	Categories []Category `gorm:"foreignKey:MenuID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (m *Menu) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return
}

// Translation holds the localized name/description for one category or item.
type Translation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// TranslationMap is keyed by language code, then by record id.
type TranslationMap map[string]map[string]Translation

func (t TranslationMap) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}

func (t *TranslationMap) Scan(value interface{}) error {
	return scanJSON(value, t)
}

type OrderConfig struct {
	Enabled      bool   `json:"enabled"`
	Type         string `json:"type"` // phone, whatsapp or none
	ContactValue string `json:"value"`
}

func (o OrderConfig) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *OrderConfig) Scan(value interface{}) error {
	return scanJSON(value, o)
}

// StringList is a JSON-encoded list of strings (tags, language codes,
// weekday names). Stored as jsonb on postgres, plain text on sqlite.
type StringList []string

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(s)
}

func (s *StringList) Scan(value interface{}) error {
	return scanJSON(value, s)
}

func scanJSON(value interface{}, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return errors.New("unsupported type for JSON scan")
	}
}
