package models

import (
	"time"

	"github.com/google/uuid"
)

// Event kinds accepted by the tracking endpoint.
const (
	EventPageView       = "page_view"
	EventItemClick      = "item_click"
	EventCategorySwitch = "category_switch"
	EventQRScan         = "qr_scan"
)

func IsValidEventType(t string) bool {
	switch t {
	case EventPageView, EventItemClick, EventCategorySwitch, EventQRScan:
		return true
	}
	return false
}

// AnalyticsEvent is an append-only fact record. Events are never mutated;
// the retention job may drop the oldest rows once the log exceeds its cap.
type AnalyticsEvent struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	EventType string `gorm:"type:varchar(20);index;not null" json:"event_type"`

	MenuID     *uuid.UUID `gorm:"type:uuid;index" json:"menu_id"`
	ItemID     *uuid.UUID `gorm:"type:uuid" json:"item_id"`
	CategoryID *uuid.UUID `gorm:"type:uuid" json:"category_id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id"`

	Slug      string `json:"slug"`
	UserAgent string `json:"user_agent"`
	Referrer  string `json:"referrer"`
	IsMobile  bool   `gorm:"default:false" json:"is_mobile"`

	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
}
