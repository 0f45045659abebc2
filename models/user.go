package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`

	RestaurantName string `json:"restaurantName"`
	Plan           string `gorm:"type:varchar(20);default:'free'" json:"plan"`

	StripeCustomerID string `json:"-"`

	// Free-text profile fields shown on the public menu page
	Hours    string `json:"hours"`
	Location string `json:"location"`
	Phone    string `json:"phone"`

	Menus []Menu `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
}

// Initialize UUID before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}
