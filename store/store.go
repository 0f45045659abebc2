// Package store is the record access layer. Handlers and the analytics
// aggregator talk to the Store interface so they stay storage-agnostic;
// the gorm implementation below is the single persistence model.
package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"menucraft-backend/models"
)

// ErrNotFound is returned when a record does not exist or is not owned by
// the acting user. Callers must not distinguish the two cases.
var ErrNotFound = gorm.ErrRecordNotFound

// IsNotFound reports whether err means "absent or not yours".
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

type Store interface {
	// Users
	CreateUser(u *models.User) error
	UserByID(id uuid.UUID) (*models.User, error)
	UserByEmail(email string) (*models.User, error)
	UpdateUser(u *models.User) error

	// Menus
	CreateMenu(m *models.Menu) error
	MenusByUser(userID uuid.UUID) ([]models.Menu, error)
	MenuIDsByUser(userID uuid.UUID) ([]uuid.UUID, error)
	MenuOwned(menuID, userID uuid.UUID) (*models.Menu, error)
	MenuByID(menuID uuid.UUID) (*models.Menu, error)
	ActiveMenuBySlug(slug string) (*models.Menu, error)
	UpdateMenu(m *models.Menu) error
	DeleteMenu(menuID uuid.UUID) error
	ReorderCategories(menuID uuid.UUID, orderedIDs []uuid.UUID) error

	// Categories
	CreateCategory(c *models.Category) error
	CategoryOwned(catID, userID uuid.UUID) (*models.Category, error)
	CategoriesWithItems(menuID uuid.UUID, availableOnly bool) ([]models.Category, error)
	UpdateCategory(c *models.Category) error
	DeleteCategory(catID uuid.UUID) error
	ReorderItems(catID uuid.UUID, orderedIDs []uuid.UUID) error

	// Items
	CreateItem(i *models.Item) error
	ItemOwned(itemID, userID uuid.UUID) (*models.Item, error)
	UpdateItem(i *models.Item) error
	DeleteItem(itemID uuid.UUID) error
	DuplicateItem(src *models.Item) (*models.Item, error)

	// Analytics events
	InsertEvent(e *models.AnalyticsEvent) error
	EventsForMenus(menuIDs []uuid.UUID, since *time.Time) ([]models.AnalyticsEvent, error)
	CountEvents() (int64, error)
	PruneOldestEvents(keep int64) (int64, error)

	// Daily specials
	SpecialsByMenu(menuID uuid.UUID) (*models.MenuSpecials, error)
	SaveSpecials(s *models.MenuSpecials) error
}
