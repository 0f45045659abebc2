package store

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"menucraft-backend/models"
)

type gormStore struct {
	db *gorm.DB
}

// New wraps a gorm connection in the Store interface.
func New(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// ---------- Users ----------

func (s *gormStore) CreateUser(u *models.User) error {
	return s.db.Create(u).Error
}

func (s *gormStore) UserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *gormStore) UpdateUser(u *models.User) error {
	return s.db.Save(u).Error
}

// ---------- Menus ----------

func (s *gormStore) CreateMenu(m *models.Menu) error {
	return s.db.Create(m).Error
}

func (s *gormStore) MenusByUser(userID uuid.UUID) ([]models.Menu, error) {
	var menus []models.Menu
	err := s.db.Where("user_id = ?", userID).Order("created_at").Find(&menus).Error
	return menus, err
}

func (s *gormStore) MenuIDsByUser(userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.db.Model(&models.Menu{}).Where("user_id = ?", userID).Pluck("id", &ids).Error
	return ids, err
}

func (s *gormStore) MenuOwned(menuID, userID uuid.UUID) (*models.Menu, error) {
	var menu models.Menu
	if err := s.db.First(&menu, "id = ? AND user_id = ?", menuID, userID).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (s *gormStore) MenuByID(menuID uuid.UUID) (*models.Menu, error) {
	var menu models.Menu
	if err := s.db.First(&menu, "id = ?", menuID).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (s *gormStore) ActiveMenuBySlug(slug string) (*models.Menu, error) {
	var menu models.Menu
	if err := s.db.First(&menu, "slug = ? AND is_active = ?", slug, true).Error; err != nil {
		return nil, err
	}
	return &menu, nil
}

func (s *gormStore) UpdateMenu(m *models.Menu) error {
	return s.db.Save(m).Error
}

// DeleteMenu removes the menu with all its categories, items and specials
// in one transaction, so readers never observe a half-deleted tree.
func (s *gormStore) DeleteMenu(menuID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		catIDs := tx.Model(&models.Category{}).Select("id").Where("menu_id = ?", menuID)
		if err := tx.Where("category_id IN (?)", catIDs).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", menuID).Delete(&models.Category{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_id = ?", menuID).Delete(&models.MenuSpecials{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Menu{}, "id = ?", menuID).Error
	})
}

func (s *gormStore) ReorderCategories(menuID uuid.UUID, orderedIDs []uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for idx, id := range orderedIDs {
			if err := tx.Model(&models.Category{}).
				Where("id = ? AND menu_id = ?", id, menuID).
				Update("sort_order", idx).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ---------- Categories ----------

func (s *gormStore) CreateCategory(c *models.Category) error {
	c.SortOrder = s.nextSortOrder(&models.Category{}, "menu_id = ?", c.MenuID)
	return s.db.Create(c).Error
}

func (s *gormStore) CategoryOwned(catID, userID uuid.UUID) (*models.Category, error) {
	var cat models.Category
	err := s.db.Joins("JOIN menus ON menus.id = categories.menu_id").
		Where("categories.id = ? AND menus.user_id = ?", catID, userID).
		First(&cat).Error
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *gormStore) CategoriesWithItems(menuID uuid.UUID, availableOnly bool) ([]models.Category, error) {
	var categories []models.Category
	itemScope := func(db *gorm.DB) *gorm.DB {
		db = db.Order("items.sort_order")
		if availableOnly {
			db = db.Where("items.is_available = ?", true)
		}
		return db
	}
	err := s.db.Preload("Items", itemScope).
		Where("menu_id = ?", menuID).
		Order("sort_order").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	// Items always serialize with a tag list, never null
	for ci := range categories {
		if categories[ci].Items == nil {
			categories[ci].Items = []models.Item{}
		}
		for ii := range categories[ci].Items {
			if categories[ci].Items[ii].Tags == nil {
				categories[ci].Items[ii].Tags = models.StringList{}
			}
		}
	}
	return categories, nil
}

func (s *gormStore) UpdateCategory(c *models.Category) error {
	return s.db.Save(c).Error
}

func (s *gormStore) DeleteCategory(catID uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("category_id = ?", catID).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, "id = ?", catID).Error
	})
}

func (s *gormStore) ReorderItems(catID uuid.UUID, orderedIDs []uuid.UUID) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		for idx, id := range orderedIDs {
			if err := tx.Model(&models.Item{}).
				Where("id = ? AND category_id = ?", id, catID).
				Update("sort_order", idx).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ---------- Items ----------

func (s *gormStore) CreateItem(i *models.Item) error {
	i.SortOrder = s.nextSortOrder(&models.Item{}, "category_id = ?", i.CategoryID)
	if i.Tags == nil {
		i.Tags = models.StringList{}
	}
	return s.db.Create(i).Error
}

func (s *gormStore) ItemOwned(itemID, userID uuid.UUID) (*models.Item, error) {
	var item models.Item
	err := s.db.Joins("JOIN categories ON categories.id = items.category_id").
		Joins("JOIN menus ON menus.id = categories.menu_id").
		Where("items.id = ? AND menus.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *gormStore) UpdateItem(i *models.Item) error {
	return s.db.Save(i).Error
}

func (s *gormStore) DeleteItem(itemID uuid.UUID) error {
	return s.db.Delete(&models.Item{}, "id = ?", itemID).Error
}

// DuplicateItem copies every field of the source item except its identity,
// appends " (Copy)" to the name and places it after its siblings.
func (s *gormStore) DuplicateItem(src *models.Item) (*models.Item, error) {
	dup := models.Item{
		CategoryID:  src.CategoryID,
		Name:        src.Name + " (Copy)",
		Description: src.Description,
		Price:       src.Price,
		ImageURL:    src.ImageURL,
		Tags:        append(models.StringList{}, src.Tags...),
		IsAvailable: src.IsAvailable,
		IsFeatured:  src.IsFeatured,
	}
	if err := s.CreateItem(&dup); err != nil {
		return nil, err
	}
	return &dup, nil
}

// nextSortOrder appends after existing siblings: max(sort_order)+1, or 0
// when there are none. Monotonic append, no dense re-indexing.
func (s *gormStore) nextSortOrder(model interface{}, query string, arg interface{}) int {
	var next int
	s.db.Model(model).Where(query, arg).
		Select("COALESCE(MAX(sort_order), -1) + 1").Scan(&next)
	return next
}

// ---------- Analytics events ----------

func (s *gormStore) InsertEvent(e *models.AnalyticsEvent) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	return s.db.Create(e).Error
}

func (s *gormStore) EventsForMenus(menuIDs []uuid.UUID, since *time.Time) ([]models.AnalyticsEvent, error) {
	var events []models.AnalyticsEvent
	q := s.db.Where("menu_id IN ?", menuIDs)
	if since != nil {
		q = q.Where("timestamp >= ?", *since)
	}
	err := q.Order("id").Find(&events).Error
	return events, err
}

func (s *gormStore) CountEvents() (int64, error) {
	var count int64
	err := s.db.Model(&models.AnalyticsEvent{}).Count(&count).Error
	return count, err
}

// PruneOldestEvents drops everything but the newest `keep` events and
// returns the number of deleted rows.
func (s *gormStore) PruneOldestEvents(keep int64) (int64, error) {
	newest := s.db.Model(&models.AnalyticsEvent{}).
		Select("id").Order("id DESC").Limit(int(keep))
	res := s.db.Where("id NOT IN (?)", newest).Delete(&models.AnalyticsEvent{})
	return res.RowsAffected, res.Error
}

// ---------- Daily specials ----------

func (s *gormStore) SpecialsByMenu(menuID uuid.UUID) (*models.MenuSpecials, error) {
	var specials models.MenuSpecials
	if err := s.db.First(&specials, "menu_id = ?", menuID).Error; err != nil {
		return nil, err
	}
	return &specials, nil
}

func (s *gormStore) SaveSpecials(sp *models.MenuSpecials) error {
	var existing models.MenuSpecials
	err := s.db.First(&existing, "menu_id = ?", sp.MenuID).Error
	if err == nil {
		sp.ID = existing.ID
		return s.db.Save(sp).Error
	}
	if !IsNotFound(err) {
		return err
	}
	return s.db.Create(sp).Error
}
