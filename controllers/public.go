package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"menucraft-backend/models"
	"menucraft-backend/store"
	"menucraft-backend/utils"
)

type PublicController struct {
	Store store.Store
}

func NewPublicController(s store.Store) *PublicController {
	return &PublicController{Store: s}
}

// GET /api/public/menu/:slug — the customer-facing read path. Only active
// menus resolve, and only available items are included. Unauthenticated.
func (ctl *PublicController) Menu(c *gin.Context) {
	menu, err := ctl.Store.ActiveMenuBySlug(c.Param("slug"))
	if err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(c, http.StatusNotFound, "Menu not found")
		} else {
			utils.RespondInternalError(c, err)
		}
		return
	}

	categories, err := ctl.Store.CategoriesWithItems(menu.ID, true)
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	owner, err := ctl.Store.UserByID(menu.UserID)
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	response := gin.H{
		"id":              menu.ID,
		"name":            menu.Name,
		"slug":            menu.Slug,
		"description":     menu.Description,
		"logo_url":        menu.LogoURL,
		"primary_color":   menu.PrimaryColor,
		"bg_color":        menu.BgColor,
		"font":            menu.Font,
		"restaurant_name": owner.RestaurantName,
		"hours":           owner.Hours,
		"location":        owner.Location,
		"phone":           owner.Phone,
		"languages":       menu.Languages,
		"translations":    menu.Translations,
		"order_config":    menu.OrderConfig,
		"categories":      categories,
	}

	// Today's specials and happy hour, when configured
	if specials, err := ctl.Store.SpecialsByMenu(menu.ID); err == nil {
		now := time.Now()
		today := utils.Weekday(now)
		if entries, ok := specials.Days[today]; ok && len(entries) > 0 {
			response["specials"] = entries
		}
		if specials.HappyHour.Enabled && contains(specials.HappyHour.Weekdays, today) {
			response["happy_hour"] = specials.HappyHour
		}
	}

	c.JSON(http.StatusOK, gin.H{"menu": response})
}

func contains(list models.StringList, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
