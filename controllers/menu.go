package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menucraft-backend/models"
	"menucraft-backend/store"
	"menucraft-backend/utils"
)

type MenuController struct {
	Store store.Store
}

func NewMenuController(s store.Store) *MenuController {
	return &MenuController{Store: s}
}

// GET /api/menus
func (ctl *MenuController) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	menus, err := ctl.Store.MenusByUser(userID)
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menus": menus})
}

type CreateMenuInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// POST /api/menus
func (ctl *MenuController) Create(c *gin.Context) {
	user, ok := currentUser(c, ctl.Store)
	if !ok {
		return
	}

	var input CreateMenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	menu := models.Menu{
		ID:           uuid.New(),
		UserID:       user.ID,
		Name:         input.Name,
		Slug:         utils.MenuSlug(input.Name, user.Email, uuid.NewString()),
		Description:  input.Description,
		PrimaryColor: "#E85D2C",
		BgColor:      "#FFFBF7",
		Font:         "Inter",
		IsActive:     true,
	}
	if err := ctl.Store.CreateMenu(&menu); err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

type UpdateMenuInput struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url"`
	PrimaryColor *string `json:"primary_color"`
	BgColor      *string `json:"bg_color"`
	Font         *string `json:"font"`
	IsActive     *bool   `json:"is_active"`
}

// PUT /api/menus/:id
func (ctl *MenuController) Update(c *gin.Context) {
	menu, ok := ctl.ownedMenu(c)
	if !ok {
		return
	}

	var input UpdateMenuInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		menu.Name = *input.Name
	}
	if input.Description != nil {
		menu.Description = *input.Description
	}
	if input.LogoURL != nil {
		menu.LogoURL = *input.LogoURL
	}
	if input.PrimaryColor != nil {
		menu.PrimaryColor = *input.PrimaryColor
	}
	if input.BgColor != nil {
		menu.BgColor = *input.BgColor
	}
	if input.Font != nil {
		menu.Font = *input.Font
	}
	if input.IsActive != nil {
		menu.IsActive = *input.IsActive
	}

	if err := ctl.Store.UpdateMenu(menu); err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

// DELETE /api/menus/:id — cascades to categories and items.
func (ctl *MenuController) Delete(c *gin.Context) {
	menu, ok := ctl.ownedMenu(c)
	if !ok {
		return
	}

	if err := ctl.Store.DeleteMenu(menu.ID); err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type UpdateLanguagesInput struct {
	Languages    models.StringList     `json:"languages" binding:"required"`
	Translations models.TranslationMap `json:"translations"`
}

// PUT /api/menus/:id/languages
func (ctl *MenuController) UpdateLanguages(c *gin.Context) {
	menu, ok := ctl.ownedMenu(c)
	if !ok {
		return
	}

	var input UpdateLanguagesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	menu.Languages = input.Languages
	if input.Translations != nil {
		menu.Translations = input.Translations
	}

	if err := ctl.Store.UpdateMenu(menu); err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

type UpdateOrderConfigInput struct {
	Enabled bool   `json:"enabled"`
	Type    string `json:"type" binding:"omitempty,oneof=phone whatsapp none"`
	Value   string `json:"value"`
}

// PUT /api/menus/:id/order-config
func (ctl *MenuController) UpdateOrderConfig(c *gin.Context) {
	menu, ok := ctl.ownedMenu(c)
	if !ok {
		return
	}

	var input UpdateOrderConfigInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	menu.OrderConfig = &models.OrderConfig{
		Enabled:      input.Enabled,
		Type:         input.Type,
		ContactValue: input.Value,
	}

	if err := ctl.Store.UpdateMenu(menu); err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"menu": menu})
}

type ReorderInput struct {
	Order []uuid.UUID `json:"order" binding:"required"`
}

// PUT /api/menus/:id/reorder-categories — sort positions follow array index.
func (ctl *MenuController) ReorderCategories(c *gin.Context) {
	menu, ok := ctl.ownedMenu(c)
	if !ok {
		return
	}

	var input ReorderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := ctl.Store.ReorderCategories(menu.ID, input.Order); err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ctl *MenuController) ownedMenu(c *gin.Context) (*models.Menu, bool) {
	return ownedMenuParam(c, ctl.Store)
}
