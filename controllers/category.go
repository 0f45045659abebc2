package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menucraft-backend/models"
	"menucraft-backend/store"
	"menucraft-backend/utils"
)

type CategoryController struct {
	Store store.Store
}

func NewCategoryController(s store.Store) *CategoryController {
	return &CategoryController{Store: s}
}

// GET /api/menus/:id/categories — categories with nested items, both
// ordered by sort position.
func (ctl *CategoryController) ListByMenu(c *gin.Context) {
	menu, ok := ctl.ownedMenu(c)
	if !ok {
		return
	}

	categories, err := ctl.Store.CategoriesWithItems(menu.ID, false)
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

type CreateCategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// POST /api/menus/:id/categories
func (ctl *CategoryController) Create(c *gin.Context) {
	menu, ok := ctl.ownedMenu(c)
	if !ok {
		return
	}

	var input CreateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Name == "" {
		input.Name = "New Category"
	}

	category := models.Category{
		MenuID:      menu.ID,
		Name:        input.Name,
		Description: input.Description,
	}
	if err := ctl.Store.CreateCategory(&category); err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	category.Items = []models.Item{}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

type UpdateCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	SortOrder   *int    `json:"sort_order"`
}

// PUT /api/categories/:id
func (ctl *CategoryController) Update(c *gin.Context) {
	category, ok := ctl.ownedCategory(c)
	if !ok {
		return
	}

	var input UpdateCategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		category.Name = *input.Name
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}

	if err := ctl.Store.UpdateCategory(category); err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /api/categories/:id — cascades to the category's items.
func (ctl *CategoryController) Delete(c *gin.Context) {
	category, ok := ctl.ownedCategory(c)
	if !ok {
		return
	}

	if err := ctl.Store.DeleteCategory(category.ID); err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// PUT /api/categories/:id/reorder-items
func (ctl *CategoryController) ReorderItems(c *gin.Context) {
	category, ok := ctl.ownedCategory(c)
	if !ok {
		return
	}

	var input ReorderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := ctl.Store.ReorderItems(category.ID, input.Order); err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ctl *CategoryController) ownedMenu(c *gin.Context) (*models.Menu, bool) {
	return ownedMenuParam(c, ctl.Store)
}

func (ctl *CategoryController) ownedCategory(c *gin.Context) (*models.Category, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return nil, false
	}

	catID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		return nil, false
	}

	category, err := ctl.Store.CategoryOwned(catID, userID)
	if err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		} else {
			utils.RespondInternalError(c, err)
		}
		return nil, false
	}
	return category, true
}
