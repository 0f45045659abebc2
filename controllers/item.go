package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menucraft-backend/models"
	"menucraft-backend/store"
	"menucraft-backend/utils"
)

type ItemController struct {
	Store store.Store
}

func NewItemController(s store.Store) *ItemController {
	return &ItemController{Store: s}
}

type CreateItemInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Price       float64           `json:"price" binding:"omitempty,min=0"`
	ImageURL    string            `json:"image_url"`
	Tags        models.StringList `json:"tags"`
}

// POST /api/categories/:id/items
func (ctl *ItemController) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	catID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		return
	}
	category, err := ctl.Store.CategoryOwned(catID, userID)
	if err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(c, http.StatusNotFound, "Category not found")
		} else {
			utils.RespondInternalError(c, err)
		}
		return
	}

	var input CreateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Name == "" {
		input.Name = "New Item"
	}

	item := models.Item{
		CategoryID:  category.ID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Tags:        input.Tags,
		IsAvailable: true,
	}
	if err := ctl.Store.CreateItem(&item); err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

type UpdateItemInput struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Price       *float64           `json:"price" binding:"omitempty,min=0"`
	ImageURL    *string            `json:"image_url"`
	Tags        *models.StringList `json:"tags"`
	IsAvailable *bool              `json:"is_available"`
	IsFeatured  *bool              `json:"is_featured"`
	SortOrder   *int               `json:"sort_order"`
}

// PUT /api/items/:id
func (ctl *ItemController) Update(c *gin.Context) {
	item, ok := ctl.ownedItem(c)
	if !ok {
		return
	}

	var input UpdateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Price != nil {
		item.Price = *input.Price
	}
	if input.ImageURL != nil {
		item.ImageURL = *input.ImageURL
	}
	if input.Tags != nil {
		item.Tags = *input.Tags
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	if input.IsFeatured != nil {
		item.IsFeatured = *input.IsFeatured
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}

	if err := ctl.Store.UpdateItem(item); err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DELETE /api/items/:id
func (ctl *ItemController) Delete(c *gin.Context) {
	item, ok := ctl.ownedItem(c)
	if !ok {
		return
	}

	if err := ctl.Store.DeleteItem(item.ID); err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /api/items/:id/duplicate — clones everything but identity and name,
// appending the copy after its siblings.
func (ctl *ItemController) Duplicate(c *gin.Context) {
	item, ok := ctl.ownedItem(c)
	if !ok {
		return
	}

	dup, err := ctl.Store.DuplicateItem(item)
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": dup})
}

func (ctl *ItemController) ownedItem(c *gin.Context) (*models.Item, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return nil, false
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Item not found")
		return nil, false
	}

	item, err := ctl.Store.ItemOwned(itemID, userID)
	if err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(c, http.StatusNotFound, "Item not found")
		} else {
			utils.RespondInternalError(c, err)
		}
		return nil, false
	}
	return item, true
}
