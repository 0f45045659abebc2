package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menucraft-backend/models"
	"menucraft-backend/store"
	"menucraft-backend/utils"
)

type SpecialsController struct {
	Store store.Store
}

func NewSpecialsController(s store.Store) *SpecialsController {
	return &SpecialsController{Store: s}
}

// GET /api/menus/:id/specials
func (ctl *SpecialsController) Get(c *gin.Context) {
	menu, ok := ownedMenuParam(c, ctl.Store)
	if !ok {
		return
	}

	specials, err := ctl.Store.SpecialsByMenu(menu.ID)
	if err != nil {
		if store.IsNotFound(err) {
			// Nothing configured yet: answer an empty configuration
			c.JSON(http.StatusOK, gin.H{"specials": models.MenuSpecials{
				MenuID: menu.ID,
				Days:   models.SpecialDays{},
			}})
			return
		}
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"specials": specials})
}

type UpdateSpecialsInput struct {
	Days      models.SpecialDays `json:"days"`
	HappyHour models.HappyHour   `json:"happy_hour"`
}

// PUT /api/menus/:id/specials — replaces the whole configuration.
func (ctl *SpecialsController) Update(c *gin.Context) {
	menu, ok := ownedMenuParam(c, ctl.Store)
	if !ok {
		return
	}

	var input UpdateSpecialsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if input.Days == nil {
		input.Days = models.SpecialDays{}
	}

	specials := models.MenuSpecials{
		MenuID:    menu.ID,
		Days:      input.Days,
		HappyHour: input.HappyHour,
	}
	if err := ctl.Store.SaveSpecials(&specials); err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"specials": specials})
}
