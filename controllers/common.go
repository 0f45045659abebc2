package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menucraft-backend/models"
	"menucraft-backend/store"
	"menucraft-backend/utils"
)

// currentUser loads the authenticated user from the session claim set by
// the auth middleware. Writes the error response itself on failure.
func currentUser(c *gin.Context, s store.Store) (*models.User, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return nil, false
	}
	user, err := s.UserByID(userID)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Not authenticated")
		return nil, false
	}
	return user, true
}

// currentUserID avoids the user lookup when only the id is needed.
func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "Not authenticated")
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Not authenticated")
		return uuid.Nil, false
	}
	return userID, true
}

// ownedMenuParam resolves the :id route param and verifies the menu
// belongs to the session user. Missing and not-owned are both answered
// 404 so existence never leaks.
func ownedMenuParam(c *gin.Context, s store.Store) (*models.Menu, bool) {
	userID, ok := currentUserID(c)
	if !ok {
		return nil, false
	}

	menuID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Menu not found")
		return nil, false
	}

	menu, err := s.MenuOwned(menuID, userID)
	if err != nil {
		if store.IsNotFound(err) {
			utils.RespondWithError(c, http.StatusNotFound, "Menu not found")
		} else {
			utils.RespondInternalError(c, err)
		}
		return nil, false
	}
	return menu, true
}
