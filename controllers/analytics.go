package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"menucraft-backend/services"
	"menucraft-backend/store"
	"menucraft-backend/utils"
)

type AnalyticsController struct {
	Store   store.Store
	Service *services.AnalyticsService
}

func NewAnalyticsController(s store.Store, svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Store: s, Service: svc}
}

// POST /api/analytics/track — fire-and-forget beacon from the public page.
// Tracking must never break the visitor's page load: internal failures are
// logged and still answered with success. Only a malformed/unknown event
// kind is rejected.
func (ctl *AnalyticsController) Track(c *gin.Context) {
	var input services.TrackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if err := ctl.Service.Track(input, c.Request.UserAgent()); err != nil {
		if errors.Is(err, services.ErrInvalidEventType) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid event type")
			return
		}
		log.Printf("analytics track failed: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/analytics?range=today|7d|30d|all — dashboard summary over the
// session user's menus.
func (ctl *AnalyticsController) Summary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	menuIDs, err := ctl.Store.MenuIDsByUser(userID)
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	summary, err := ctl.Service.Summarize(menuIDs, c.DefaultQuery("range", "7d"))
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
