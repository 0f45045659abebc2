package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"menucraft-backend/services"
	"menucraft-backend/store"
	"menucraft-backend/utils"
)

type CheckoutController struct {
	Store   store.Store
	Service *services.CheckoutService

	StripePublishableKey string
	BaseURL              string
}

func NewCheckoutController(s store.Store, svc *services.CheckoutService, publishableKey, baseURL string) *CheckoutController {
	return &CheckoutController{
		Store:                s,
		Service:              svc,
		StripePublishableKey: publishableKey,
		BaseURL:              baseURL,
	}
}

type CheckoutInput struct {
	Plan string `json:"plan" binding:"required"`
}

// POST /api/checkout — creates a hosted subscription checkout session and
// returns the redirect URL.
func (ctl *CheckoutController) Checkout(c *gin.Context) {
	user, ok := currentUser(c, ctl.Store)
	if !ok {
		return
	}

	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	url, err := ctl.Service.CreateSession(user, input.Plan)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPlan) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid plan")
			return
		}
		utils.RespondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GET /api/config — public settings the frontend needs.
func (ctl *CheckoutController) Config(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"stripePublishableKey": ctl.StripePublishableKey,
		"baseUrl":              ctl.BaseURL,
	})
}
