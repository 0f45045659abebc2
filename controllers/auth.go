package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menucraft-backend/models"
	"menucraft-backend/store"
	"menucraft-backend/utils"
)

type AuthController struct {
	Store store.Store
}

func NewAuthController(s store.Store) *AuthController {
	return &AuthController{Store: s}
}

type SignupInput struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required"`
	RestaurantName string `json:"restaurantName"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Email and password required")
		return
	}

	if _, err := ctl.Store.UserByEmail(input.Email); err == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	user := models.User{
		ID:             uuid.New(),
		Email:          input.Email,
		PasswordHash:   hash,
		RestaurantName: input.RestaurantName,
		Plan:           "free",
	}
	if err := ctl.Store.CreateUser(&user); err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	if err := createDefaultMenu(ctl.Store, &user); err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID.String())
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	utils.SetSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":             user.ID,
			"email":          user.Email,
			"restaurantName": user.RestaurantName,
		},
	})
}

func (ctl *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Email and password required")
		return
	}

	user, err := ctl.Store.UserByEmail(input.Email)
	if err != nil || !utils.CheckPasswordHash(input.Password, user.PasswordHash) {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID.String())
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	utils.SetSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"user": gin.H{
			"id":             user.ID,
			"email":          user.Email,
			"restaurantName": user.RestaurantName,
			"plan":           user.Plan,
		},
	})
}

func (ctl *AuthController) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ctl *AuthController) Me(c *gin.Context) {
	user, ok := currentUser(c, ctl.Store)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":              user.ID,
		"email":           user.Email,
		"restaurant_name": user.RestaurantName,
		"restaurantName":  user.RestaurantName,
		"plan":            user.Plan,
		"hours":           user.Hours,
		"location":        user.Location,
		"phone":           user.Phone,
		"created_at":      user.CreatedAt,
	}})
}

type UpdateProfileInput struct {
	RestaurantName *string `json:"restaurantName"`
	Hours          *string `json:"hours"`
	Location       *string `json:"location"`
	Phone          *string `json:"phone"`
}

func (ctl *AuthController) UpdateProfile(c *gin.Context) {
	user, ok := currentUser(c, ctl.Store)
	if !ok {
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.RestaurantName != nil {
		user.RestaurantName = *input.RestaurantName
	}
	if input.Hours != nil {
		user.Hours = *input.Hours
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}

	if err := ctl.Store.UpdateUser(user); err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// createDefaultMenu seeds a starter menu so a fresh account has something
// to look at: one menu, three categories, six sample items.
func createDefaultMenu(s store.Store, user *models.User) error {
	menu := models.Menu{
		ID:           uuid.New(),
		UserID:       user.ID,
		Name:         "Main Menu",
		Slug:         utils.MenuSlug(user.RestaurantName, user.Email, user.ID.String()),
		PrimaryColor: "#E85D2C",
		BgColor:      "#FFFBF7",
		Font:         "Inter",
		IsActive:     true,
	}
	if err := s.CreateMenu(&menu); err != nil {
		return err
	}

	sampleCategories := []struct {
		Name        string
		Description string
		Items       []models.Item
	}{
		{"Starters", "Begin your meal right", []models.Item{
			{Name: "Bruschetta", Description: "Toasted bread with fresh tomatoes, basil & olive oil", Price: 8.50, Tags: models.StringList{"vegetarian"}},
			{Name: "Soup of the Day", Description: "Ask your server for today's selection", Price: 7.00, Tags: models.StringList{"gluten-free"}},
		}},
		{"Mains", "Our signature dishes", []models.Item{
			{Name: "Grilled Salmon", Description: "Atlantic salmon with lemon butter sauce & seasonal vegetables", Price: 24.00, Tags: models.StringList{"gluten-free"}},
			{Name: "Mushroom Risotto", Description: "Creamy arborio rice with wild mushrooms & parmesan", Price: 18.00, Tags: models.StringList{"vegetarian"}},
		}},
		{"Desserts", "Sweet endings", []models.Item{
			{Name: "Tiramisu", Description: "Classic Italian coffee-flavored dessert", Price: 10.00, Tags: models.StringList{}},
			{Name: "Chocolate Lava Cake", Description: "Warm chocolate cake with a molten center", Price: 12.00, Tags: models.StringList{"vegetarian"}},
		}},
	}

	for _, sample := range sampleCategories {
		cat := models.Category{MenuID: menu.ID, Name: sample.Name, Description: sample.Description}
		if err := s.CreateCategory(&cat); err != nil {
			return err
		}
		for _, item := range sample.Items {
			item.CategoryID = cat.ID
			item.IsAvailable = true
			if err := s.CreateItem(&item); err != nil {
				return err
			}
		}
	}
	return nil
}
