package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"menucraft-backend/config"
	"menucraft-backend/models"
	"menucraft-backend/store"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &config.Config{
		Port:        "0",
		BaseURL:     "http://localhost:3002",
		UploadsDir:  t.TempDir(),
		CORSOrigins: []string{"http://localhost:3000"},
		EventCap:    1000,
		EventTrimTo: 800,
	}
	return SetupRouter(store.New(db), cfg)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dest); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

// signup registers a fresh account and returns its auth token.
func signup(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":          email,
		"password":       "hunter22",
		"restaurantName": "Luigi's Trattoria",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signup: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	if resp.Token == "" {
		t.Fatal("signup returned no token")
	}
	return resp.Token
}

type menuResp struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Slug     string    `json:"slug"`
	IsActive bool      `json:"is_active"`
}

func firstMenu(t *testing.T, r *gin.Engine, token string) menuResp {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, "/api/menus", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list menus: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Menus []menuResp `json:"menus"`
	}
	decode(t, w, &resp)
	if len(resp.Menus) == 0 {
		t.Fatal("no menus after signup")
	}
	return resp.Menus[0]
}

type categoriesResp struct {
	Categories []struct {
		ID    uuid.UUID     `json:"id"`
		Name  string        `json:"name"`
		Items []models.Item `json:"items"`
	} `json:"categories"`
}

func ownerCategories(t *testing.T, r *gin.Engine, token string, menuID uuid.UUID) categoriesResp {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/menus/%s/categories", menuID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list categories: %d %s", w.Code, w.Body.String())
	}
	var resp categoriesResp
	decode(t, w, &resp)
	return resp
}

func TestSignupSeedsStarterMenu(t *testing.T) {
	r := newTestServer(t)
	token := signup(t, r, "luigi@example.com")

	menu := firstMenu(t, r, token)
	if menu.Name != "Main Menu" {
		t.Errorf("seeded menu name = %q", menu.Name)
	}
	if !menu.IsActive {
		t.Error("seeded menu should be active")
	}

	cats := ownerCategories(t, r, token, menu.ID)
	if len(cats.Categories) != 3 {
		t.Fatalf("categories = %d, want 3", len(cats.Categories))
	}
	wantNames := []string{"Starters", "Mains", "Desserts"}
	items := 0
	for i, cat := range cats.Categories {
		if cat.Name != wantNames[i] {
			t.Errorf("category %d = %q, want %q", i, cat.Name, wantNames[i])
		}
		items += len(cat.Items)
	}
	if items != 6 {
		t.Errorf("seeded items = %d, want 6", items)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	r := newTestServer(t)
	signup(t, r, "dup@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/signup", "", gin.H{
		"email":    "dup@example.com",
		"password": "hunter22",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate signup = %d, want 400", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestServer(t)
	signup(t, r, "luigi@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "luigi@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("login = %d, want 401", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "luigi@example.com",
		"password": "hunter22",
	})
	if w.Code != http.StatusOK {
		t.Errorf("login = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestOwnerRoutesRequireAuth(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/menus", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated list = %d, want 401", w.Code)
	}
}

func TestPublicMenuHidesUnavailableItems(t *testing.T) {
	r := newTestServer(t)
	token := signup(t, r, "luigi@example.com")
	menu := firstMenu(t, r, token)
	cats := ownerCategories(t, r, token, menu.ID)
	hideID := cats.Categories[0].Items[0].ID

	w := doJSON(t, r, http.MethodPut, "/api/items/"+hideID.String(), token, gin.H{"is_available": false})
	if w.Code != http.StatusOK {
		t.Fatalf("hide item: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/public/menu/"+menu.Slug, "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public menu: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Menu struct {
			RestaurantName string `json:"restaurant_name"`
			Categories     []struct {
				Items []models.Item `json:"items"`
			} `json:"categories"`
		} `json:"menu"`
	}
	decode(t, w, &resp)
	if resp.Menu.RestaurantName != "Luigi's Trattoria" {
		t.Errorf("restaurant_name = %q", resp.Menu.RestaurantName)
	}
	total := 0
	for _, cat := range resp.Menu.Categories {
		for _, item := range cat.Items {
			total++
			if item.ID == hideID {
				t.Error("unavailable item leaked to the public page")
			}
		}
	}
	if total != 5 {
		t.Errorf("public items = %d, want 5", total)
	}

	// Owner view still shows everything
	cats = ownerCategories(t, r, token, menu.ID)
	ownerTotal := 0
	for _, cat := range cats.Categories {
		ownerTotal += len(cat.Items)
	}
	if ownerTotal != 6 {
		t.Errorf("owner items = %d, want 6", ownerTotal)
	}
}

func TestPublicMenuInactiveIs404(t *testing.T) {
	r := newTestServer(t)
	token := signup(t, r, "luigi@example.com")
	menu := firstMenu(t, r, token)

	w := doJSON(t, r, http.MethodPut, "/api/menus/"+menu.ID.String(), token, gin.H{"is_active": false})
	if w.Code != http.StatusOK {
		t.Fatalf("deactivate: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/api/public/menu/"+menu.Slug, "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("inactive public menu = %d, want 404", w.Code)
	}
}

func TestOwnershipIsolation(t *testing.T) {
	r := newTestServer(t)
	tokenA := signup(t, r, "alice@example.com")
	tokenB := signup(t, r, "bob@example.com")
	menuA := firstMenu(t, r, tokenA)
	catsA := ownerCategories(t, r, tokenA, menuA.ID)
	itemA := catsA.Categories[0].Items[0].ID

	// Another tenant's resources look exactly like missing ones.
	cases := []struct {
		method, path string
		body         any
	}{
		{http.MethodPut, "/api/menus/" + menuA.ID.String(), gin.H{"name": "Hijacked"}},
		{http.MethodDelete, "/api/menus/" + menuA.ID.String(), nil},
		{http.MethodGet, fmt.Sprintf("/api/menus/%s/categories", menuA.ID), nil},
		{http.MethodPut, "/api/categories/" + catsA.Categories[0].ID.String(), gin.H{"name": "Hijacked"}},
		{http.MethodDelete, "/api/items/" + itemA.String(), nil},
		{http.MethodPost, "/api/items/" + itemA.String() + "/duplicate", nil},
	}
	for _, tc := range cases {
		w := doJSON(t, r, tc.method, tc.path, tokenB, tc.body)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s as other tenant = %d, want 404", tc.method, tc.path, w.Code)
		}
	}

	// Alice's data is untouched
	w := doJSON(t, r, http.MethodGet, "/api/menus/"+menuA.ID.String()+"/categories", tokenA, nil)
	if w.Code != http.StatusOK {
		t.Errorf("owner read after attack = %d, want 200", w.Code)
	}
}

func TestDuplicateItemEndpoint(t *testing.T) {
	r := newTestServer(t)
	token := signup(t, r, "luigi@example.com")
	menu := firstMenu(t, r, token)
	cats := ownerCategories(t, r, token, menu.ID)
	src := cats.Categories[2].Items[0] // Tiramisu

	w := doJSON(t, r, http.MethodPost, "/api/items/"+src.ID.String()+"/duplicate", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("duplicate: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Item models.Item `json:"item"`
	}
	decode(t, w, &resp)
	if resp.Item.Name != src.Name+" (Copy)" {
		t.Errorf("copy name = %q", resp.Item.Name)
	}
	if resp.Item.ID == src.ID {
		t.Error("copy shares the source id")
	}
	if resp.Item.Price != src.Price {
		t.Errorf("copy price = %v, want %v", resp.Item.Price, src.Price)
	}
	if resp.Item.SortOrder <= src.SortOrder {
		t.Errorf("copy sort = %d, not after source %d", resp.Item.SortOrder, src.SortOrder)
	}
}

func TestReorderCategoriesEndpoint(t *testing.T) {
	r := newTestServer(t)
	token := signup(t, r, "luigi@example.com")
	menu := firstMenu(t, r, token)
	cats := ownerCategories(t, r, token, menu.ID)

	order := []uuid.UUID{
		cats.Categories[2].ID,
		cats.Categories[0].ID,
		cats.Categories[1].ID,
	}
	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/menus/%s/reorder-categories", menu.ID), token, gin.H{"order": order})
	if w.Code != http.StatusOK {
		t.Fatalf("reorder: %d %s", w.Code, w.Body.String())
	}

	after := ownerCategories(t, r, token, menu.ID)
	for i, want := range order {
		if after.Categories[i].ID != want {
			t.Errorf("position %d = %s, want %s", i, after.Categories[i].ID, want)
		}
	}
}

func TestTrackBeacon(t *testing.T) {
	r := newTestServer(t)
	token := signup(t, r, "luigi@example.com")
	menu := firstMenu(t, r, token)

	// Valid beacon
	w := doJSON(t, r, http.MethodPost, "/api/analytics/track", "", gin.H{
		"event_type": "page_view",
		"menu_id":    menu.ID,
		"slug":       menu.Slug,
	})
	if w.Code != http.StatusOK {
		t.Errorf("track = %d, want 200: %s", w.Code, w.Body.String())
	}

	// Unknown menu id still succeeds, tracking must never break the page
	w = doJSON(t, r, http.MethodPost, "/api/analytics/track", "", gin.H{
		"event_type": "page_view",
		"menu_id":    uuid.New(),
	})
	if w.Code != http.StatusOK {
		t.Errorf("track unknown menu = %d, want 200", w.Code)
	}

	// Malformed kinds are the one rejected case
	w = doJSON(t, r, http.MethodPost, "/api/analytics/track", "", gin.H{
		"event_type": "page_hover",
		"menu_id":    menu.ID,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("track bad kind = %d, want 400", w.Code)
	}
}

func TestAnalyticsSummaryEndpoint(t *testing.T) {
	r := newTestServer(t)
	token := signup(t, r, "luigi@example.com")
	menu := firstMenu(t, r, token)

	for i := 0; i < 3; i++ {
		doJSON(t, r, http.MethodPost, "/api/analytics/track", "", gin.H{
			"event_type": "page_view",
			"menu_id":    menu.ID,
		})
	}
	doJSON(t, r, http.MethodPost, "/api/analytics/track", "", gin.H{
		"event_type": "qr_scan",
		"menu_id":    menu.ID,
	})

	w := doJSON(t, r, http.MethodGet, "/api/analytics?range=all", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("summary: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		TotalViews   int `json:"totalViews"`
		TotalQRScans int `json:"totalQRScans"`
	}
	decode(t, w, &resp)
	if resp.TotalViews != 3 || resp.TotalQRScans != 1 {
		t.Errorf("summary = %+v, want 3 views / 1 scan", resp)
	}

	// Other tenants see none of it
	tokenB := signup(t, r, "bob@example.com")
	w = doJSON(t, r, http.MethodGet, "/api/analytics?range=all", tokenB, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("summary B: %d %s", w.Code, w.Body.String())
	}
	decode(t, w, &resp)
	if resp.TotalViews != 0 {
		t.Errorf("tenant B views = %d, want 0", resp.TotalViews)
	}
}

func TestMenuCascadeDeleteEndpoint(t *testing.T) {
	r := newTestServer(t)
	token := signup(t, r, "luigi@example.com")
	menu := firstMenu(t, r, token)
	cats := ownerCategories(t, r, token, menu.ID)
	itemID := cats.Categories[0].Items[0].ID

	w := doJSON(t, r, http.MethodDelete, "/api/menus/"+menu.ID.String(), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete menu: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPut, "/api/items/"+itemID.String(), token, gin.H{"name": "x"})
	if w.Code != http.StatusNotFound {
		t.Errorf("item after cascade = %d, want 404", w.Code)
	}
	w = doJSON(t, r, http.MethodGet, "/api/menus", token, nil)
	var resp struct {
		Menus []menuResp `json:"menus"`
	}
	decode(t, w, &resp)
	if len(resp.Menus) != 0 {
		t.Errorf("menus after delete = %d, want 0", len(resp.Menus))
	}
}

func TestQRCodeEndpoint(t *testing.T) {
	r := newTestServer(t)
	token := signup(t, r, "luigi@example.com")
	menu := firstMenu(t, r, token)

	w := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/menus/%s/qr", menu.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("qr: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		QR  string `json:"qr"`
		URL string `json:"url"`
	}
	decode(t, w, &resp)
	if resp.URL != "http://localhost:3002/m/"+menu.Slug {
		t.Errorf("qr url = %q", resp.URL)
	}
	if len(resp.QR) == 0 || resp.QR[:22] != "data:image/png;base64," {
		t.Errorf("qr payload not a png data url: %.40q", resp.QR)
	}
}

func TestSpecialsRoundTrip(t *testing.T) {
	r := newTestServer(t)
	token := signup(t, r, "luigi@example.com")
	menu := firstMenu(t, r, token)
	cats := ownerCategories(t, r, token, menu.ID)
	itemID := cats.Categories[0].Items[0].ID

	w := doJSON(t, r, http.MethodPut, fmt.Sprintf("/api/menus/%s/specials", menu.ID), token, gin.H{
		"days": gin.H{
			"friday": []gin.H{{"item_id": itemID, "label": "Friday deal", "price": 5.00}},
		},
		"happy_hour": gin.H{
			"enabled":  true,
			"start":    "17:00",
			"end":      "19:00",
			"label":    "Aperitivo",
			"weekdays": []string{"friday"},
		},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("save specials: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/menus/%s/specials", menu.ID), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get specials: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Specials struct {
			Days      map[string][]models.SpecialItem `json:"days"`
			HappyHour models.HappyHour                `json:"happy_hour"`
		} `json:"specials"`
	}
	decode(t, w, &resp)
	if len(resp.Specials.Days["friday"]) != 1 {
		t.Fatalf("friday specials = %+v", resp.Specials.Days)
	}
	if !resp.Specials.HappyHour.Enabled || resp.Specials.HappyHour.Label != "Aperitivo" {
		t.Errorf("happy hour = %+v", resp.Specials.HappyHour)
	}
}
