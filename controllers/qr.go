package controllers

import (
	"encoding/base64"
	"fmt"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"

	"menucraft-backend/models"
	"menucraft-backend/store"
	"menucraft-backend/utils"
)

type QRController struct {
	Store   store.Store
	BaseURL string
}

func NewQRController(s store.Store, baseURL string) *QRController {
	return &QRController{Store: s, BaseURL: baseURL}
}

// GET /api/menus/:id/qr — QR code for the public menu URL as a PNG data URL.
func (ctl *QRController) Code(c *gin.Context) {
	menu, ok := ctl.ownedMenu(c)
	if !ok {
		return
	}

	url := ctl.publicURL(menu)
	png, err := qrcode.Encode(url, qrcode.Medium, 512)
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"qr":  "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		"url": url,
	})
}

var qrCardTemplate = template.Must(template.New("qr-card").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Name}} — Scan to View Menu</title>
<style>
  body { margin: 0; font-family: {{.Font}}, sans-serif; background: {{.BgColor}};
         display: flex; align-items: center; justify-content: center; min-height: 100vh; }
  .card { text-align: center; padding: 48px 56px; border: 3px solid {{.PrimaryColor}};
          border-radius: 16px; background: #fff; }
  h1 { color: {{.PrimaryColor}}; margin: 0 0 8px; }
  p  { color: #666; margin: 0 0 24px; }
  img { width: 280px; height: 280px; }
  .url { margin-top: 16px; font-size: 14px; color: #999; }
  @media print { body { background: #fff; } }
</style>
</head>
<body>
<div class="card">
  <h1>{{.Name}}</h1>
  <p>Scan to view our menu</p>
  <img src="{{.QR}}" alt="QR code">
  <div class="url">{{.URL}}</div>
</div>
</body>
</html>
`))

// GET /api/menus/:id/qr-card — printable styled card embedding the QR.
func (ctl *QRController) Card(c *gin.Context) {
	menu, ok := ctl.ownedMenu(c)
	if !ok {
		return
	}

	url := ctl.publicURL(menu)
	png, err := qrcode.Encode(url, qrcode.Medium, 512)
	if err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	name := menu.Name
	if owner, err := ctl.Store.UserByID(menu.UserID); err == nil && owner.RestaurantName != "" {
		name = owner.RestaurantName
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	qrCardTemplate.Execute(c.Writer, map[string]interface{}{
		"Name":         name,
		"Font":         menu.Font,
		"BgColor":      menu.BgColor,
		"PrimaryColor": menu.PrimaryColor,
		"QR":           template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png)),
		"URL":          url,
	})
}

func (ctl *QRController) publicURL(menu *models.Menu) string {
	return fmt.Sprintf("%s/m/%s", ctl.BaseURL, menu.Slug)
}

func (ctl *QRController) ownedMenu(c *gin.Context) (*models.Menu, bool) {
	return ownedMenuParam(c, ctl.Store)
}
