package handlers

import (
	"net/http"

	"shaqyrtu-backend/config"
	"shaqyrtu-backend/database"
	"shaqyrtu-backend/models"
	"shaqyrtu-backend/render"
	"shaqyrtu-backend/services"
	"shaqyrtu-backend/utils"

	"github.com/gin-gonic/gin"
)

// Shared by the public page, the invite CRUD and the preview sessions.
// Set once at startup.
var pageRenderer *render.Renderer

func SetupRenderer(r *render.Renderer) {
	pageRenderer = r
}

// GET /api/v1/templates?category=wedding
func GetTemplates(c *gin.Context) {
	category := c.Query("category")
	if category != "" {
		utils.SuccessResponse(c, http.StatusOK, "", gin.H{
			"options": pageRenderer.Registry.Options(category),
			"default": pageRenderer.Registry.CategoryDefault(category),
		})
		return
	}

	all := gin.H{}
	for _, name := range pageRenderer.Registry.CategoryNames() {
		all[name] = pageRenderer.Registry.Options(name)
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"categories": all,
		"default":    pageRenderer.Registry.DefaultID(),
	})
}

// GET /api/v1/invites/slug/:slug (public JSON, what a guest app consumes)
func GetPublicInvite(c *gin.Context) {
	var invite models.Invite
	if err := database.DB.First(&invite, "slug = ?", c.Param("slug")).Error; err != nil {
		utils.NotFound(c, "Invite not found")
		return
	}

	cfg := render.BuildConfig(&invite, render.ModeView, pageRenderer.URLs)
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"invite": invite.ToResponse(0),
		"config": cfg,
	})
}

// GET /invite/:slug — the shareable guest page. Fully assembled HTML,
// cached per language while redis is up.
func ViewInvite(c *gin.Context) {
	slug := c.Param("slug")
	lang := c.Query("lang")
	if lang == "" {
		lang = config.AppConfig.DefaultLang
	}
	if lang != "ru" {
		lang = "kk"
	}

	if html, ok := services.CachedDocument(c.Request.Context(), slug, lang); ok {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		return
	}

	var invite models.Invite
	if err := database.DB.First(&invite, "slug = ?", slug).Error; err != nil {
		c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte(notFoundPage))
		return
	}

	html, _ := pageRenderer.BuildDocument(&invite, render.Options{
		Mode:       render.ModeView,
		InviteID:   invite.ID.String(),
		Lang:       lang,
		EnableRSVP: true,
	})

	services.StoreDocument(c.Request.Context(), slug, lang, html)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

const notFoundPage = `<!DOCTYPE html>
<html lang="kk">
<head><meta charset="UTF-8"><title>Шақырту табылмады</title></head>
<body style="font-family: sans-serif; text-align: center; padding: 80px 20px;">
<h1>Шақырту табылмады</h1>
<p>Сілтеме қате немесе шақырту өшірілген.</p>
</body>
</html>`
