package handlers

import (
	"net/http"
	"strings"

	"jokehub/internal/db"
	"jokehub/internal/middleware"
	"jokehub/internal/models"
	"jokehub/internal/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers the category and tag management that only
// administrators may perform.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// checkAdmin middleware helper
func (h *AdminHandler) checkAdmin(c *gin.Context) *models.User {
	u, exists := c.Get(middleware.CheckUserKey)
	if !exists {
		return nil
	}
	user := u.(*models.User)
	if !user.IsAdmin() {
		return nil
	}
	return user
}

func (h *AdminHandler) CreateCategory(c *gin.Context) {
	if h.checkAdmin(c) == nil {
		RenderError(c, http.StatusForbidden, "Administrators only")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		RenderError(c, http.StatusBadRequest, "Category name must not be empty")
		return
	}

	category := models.Category{Name: name, Slug: uniqueTermSlug(&models.Category{}, name)}
	if err := db.DB.Create(&category).Error; err != nil {
		RenderError(c, http.StatusConflict, "Category already exists")
		return
	}

	SetFlash(c, "Category created.")
	c.Redirect(http.StatusFound, "/categories")
}

// UpdateCategory renames a category. The slug is set on create and stays
// stable, so existing links keep working.
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	if h.checkAdmin(c) == nil {
		RenderError(c, http.StatusForbidden, "Administrators only")
		return
	}

	var category models.Category
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&category).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Category not found")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		RenderError(c, http.StatusBadRequest, "Category name must not be empty")
		return
	}

	category.Name = name
	if err := db.DB.Save(&category).Error; err != nil {
		RenderError(c, http.StatusConflict, "Category name already taken")
		return
	}

	SetFlash(c, "Category updated.")
	c.Redirect(http.StatusFound, "/categories")
}

func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	if h.checkAdmin(c) == nil {
		RenderError(c, http.StatusForbidden, "Administrators only")
		return
	}

	var category models.Category
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&category).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Category not found")
		return
	}

	var jokes int64
	db.DB.Model(&models.Joke{}).Where("category_id = ?", category.ID).Count(&jokes)
	if jokes > 0 {
		RenderError(c, http.StatusConflict, "Category still has jokes, move them first")
		return
	}

	db.DB.Delete(&category)

	SetFlash(c, "Category deleted.")
	c.Redirect(http.StatusFound, "/categories")
}

func (h *AdminHandler) CreateTag(c *gin.Context) {
	if h.checkAdmin(c) == nil {
		RenderError(c, http.StatusForbidden, "Administrators only")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		RenderError(c, http.StatusBadRequest, "Tag name must not be empty")
		return
	}

	tag := models.Tag{Name: name, Slug: uniqueTermSlug(&models.Tag{}, name)}
	if err := db.DB.Create(&tag).Error; err != nil {
		RenderError(c, http.StatusConflict, "Tag already exists")
		return
	}

	SetFlash(c, "Tag created.")
	c.Redirect(http.StatusFound, "/tags")
}

func (h *AdminHandler) UpdateTag(c *gin.Context) {
	if h.checkAdmin(c) == nil {
		RenderError(c, http.StatusForbidden, "Administrators only")
		return
	}

	var tag models.Tag
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&tag).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Tag not found")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		RenderError(c, http.StatusBadRequest, "Tag name must not be empty")
		return
	}

	tag.Name = name
	if err := db.DB.Save(&tag).Error; err != nil {
		RenderError(c, http.StatusConflict, "Tag name already taken")
		return
	}

	SetFlash(c, "Tag updated.")
	c.Redirect(http.StatusFound, "/tags")
}

func (h *AdminHandler) DeleteTag(c *gin.Context) {
	if h.checkAdmin(c) == nil {
		RenderError(c, http.StatusForbidden, "Administrators only")
		return
	}

	var tag models.Tag
	if err := db.DB.Where("slug = ?", c.Param("slug")).First(&tag).Error; err != nil {
		RenderError(c, http.StatusNotFound, "Tag not found")
		return
	}

	// Drop the join rows first, the tag itself carries no other references.
	db.DB.Exec("DELETE FROM joke_tags WHERE tag_id = ?", tag.ID)
	db.DB.Delete(&tag)

	SetFlash(c, "Tag deleted.")
	c.Redirect(http.StatusFound, "/tags")
}

// uniqueTermSlug slugifies a category/tag name and de-collides it.
func uniqueTermSlug(model interface{}, name string) string {
	base := utils.Slugify(name)
	if base == "" {
		base = "term"
	}

	candidate := base
	for {
		var count int64
		db.DB.Model(model).Where("slug = ?", candidate).Count(&count)
		if count == 0 {
			return candidate
		}
		candidate = base + "-" + utils.RandStringBytesMaskImpr(4)
	}
}
