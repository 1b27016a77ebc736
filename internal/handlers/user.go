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

type UserHandler struct{}

func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// ShowSettings 用户设置页面
func (h *UserHandler) ShowSettings(c *gin.Context) {
	Render(c, http.StatusOK, "user/settings.html", gin.H{
		"Title": "My Account",
	})
}

func (h *UserHandler) UpdateSettings(c *gin.Context) {
	user := c.MustGet(middleware.CheckUserKey).(*models.User)

	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if username == "" || email == "" {
		Render(c, http.StatusBadRequest, "user/settings.html", gin.H{
			"Title": "My Account",
			"Error": "Username and email must not be empty",
		})
		return
	}

	user.Username = username
	user.Email = email
	if password != "" {
		if len(password) < 6 {
			Render(c, http.StatusBadRequest, "user/settings.html", gin.H{
				"Title": "My Account",
				"Error": "Password must be at least 6 characters",
			})
			return
		}
		hash, err := utils.HashPassword(password)
		if err != nil {
			Render(c, http.StatusInternalServerError, "user/settings.html", gin.H{
				"Title": "My Account",
				"Error": "Update failed",
			})
			return
		}
		user.Password = hash
	}

	if err := db.DB.Save(user).Error; err != nil {
		Render(c, http.StatusConflict, "user/settings.html", gin.H{
			"Title": "My Account",
			"Error": "Username or email already taken",
		})
		return
	}

	SetFlash(c, "Update successful.")
	c.Redirect(http.StatusFound, "/account")
}
