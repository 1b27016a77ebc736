package handlers

import (
	"net/http"
	"strings"

	"jokehub/internal/db"
	"jokehub/internal/models"
	"jokehub/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	Render(c, http.StatusOK, "auth/register.html", gin.H{"Title": "Sign up"})
}

func (h *AuthHandler) Register(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if username == "" {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{"Title": "Sign up", "Error": "Username is required"})
		return
	}
	if parts := strings.Split(email, "@"); len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{"Title": "Sign up", "Error": "Invalid email address"})
		return
	}
	if len(password) < 6 {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{"Title": "Sign up", "Error": "Password must be at least 6 characters"})
		return
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		Render(c, http.StatusInternalServerError, "auth/register.html", gin.H{"Title": "Sign up", "Error": "Registration failed"})
		return
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hash,
	}
	if err := db.DB.Create(&user).Error; err != nil {
		Render(c, http.StatusConflict, "auth/register.html", gin.H{"Title": "Sign up", "Error": "Username or email already registered"})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/jokes")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{"Title": "Log in"})
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Title": "Log in", "Error": "Wrong email or password"})
		return
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Title": "Log in", "Error": "Wrong email or password"})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/jokes")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/jokes")
}
