package handlers

import (
	"jokehub/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	// Inject Current User
	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
	}
	obj["CurrentPath"] = c.Request.URL.Path

	// One-shot flash message ("Joke created." etc.)
	session := sessions.Default(c)
	if flash := session.Get("flash"); flash != nil {
		session.Delete("flash")
		session.Save()
		obj["Flash"] = flash
	}

	c.HTML(code, name, obj)
}

// SetFlash stores a message shown once on the next rendered page.
func SetFlash(c *gin.Context, message string) {
	session := sessions.Default(c)
	session.Set("flash", message)
	session.Save()
}

// RenderError renders the shared error page.
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Title": "Oops", "Message": message})
}
