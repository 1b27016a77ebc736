package main

import (
	"fmt"
	"html/template"
	"log"
	"net/url"
	"os"
	"path/filepath"

	"jokehub/internal/db"
	"jokehub/internal/middleware"
	"jokehub/internal/router"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	// Setup Sessions
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "secret_key_change_me"
	}
	store := cookie.NewStore([]byte(secret))
	r.Use(sessions.Sessions("jokehub_session", store))

	// Load Templates using Multitemplate to avoid collision and allow handler names
	r.HTMLRender = loadTemplates("./web/templates")

	// Static Assets
	r.Static("/static", "./web/static")

	// Middleware
	r.Use(middleware.LoadUser())

	// Routes
	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("JokeHub server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func loadTemplates(templatesDir string) multitemplate.Renderer {
	r := multitemplate.NewRenderer()

	layouts, err := filepath.Glob(templatesDir + "/layouts/*.html")
	if err != nil {
		panic(err)
	}

	includes, err := filepath.Glob(templatesDir + "/includes/*.html")
	if err != nil {
		panic(err)
	}

	// Helper to assemble files
	assemble := func(view string) []string {
		files := make([]string, 0)
		files = append(files, layouts...)
		files = append(files, includes...)
		files = append(files, view)
		return files
	}

	// FuncMap
	funcMap := template.FuncMap{
		"dict": func(values ...interface{}) (map[string]interface{}, error) {
			if len(values)%2 != 0 {
				return nil, fmt.Errorf("invalid dict call")
			}
			dict := make(map[string]interface{}, len(values)/2)
			for i := 0; i < len(values); i += 2 {
				key, ok := values[i].(string)
				if !ok {
					return nil, fmt.Errorf("dict keys must be strings")
				}
				dict[key] = values[i+1]
			}
			return dict, nil
		},
		"add": func(a, b int) int {
			return a + b
		},
		"urlquery": func(s string) string {
			return url.QueryEscape(s)
		},
		"rating": func(avg *float64) string {
			if avg == nil {
				return "not rated yet"
			}
			return fmt.Sprintf("%.2f", *avg)
		},
		"flipDirection": func(direction string) string {
			if direction == "asc" {
				return "desc"
			}
			return "asc"
		},
	}

	// Manual registration to ensure keys match handler expectation
	// Auth
	r.AddFromFilesFuncs("auth/login.html", funcMap, assemble(templatesDir+"/views/auth/login.html")...)
	r.AddFromFilesFuncs("auth/register.html", funcMap, assemble(templatesDir+"/views/auth/register.html")...)

	// Joke
	r.AddFromFilesFuncs("joke/list.html", funcMap, assemble(templatesDir+"/views/joke/list.html")...)
	r.AddFromFilesFuncs("joke/detail.html", funcMap, assemble(templatesDir+"/views/joke/detail.html")...)
	r.AddFromFilesFuncs("joke/create.html", funcMap, assemble(templatesDir+"/views/joke/create.html")...)
	r.AddFromFilesFuncs("joke/edit.html", funcMap, assemble(templatesDir+"/views/joke/edit.html")...)

	// Category / Tag
	r.AddFromFilesFuncs("category/list.html", funcMap, assemble(templatesDir+"/views/category/list.html")...)
	r.AddFromFilesFuncs("tag/list.html", funcMap, assemble(templatesDir+"/views/tag/list.html")...)

	// User
	r.AddFromFilesFuncs("user/settings.html", funcMap, assemble(templatesDir+"/views/user/settings.html")...)

	// Error
	r.AddFromFilesFuncs("error.html", funcMap, assemble(templatesDir+"/views/error.html")...)

	return r
}
