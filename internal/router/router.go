package router

import (
	"jokehub/internal/handlers"
	"jokehub/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	jokeHandler := handlers.NewJokeHandler()
	voteHandler := handlers.NewVoteHandler()
	categoryHandler := handlers.NewCategoryHandler()
	tagHandler := handlers.NewTagHandler()
	userHandler := handlers.NewUserHandler()
	adminHandler := handlers.NewAdminHandler()
	seoHandler := handlers.NewSEOHandler()

	// Public Routes
	r.GET("/", jokeHandler.List)
	r.GET("/jokes", jokeHandler.List)
	r.GET("/jokes/joke/:slug", jokeHandler.Detail)
	r.GET("/jokes/category/:slug", jokeHandler.ListByCategory)
	r.GET("/jokes/tag/:slug", jokeHandler.ListByTag)
	r.GET("/jokes/creator/:username", jokeHandler.ListByCreator)
	r.GET("/categories", categoryHandler.List)
	r.GET("/tags", tagHandler.List)

	// SEO
	r.GET("/robots.txt", seoHandler.RobotsTxt)
	r.GET("/sitemap.xml", seoHandler.SitemapXML)
	r.GET("/feed.xml", seoHandler.RSSFeed)

	// The vote endpoint answers anonymous callers itself (polite rejection),
	// so it stays outside the auth group.
	r.POST("/jokes/joke/:slug/vote", voteHandler.Vote)

	r.GET("/signup", authHandler.ShowRegister)
	r.POST("/signup", authHandler.Register)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/jokes/create", jokeHandler.ShowCreate)
		authorized.POST("/jokes/create", jokeHandler.Create)
		authorized.GET("/jokes/joke/:slug/edit", jokeHandler.ShowEdit)
		authorized.POST("/jokes/joke/:slug/edit", jokeHandler.Update)
		authorized.POST("/jokes/joke/:slug/delete", jokeHandler.Delete)

		authorized.GET("/account", userHandler.ShowSettings)
		authorized.POST("/account", userHandler.UpdateSettings)
	}

	// Admin Routes (category/tag management)
	admin := r.Group("/admin")
	admin.Use(middleware.AuthRequired())
	{
		admin.POST("/categories", adminHandler.CreateCategory)
		admin.POST("/categories/:slug", adminHandler.UpdateCategory)
		admin.POST("/categories/:slug/delete", adminHandler.DeleteCategory)

		admin.POST("/tags", adminHandler.CreateTag)
		admin.POST("/tags/:slug", adminHandler.UpdateTag)
		admin.POST("/tags/:slug/delete", adminHandler.DeleteTag)
	}
}
