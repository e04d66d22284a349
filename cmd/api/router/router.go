package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blogboard/auth"
	"blogboard/cmd/api/clients/formrelay"
	"blogboard/cmd/api/handlers"
	"blogboard/cmd/api/middleware"
	"blogboard/db"
	_ "blogboard/docs"
	"blogboard/services"
)

// Deps bundles everything the router needs.
type Deps struct {
	JWT      *auth.JWTManager
	Posts    *services.PostService
	Auth     *services.AuthService
	Settings *services.SettingsService
	Import   *services.ImportService
	Sessions *services.EditorSessions
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if err := db.Client().Ping(c.Request.Context(), nil); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", handlers.RegisterHandler(deps.Auth))
		api.POST("/auth/login", handlers.LoginHandler(deps.Auth))

		api.GET("/public/posts", handlers.ListPublicPostsHandler(deps.Posts))
		api.GET("/public/posts/grouped", handlers.GroupedPublicPostsHandler(deps.Posts))
		api.GET("/public/posts/:id", handlers.GetPublicPostHandler(deps.Posts))

		api.POST("/newsletter", handlers.SubscribeNewsletterHandler(deps.Settings))
		api.DELETE("/newsletter", handlers.UnsubscribeNewsletterHandler(deps.Settings))

		relay := formrelay.New()
		api.POST("/contact", handlers.ContactHandler(relay))

		authed := api.Group("")
		authed.Use(middleware.AuthRequired(deps.JWT))
		{
			authed.GET("/posts", handlers.ListMyPostsHandler(deps.Posts))
			authed.POST("/posts", handlers.CreatePostHandler(deps.Posts))
			authed.GET("/posts/overview", handlers.OverviewHandler(deps.Posts))
			authed.GET("/posts/stream", handlers.StreamMyPostsHandler(deps.Posts))
			authed.POST("/posts/import", handlers.ImportFeedHandler(deps.Import))
			authed.GET("/posts/:id", handlers.GetMyPostHandler(deps.Posts))
			authed.PUT("/posts/:id", handlers.UpdatePostHandler(deps.Posts, deps.Sessions))
			authed.DELETE("/posts/:id", handlers.DeletePostHandler(deps.Posts, deps.Sessions))
			authed.GET("/posts/:id/markdown", handlers.ExportMarkdownHandler(deps.Posts))
			authed.PUT("/posts/:id/autosave", handlers.TouchAutosaveHandler(deps.Posts, deps.Sessions))
			authed.GET("/posts/:id/autosave", handlers.AutosaveStateHandler(deps.Sessions))
			authed.POST("/posts/:id/autosave/retry", handlers.RetryAutosaveHandler(deps.Sessions))

			authed.POST("/editor/suggest", handlers.SuggestHandler())

			authed.GET("/settings", handlers.GetSettingsHandler(deps.Settings))
			authed.PUT("/settings", handlers.SaveSettingsHandler(deps.Settings))
			authed.GET("/profile", handlers.GetProfileHandler(deps.Settings))
			authed.PUT("/profile", handlers.UpdateProfileHandler(deps.Settings))
			authed.DELETE("/account", handlers.DeleteAccountHandler(deps.Settings))
		}
	}

	return r
}
