package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/middleware"
	"blog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	api := router.Group("/api")
	{
		api.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(api, c)
		setupArticleRoutes(api, c)
		setupCategoryRoutes(api, c)
		setupCommentRoutes(api, c)
		setupFeedRoutes(api, c)
	}

	return router
}

func setupAuthRoutes(api *gin.RouterGroup, c *container.Container) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", c.UserHandler.Login)
	}

	users := api.Group("/users")
	users.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		users.GET("/me", c.UserHandler.Me)
	}
}

// Article mutations run behind OptionalAuth: the 401/403 decisions
// belong to the ownership workflow in the service layer, and static
// identity mode has no token to check at the router.
func setupArticleRoutes(api *gin.RouterGroup, c *container.Container) {
	article := api.Group("/article")
	article.Use(middleware.OptionalAuth(c.JWTManager))
	{
		article.POST("", c.ArticleHandler.CreateArticle)
		article.GET("/:id", c.ArticleHandler.GetArticle)
		article.PUT("/:id", c.ArticleHandler.UpdateArticle)
		article.DELETE("/:id", c.ArticleHandler.DeleteArticle)
	}
}

func setupCategoryRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/categories", c.CategoryHandler.ListCategories)
}

func setupCommentRoutes(api *gin.RouterGroup, c *container.Container) {
	comments := api.Group("/comments")
	comments.Use(middleware.OptionalAuth(c.JWTManager))
	{
		comments.GET("", c.CommentHandler.ListComments)
		comments.POST("", c.CommentHandler.CreateComment)
	}
}

func setupFeedRoutes(api *gin.RouterGroup, c *container.Container) {
	api.GET("/posts", c.FeedHandler.BrowsePosts)
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": c.Config.App.Version,
		})
	}
}
