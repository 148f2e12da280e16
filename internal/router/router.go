package router

import (
	"net/http"

	"newsdesk/internal/handlers"
	"newsdesk/internal/store"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, s *store.Store, siteURL string) {
	// Handlers
	apiHandler := handlers.NewAPIHandler()
	topicHandler := handlers.NewTopicHandler(s)
	articleHandler := handlers.NewArticleHandler(s)
	commentHandler := handlers.NewCommentHandler(s)
	userHandler := handlers.NewUserHandler(s)
	seoHandler := handlers.NewSEOHandler(s, siteURL)

	api := r.Group("/api")
	{
		api.GET("", apiHandler.Index) // endpoint index

		api.GET("/topics", topicHandler.List)
		api.POST("/topics", topicHandler.Create)

		api.GET("/articles", articleHandler.List)
		api.POST("/articles", articleHandler.Create)
		api.GET("/articles/:article_id", articleHandler.Get)
		api.PATCH("/articles/:article_id", articleHandler.PatchVotes)
		api.DELETE("/articles/:article_id", articleHandler.Delete)

		api.GET("/articles/:article_id/comments", commentHandler.ListForArticle)
		api.POST("/articles/:article_id/comments", commentHandler.Create)
		api.PATCH("/comments/:comment_id", commentHandler.PatchVotes)
		api.DELETE("/comments/:comment_id", commentHandler.Delete)

		api.GET("/users", userHandler.List)
		api.GET("/users/:username", userHandler.Get)
	}

	r.GET("/feed.xml", seoHandler.RSSFeed)
	r.GET("/robots.txt", seoHandler.RobotsTxt)

	// Everything unmatched is a JSON 404.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Not found"})
	})
}
