package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIHandler struct{}

func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

// Index describes the available endpoints at the prefix root.
func (h *APIHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"endpoints": gin.H{
			"GET /api":                                "this index",
			"GET /api/topics":                         "list all topics",
			"POST /api/topics":                        "create a topic",
			"GET /api/articles":                       "list articles; query params: topic, sort_by, order, limit, p",
			"POST /api/articles":                      "create an article",
			"GET /api/articles/:article_id":           "fetch one article",
			"PATCH /api/articles/:article_id":         "apply a relative vote update",
			"DELETE /api/articles/:article_id":        "delete an article and its comments",
			"GET /api/articles/:article_id/comments":  "list an article's comments; query params: limit, p",
			"POST /api/articles/:article_id/comments": "create a comment",
			"PATCH /api/comments/:comment_id":         "apply a relative vote update",
			"DELETE /api/comments/:comment_id":        "delete a comment",
			"GET /api/users":                          "list all users",
			"GET /api/users/:username":                "fetch one user",
		},
	})
}
