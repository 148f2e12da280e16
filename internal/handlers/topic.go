package handlers

import (
	"net/http"

	"newsdesk/internal/apperr"
	"newsdesk/internal/store"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	store *store.Store
}

func NewTopicHandler(s *store.Store) *TopicHandler {
	return &TopicHandler{store: s}
}

func (h *TopicHandler) List(c *gin.Context) {
	topics, err := h.store.ListTopics()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

func (h *TopicHandler) Create(c *gin.Context) {
	var req struct {
		Slug        string `json:"slug"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Slug == "" {
		fail(c, apperr.BadRequest("Bad request"))
		return
	}

	topic, err := h.store.CreateTopic(req.Slug, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"topic": topic})
}
