package handlers

import (
	"net/http"

	"newsdesk/internal/apperr"
	"newsdesk/internal/store"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	store *store.Store
}

func NewCommentHandler(s *store.Store) *CommentHandler {
	return &CommentHandler{store: s}
}

func (h *CommentHandler) ListForArticle(c *gin.Context) {
	articleID, ok := pathID(c, "article_id")
	if !ok {
		return
	}
	limit, ok := queryInt(c, "limit", 10)
	if !ok {
		return
	}
	page, ok := queryInt(c, "p", 0)
	if !ok {
		return
	}

	comments, err := h.store.ListComments(articleID, limit, page)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

func (h *CommentHandler) Create(c *gin.Context) {
	articleID, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	var req struct {
		Username string `json:"username"`
		Body     string `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Body == "" {
		fail(c, apperr.BadRequest("Bad request"))
		return
	}

	comment, err := h.store.CreateComment(articleID, req.Username, req.Body)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

func (h *CommentHandler) PatchVotes(c *gin.Context) {
	id, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	var req struct {
		IncVotes *int `json:"inc_votes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.IncVotes == nil {
		fail(c, apperr.BadRequest("Bad request"))
		return
	}

	comment, err := h.store.UpdateCommentVotes(id, *req.IncVotes)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "comment_id")
	if !ok {
		return
	}

	if err := h.store.DeleteComment(id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
