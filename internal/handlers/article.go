package handlers

import (
	"net/http"

	"newsdesk/internal/apperr"
	"newsdesk/internal/store"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	store *store.Store
}

func NewArticleHandler(s *store.Store) *ArticleHandler {
	return &ArticleHandler{store: s}
}

func (h *ArticleHandler) List(c *gin.Context) {
	limit, ok := queryInt(c, "limit", 10)
	if !ok {
		return
	}
	page, ok := queryInt(c, "p", 0)
	if !ok {
		return
	}

	articles, err := h.store.ListArticles(store.ArticleQuery{
		Topic:  c.Query("topic"),
		SortBy: c.Query("sort_by"),
		Order:  c.Query("order"),
		Limit:  limit,
		Page:   page,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (h *ArticleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	article, err := h.store.GetArticleByID(id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req struct {
		Author        string `json:"author"`
		Title         string `json:"title"`
		Topic         string `json:"topic"`
		Body          string `json:"body"`
		ArticleImgURL string `json:"article_img_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.Author == "" || req.Title == "" || req.Topic == "" || req.Body == "" {
		fail(c, apperr.BadRequest("Bad request"))
		return
	}

	article, err := h.store.CreateArticle(store.NewArticle{
		Author:        req.Author,
		Title:         req.Title,
		Topic:         req.Topic,
		Body:          req.Body,
		ArticleImgURL: req.ArticleImgURL,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"article": article})
}

func (h *ArticleHandler) PatchVotes(c *gin.Context) {
	id, ok := pathID(c, "article_id")
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

	article, err := h.store.UpdateArticleVotes(id, *req.IncVotes)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "article_id")
	if !ok {
		return
	}

	if err := h.store.DeleteArticle(id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
