package handlers_test

import (
	"net/http"
	"testing"

	"newsdesk/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListArticlesEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := perform(t, r, http.MethodGet, "/api/articles", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Articles []models.Article `json:"articles"`
	}
	decode(t, w, &body)
	require.Len(t, body.Articles, 3)
	assert.Equal(t, 2, body.Articles[0].CommentCount)
}

func TestListArticlesEndpointBadQueries(t *testing.T) {
	r := newTestRouter(t)

	w := perform(t, r, http.MethodGet, "/api/articles?sort_by=banana", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bad request", errMsg(t, w))

	w = perform(t, r, http.MethodGet, "/api/articles?order=sideways", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(t, r, http.MethodGet, "/api/articles?p=zero", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(t, r, http.MethodGet, "/api/articles?limit=-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(t, r, http.MethodGet, "/api/articles?topic=knitting", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Topic not found", errMsg(t, w))
}

func TestGetArticleEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := perform(t, r, http.MethodGet, "/api/articles/1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Article models.Article `json:"article"`
	}
	decode(t, w, &body)
	assert.Equal(t, uint(1), body.Article.ArticleID)
	assert.Equal(t, "A **markdown** body", body.Article.Body)
	assert.Equal(t, 2, body.Article.CommentCount)

	w = perform(t, r, http.MethodGet, "/api/articles/9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Non-numeric ids are the invalid-input-syntax case.
	w = perform(t, r, http.MethodGet, "/api/articles/banana", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Bad request", errMsg(t, w))
}

func TestCreateArticleEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := perform(t, r, http.MethodPost, "/api/articles",
		`{"author":"grumpy19","title":"Fresh","topic":"coding","body":"hello"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Article models.Article `json:"article"`
	}
	decode(t, w, &body)
	assert.Equal(t, 0, body.Article.CommentCount)
	assert.Equal(t, "Fresh", body.Article.Title)

	w = perform(t, r, http.MethodPost, "/api/articles",
		`{"author":"nobody","title":"t","topic":"coding","body":"b"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(t, r, http.MethodPost, "/api/articles", `{"author":"grumpy19"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPatchArticleVotesEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := perform(t, r, http.MethodPatch, "/api/articles/2", `{"inc_votes":-4}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Article models.Article `json:"article"`
	}
	decode(t, w, &body)
	assert.Equal(t, 6, body.Article.Votes) // seeded with 10

	w = perform(t, r, http.MethodPatch, "/api/articles/2", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(t, r, http.MethodPatch, "/api/articles/2", `{"inc_votes":"lots"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = perform(t, r, http.MethodPatch, "/api/articles/9999", `{"inc_votes":1}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteArticleEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w := perform(t, r, http.MethodDelete, "/api/articles/3", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(t, r, http.MethodDelete, "/api/articles/3", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
