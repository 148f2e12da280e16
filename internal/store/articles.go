package store

import (
	"errors"
	"strings"

	"newsdesk/internal/apperr"
	"newsdesk/internal/models"

	"gorm.io/gorm"
)

const (
	articleListColumns = "articles.article_id, articles.title, articles.topic, " +
		"articles.author, articles.created_at, articles.votes, " +
		"articles.article_img_url, COUNT(comments.comment_id) AS comment_count"
	articleDetailColumns = "articles.article_id, articles.title, articles.topic, " +
		"articles.author, articles.body, articles.created_at, articles.votes, " +
		"articles.article_img_url, COUNT(comments.comment_id) AS comment_count"
)

// Sort identifiers are resolved through these maps so that nothing the
// caller sends is ever interpolated into the query text.
var articleSortColumns = map[string]string{
	"title":         "articles.title",
	"topic":         "articles.topic",
	"author":        "articles.author",
	"created_at":    "articles.created_at",
	"votes":         "articles.votes",
	"comment_count": "comment_count",
}

var sortDirections = map[string]string{
	"asc":  "ASC",
	"desc": "DESC",
}

// ArticleQuery carries the listing parameters. Zero values mean "use the
// default": created_at, desc, limit 10, no pagination.
type ArticleQuery struct {
	Topic  string
	SortBy string
	Order  string
	Limit  int
	Page   int
}

// articleRows is the shared SELECT for article reads: a left join onto
// comments grouped per article, so comment_count is computed on every
// read and never stored.
func (s *Store) articleRows(columns string) *gorm.DB {
	return s.db.Model(&models.Article{}).
		Select(columns).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")
}

func (s *Store) GetArticleByID(id int) (*models.Article, error) {
	var article models.Article
	err := s.articleRows(articleDetailColumns).
		Where("articles.article_id = ?", id).
		First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Not found, article_id does not exist")
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *Store) ListArticles(q ArticleQuery) ([]models.Article, error) {
	sortBy := strings.ToLower(q.SortBy)
	if sortBy == "" {
		sortBy = "created_at"
	}
	column, ok := articleSortColumns[sortBy]
	if !ok {
		return nil, apperr.BadRequest("Bad request")
	}

	order := strings.ToLower(q.Order)
	if order == "" {
		order = "desc"
	}
	direction, ok := sortDirections[order]
	if !ok {
		return nil, apperr.BadRequest("Bad request")
	}

	query := s.articleRows(articleListColumns)

	if q.Topic != "" {
		canonical, known, err := s.refs.ResolveTopic(q.Topic)
		if err != nil {
			return nil, err
		}
		// An unknown topic is 404, not an empty list: the contract
		// distinguishes "topic does not exist" from "topic has no
		// articles".
		if !known {
			return nil, apperr.NotFound("Topic not found")
		}
		query = query.Where("articles.topic = ?", canonical)
	}

	query = query.Order(column + " " + direction)

	if q.Page > 0 {
		limit := q.Limit
		if limit <= 0 {
			limit = 10
		}
		query = query.Limit(limit).Offset((q.Page - 1) * limit)
	}

	articles := []models.Article{}
	if err := query.Find(&articles).Error; err != nil {
		return nil, err
	}
	return articles, nil
}

type NewArticle struct {
	Author        string
	Title         string
	Topic         string
	Body          string
	ArticleImgURL string
}

// CreateArticle checks author and topic against the reference data
// before touching the articles table.
func (s *Store) CreateArticle(in NewArticle) (*models.Article, error) {
	known, err := s.refs.UserExists(in.Author)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, apperr.BadRequest("Author not recognised")
	}

	canonical, known, err := s.refs.ResolveTopic(in.Topic)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, apperr.BadRequest("Topic not recognised")
	}

	article := models.Article{
		Author:        in.Author,
		Title:         in.Title,
		Topic:         canonical,
		Body:          in.Body,
		ArticleImgURL: in.ArticleImgURL,
	}
	if err := s.db.Create(&article).Error; err != nil {
		return nil, err
	}
	// A brand new article has no comments yet.
	article.CommentCount = 0
	return &article, nil
}

// UpdateArticleVotes applies votes = votes + delta. The delta's sign and
// magnitude are deliberately not validated.
func (s *Store) UpdateArticleVotes(id, delta int) (*models.Article, error) {
	res := s.db.Model(&models.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.NotFound("Not found, article_id does not exist")
	}
	return s.GetArticleByID(id)
}

func (s *Store) DeleteArticle(id int) error {
	res := s.db.Delete(&models.Article{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("Not found, article_id does not exist")
	}
	return nil
}

// RecentArticles returns the n newest articles, bodies included, for
// the RSS feed.
func (s *Store) RecentArticles(n int) ([]models.Article, error) {
	articles := []models.Article{}
	err := s.articleRows(articleDetailColumns).
		Order("articles.created_at DESC").
		Limit(n).
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

// ArticleExists is the existence probe used before comment reads and
// writes against a caller-supplied article id.
func (s *Store) ArticleExists(id int) error {
	var count int64
	if err := s.db.Model(&models.Article{}).Where("article_id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return apperr.NotFound("Article_id not found!")
	}
	return nil
}
