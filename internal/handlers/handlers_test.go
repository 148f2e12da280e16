package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"newsdesk/internal/middleware"
	"newsdesk/internal/models"
	"newsdesk/internal/router"
	"newsdesk/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSiteURL = "https://newsdesk.example"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, gdb.AutoMigrate(
		&models.User{},
		&models.Topic{},
		&models.Article{},
		&models.Comment{},
	))
	seed(t, gdb)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	router.RegisterRoutes(r, store.New(gdb), testSiteURL)
	return r
}

func seed(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	base := time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

	for _, topic := range []models.Topic{
		{Slug: "coding", Description: "Code is love, code is life"},
		{Slug: "football", Description: "FOOTIE!"},
	} {
		require.NoError(t, gdb.Create(&topic).Error)
	}
	for _, user := range []models.User{
		{Username: "tickle122", Name: "Tom Tickle"},
		{Username: "grumpy19", Name: "Paul Grump"},
	} {
		require.NoError(t, gdb.Create(&user).Error)
	}
	for i := 0; i < 3; i++ {
		article := models.Article{
			Title:     "Seeded article",
			Topic:     "coding",
			Author:    "tickle122",
			Body:      "A **markdown** body",
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
			Votes:     i * 10,
		}
		require.NoError(t, gdb.Create(&article).Error)
	}
	for _, comment := range []models.Comment{
		{ArticleID: 1, Author: "grumpy19", Body: "First!", CreatedAt: base.Add(-30 * time.Minute)},
		{ArticleID: 1, Author: "tickle122", Body: "Seconded", CreatedAt: base.Add(-10 * time.Minute)},
	} {
		require.NoError(t, gdb.Create(&comment).Error)
	}
}

func perform(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req = httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func errMsg(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Msg string `json:"msg"`
	}
	decode(t, w, &body)
	return body.Msg
}
