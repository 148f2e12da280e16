package store

import (
	"fmt"
	"testing"
	"time"

	"newsdesk/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var baseTime = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

var fixtureUsers = []models.User{
	{Username: "tickle122", Name: "Tom Tickle", AvatarURL: "https://example.com/tickle.png"},
	{Username: "grumpy19", Name: "Paul Grump", AvatarURL: "https://example.com/grumpy.png"},
	{Username: "happyamy2016", Name: "Amy Happy", AvatarURL: "https://example.com/amy.png"},
	{Username: "cooljmessy", Name: "Peter Messy", AvatarURL: "https://example.com/messy.png"},
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see its own empty :memory: DB.
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
	return gdb
}

// seedFixtures loads three topics (football stays empty), four users,
// twelve articles with distinct timestamps and vote counts, and four
// comments: three on article 1, one on article 2.
func seedFixtures(t *testing.T, gdb *gorm.DB) {
	t.Helper()

	topics := []models.Topic{
		{Slug: "coding", Description: "Code is love, code is life"},
		{Slug: "football", Description: "FOOTIE!"},
		{Slug: "cooking", Description: "Hey good looking, what you got cooking?"},
	}
	for _, topic := range topics {
		require.NoError(t, gdb.Create(&topic).Error)
	}

	for _, user := range fixtureUsers {
		require.NoError(t, gdb.Create(&user).Error)
	}

	for i := 0; i < 12; i++ {
		topic := "coding"
		if i%2 == 1 {
			topic = "cooking"
		}
		article := models.Article{
			Title:     fmt.Sprintf("Article %02d", i+1),
			Topic:     topic,
			Author:    fixtureUsers[i%4].Username,
			Body:      fmt.Sprintf("Body of article %02d", i+1),
			CreatedAt: baseTime.Add(-time.Duration(i) * time.Hour),
			Votes:     (i * 7) % 13,
		}
		require.NoError(t, gdb.Create(&article).Error)
	}

	comments := []models.Comment{
		{ArticleID: 1, Author: "grumpy19", Body: "First!", Votes: 3, CreatedAt: baseTime.Add(-30 * time.Minute)},
		{ArticleID: 1, Author: "tickle122", Body: "Nice write-up", CreatedAt: baseTime.Add(-20 * time.Minute)},
		{ArticleID: 1, Author: "cooljmessy", Body: "Disagree entirely", Votes: -2, CreatedAt: baseTime.Add(-10 * time.Minute)},
		{ArticleID: 2, Author: "happyamy2016", Body: "Saved for later", CreatedAt: baseTime.Add(-40 * time.Minute)},
	}
	for _, comment := range comments {
		require.NoError(t, gdb.Create(&comment).Error)
	}
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	gdb := newTestDB(t)
	seedFixtures(t, gdb)
	return New(gdb)
}
