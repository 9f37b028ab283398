// Package testutil opens throwaway databases and seeds rows for package tests.
package testutil

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"gojournal/internal/dbmysql"
)

// NewDB returns a migrated in-memory SQLite database private to t. The pool
// is pinned to one connection so every statement sees the same memory DB.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:  logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, dbmysql.AutoMigrate(db))
	return db
}

// Clock hands out strictly increasing UTC timestamps, one second apart.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func CreateUser(t *testing.T, db *gorm.DB, username, displayName string) *dbmysql.User {
	t.Helper()
	user := &dbmysql.User{
		Username:     username,
		Email:        fmt.Sprintf("%s@example.com", username),
		PasswordHash: "x",
		DisplayName:  displayName,
		IsActive:     true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateImage(t *testing.T, db *gorm.DB, day string) *dbmysql.DailyImage {
	t.Helper()
	img := &dbmysql.DailyImage{
		ImageDate: day,
		Title:     "File:Image of " + day + ".jpg",
		ImageURL:  "https://upload.wikimedia.org/" + day + ".jpg",
		PageURL:   "https://commons.wikimedia.org/" + day,
	}
	require.NoError(t, db.Create(img).Error)
	return img
}

func CreateEntry(t *testing.T, db *gorm.DB, authorID, imageID uint64, day string, shared bool) *dbmysql.Entry {
	t.Helper()
	now := time.Now().UTC()
	entry := &dbmysql.Entry{
		AuthorID:       authorID,
		DailyImageID:   imageID,
		EntryDate:      day,
		ReflectionText: "a quiet morning",
		IsShared:       shared,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, db.Create(entry).Error)
	return entry
}
