// Package testutil opens throwaway sqlite databases for package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"inventory-api/internal/core/database"
	"inventory-api/internal/domain"
	"inventory-api/internal/repo"
	"inventory-api/pkg/utils"
)

// OpenDB returns a migrated sqlite database living in t.TempDir().
func OpenDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "inventory.db") +
		"?_foreign_keys=1&_busy_timeout=5000&_journal_mode=WAL"
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          dsn,
		MaxOpenConns: 4,
		MaxIdleConns: 2,
		LogLevel:     "silent",
		Logger:       zaptest.NewLogger(t),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

// SeedUser inserts a user directly, bypassing registration.
func SeedUser(t testing.TB, db *gorm.DB, name, email string) domain.User {
	t.Helper()
	u := domain.User{ID: utils.NewID(), Name: name, Email: email, PasswordHash: "x"}
	if err := repo.NewStore(db).Users().Create(context.Background(), &u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}
