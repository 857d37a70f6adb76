package service

import (
	"context"
	"testing"

	"Tieba_Community/internal/repository/mysql"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema. One
// connection max: every :memory: connection would otherwise be its own
// empty database. SQLite needs the pragma to enforce the foreign keys the
// schema declares.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, (&mysql.SchemaManager{DB: db}).EnsureSchema())
	return db
}

// registerUser goes through the real registration path and returns the id.
func registerUser(t *testing.T, db *gorm.DB, name string) uint64 {
	t.Helper()
	id, err := NewAuthService(db).Register(context.Background(), name, "secret-"+name, "")
	require.NoError(t, err)
	return id
}
