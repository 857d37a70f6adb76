package mysql

import (
	"context"
	"testing"

	"Tieba_Community/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory database with the full schema so units of
// work run for real. One connection max: every :memory: connection would
// otherwise be its own empty database. SQLite needs the pragma to enforce
// the foreign keys the schema declares.
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

	require.NoError(t, (&SchemaManager{DB: db}).EnsureSchema())
	return db
}

func seedUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	u := &model.User{Kind: "U", Name: name, Password: "digest", Salt: "salt"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedBar(t *testing.T, db *gorm.DB, name string, ownerID uint64) *model.Bar {
	t.Helper()
	b := &model.Bar{Name: name, OwnerID: ownerID}
	require.NoError(t, (&BarRepository{DB: db}).Create(context.Background(), b))
	return b
}

func userExp(t *testing.T, db *gorm.DB, id uint64) int64 {
	t.Helper()
	var u model.User
	require.NoError(t, db.First(&u, id).Error)
	return u.Exp
}

func countRows(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
