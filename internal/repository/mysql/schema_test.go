package mysql

import (
	"testing"

	"Tieba_Community/internal/model"
	"Tieba_Community/internal/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := newTestDB(t)
	// A second run over an existing schema must be a no-op, not an error.
	require.NoError(t, (&SchemaManager{DB: db}).EnsureSchema())
}

func TestResetSchema_SeedsSmokeTestIdentity(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "someone")

	m := &SchemaManager{DB: db}
	require.NoError(t, m.ResetSchema())

	// Everything pre-reset is gone; only the seeded identity remains.
	assert.Equal(t, int64(1), countRows(t, db, &model.User{}))

	var u model.User
	require.NoError(t, db.Where("name = ?", SeedUserName).First(&u).Error)
	assert.Equal(t, SeedUserKind, u.Kind)
	assert.Equal(t, SeedUserSalt, u.Salt)
	assert.Equal(t, int64(SeedUserExp), u.Exp)
	assert.Equal(t, pkg.SHA256Hasher(SeedUserPassword, SeedUserSalt), u.Password)
}

func TestResetSchema_RunsTwice(t *testing.T) {
	db := newTestDB(t)
	m := &SchemaManager{DB: db}
	require.NoError(t, m.ResetSchema())
	require.NoError(t, m.ResetSchema())
	assert.Equal(t, int64(1), countRows(t, db, &model.User{}))
}
