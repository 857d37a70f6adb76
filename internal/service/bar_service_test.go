package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBar(t *testing.T) {
	db := newTestDB(t)
	owner := registerUser(t, db, "alice")
	svc := NewBarService(db)

	bar, err := svc.CreateBar(context.Background(), "general", owner)
	require.NoError(t, err)
	require.NotZero(t, bar.ID)

	_, err = svc.CreateBar(context.Background(), "general", owner)
	assert.ErrorIs(t, err, ErrNameTaken)

	_, err = svc.CreateBar(context.Background(), "", owner)
	assert.Error(t, err)
	_, err = svc.CreateBar(context.Background(), "other", 0)
	assert.Error(t, err)
}

func TestGetBarByName(t *testing.T) {
	db := newTestDB(t)
	owner := registerUser(t, db, "alice")
	svc := NewBarService(db)

	created, err := svc.CreateBar(context.Background(), "general", owner)
	require.NoError(t, err)

	got, err := svc.GetBarByName(context.Background(), "general")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)

	missing, err := svc.GetBarByName(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
