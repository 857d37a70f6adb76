package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePair_ParseAccess(t *testing.T) {
	pair, err := GeneratePair(42)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
}

func TestParseAccess_RejectsRefreshToken(t *testing.T) {
	pair, err := GeneratePair(7)
	require.NoError(t, err)

	// Signed with the refresh secret, so it must not pass as an access token.
	_, err = ParseAccess(pair.RefreshToken)
	assert.Error(t, err)
}

func TestRefresh_IssuesNewPair(t *testing.T) {
	pair, err := GeneratePair(9)
	require.NoError(t, err)

	fresh, err := Refresh(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := ParseAccess(fresh.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint64(9), claims.UserID)
}

func TestRefresh_RejectsGarbage(t *testing.T) {
	_, err := Refresh("not-a-token")
	assert.ErrorIs(t, err, ErrRefreshInvalid)
}
