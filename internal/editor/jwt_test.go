package editor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService() TokenService {
	return TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "portfoliohub",
		Duration: time.Hour,
	}
}

func testEditor() *Editor {
	return &Editor{
		ID:           "ed-1",
		Username:     "maintainer",
		Email:        "maintainer@example.com",
		TokenVersion: 3,
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	ts := testTokenService()

	token, exp, err := ts.Sign(testEditor())
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := ts.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "ed-1", claims.EditorID)
	assert.Equal(t, "maintainer", claims.Username)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.Equal(t, "portfoliohub", claims.Issuer)
}

func TestTokenService_Parse(t *testing.T) {
	ts := testTokenService()

	t.Run("wrong secret is rejected", func(t *testing.T) {
		token, _, err := ts.Sign(testEditor())
		require.NoError(t, err)

		other := testTokenService()
		other.Secret = []byte("different")
		_, err = other.Parse(token)
		assert.Error(t, err)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		short := testTokenService()
		short.Duration = -time.Minute
		token, _, err := short.Sign(testEditor())
		require.NoError(t, err)

		_, err = short.Parse(token)
		assert.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := ts.Parse("not.a.token")
		assert.Error(t, err)
	})
}
