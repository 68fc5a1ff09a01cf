package auth

import (
	"testing"
	"time"

	"realty-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	tm := NewTokenManager("secret", "realty-test", time.Hour)
	user := entities.User{ID: "user-1", Email: "a@b.io", Role: entities.RoleSeller}

	raw, issued, err := tm.Generate(user)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.SessionID())

	claims, err := tm.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID())
	assert.Equal(t, entities.RoleSeller, claims.Role)
	assert.False(t, claims.Demo)
	assert.Equal(t, issued.SessionID(), claims.SessionID())
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAtTime(), 5*time.Second)
}

func TestGenerateDemo(t *testing.T) {
	tm := NewTokenManager("secret", "realty-test", time.Hour)
	raw, _, err := tm.GenerateDemo("09121234567", entities.RoleTenant)
	require.NoError(t, err)

	claims, err := tm.Parse(raw)
	require.NoError(t, err)
	assert.True(t, claims.Demo)
	assert.Empty(t, claims.UserID())
	assert.Equal(t, "09121234567", claims.DemoPhone)
}

func TestParse_Rejects(t *testing.T) {
	tm := NewTokenManager("secret", "realty-test", time.Hour)
	raw, _, err := tm.Generate(entities.User{ID: "u"})
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokenManager("other", "realty-test", time.Hour).Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("wrong issuer", func(t *testing.T) {
		_, err := NewTokenManager("secret", "someone-else", time.Hour).Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("expired", func(t *testing.T) {
		late := NewTokenManager("secret", "realty-test", time.Hour)
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Parse(raw)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := tm.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret!")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "s3cret!"))
	assert.False(t, CheckPassword(hash, "wrong"))

	a, err := NewOpaqueToken()
	require.NoError(t, err)
	b, err := NewOpaqueToken()
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
