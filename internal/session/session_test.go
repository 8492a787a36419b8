package session

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bar-inventory/pkg/errors"
)

func mintToken(t *testing.T, username string, manager bool) string {
	t.Helper()
	claims := Claims{
		Username: username,
		Manager:  manager,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestFromToken(t *testing.T) {
	t.Run("manager claim", func(t *testing.T) {
		token := mintToken(t, "manager", true)
		sess, err := FromToken(token)
		require.NoError(t, err)
		assert.Equal(t, "manager", sess.Username)
		assert.True(t, sess.Manager)
		assert.Equal(t, token, sess.Token)
	})

	t.Run("staff claim", func(t *testing.T) {
		sess, err := FromToken(mintToken(t, "staff", false))
		require.NoError(t, err)
		assert.False(t, sess.Manager)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := FromToken("не.токен.вовсе")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("empty username", func(t *testing.T) {
		_, err := FromToken(mintToken(t, "", true))
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})
}
