//go:build unit

package jwt

import (
	"testing"
	"time"

	"fitcoach-booking/internal/domain/user"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := NewService("secret", time.Hour)
	userID := uuid.New()

	t.Run("発行したトークンを検証できる", func(t *testing.T) {
		token, err := svc.GenerateToken(userID, user.RoleCoach)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, userID, claims.UserID)
		assert.Equal(t, "coach", claims.Role)
	})

	t.Run("別の鍵で署名されたトークンは無効", func(t *testing.T) {
		token, err := NewService("other", time.Hour).GenerateToken(userID, user.RoleMember)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("期限切れ", func(t *testing.T) {
		token, err := NewService("secret", -time.Minute).GenerateToken(userID, user.RoleMember)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)

		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("HS256以外のアルゴリズムは拒否", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS512, Claims{
			UserID:           userID,
			Role:             "admin",
			RegisteredClaims: gojwt.RegisteredClaims{ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour))},
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("有効期限のないトークンは拒否", func(t *testing.T) {
		token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, Claims{UserID: userID, Role: "member"}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)

		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
