package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"fitcoach-booking/internal/domain/user"
	"fitcoach-booking/internal/pkg/cookie"
	"fitcoach-booking/internal/usecase"
	"fitcoach-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth accepts a bearer token, falling back to the access token cookie.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			token = cookie.GetAccessToken(c)
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			return
		}

		actor, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			return
		}

		SetActor(c, actor)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "Internal server error"},
			})
			return
		}

		if !slices.Contains(roles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Insufficient permissions"},
			})
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func SetActor(c *gin.Context, actor shared.Actor) {
	c.Set(ctxUserIDKey, actor.ID)
	c.Set(ctxUserRoleKey, actor.Role)
	c.Set("jwt_claims", map[string]any{
		"user_id": actor.ID.String(),
		"role":    actor.Role.String(),
	})
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	userRole, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}

	role, ok := userRole.(user.Role)
	return role, ok
}

func GetActor(c *gin.Context) (shared.Actor, bool) {
	id, ok := GetUserID(c)
	if !ok {
		return shared.Actor{}, false
	}
	role, ok := GetUserRole(c)
	if !ok {
		return shared.Actor{}, false
	}
	return shared.Actor{ID: id, Role: role}, true
}
