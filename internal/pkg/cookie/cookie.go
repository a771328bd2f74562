package cookie

import (
	"github.com/gin-gonic/gin"
)

// AccessTokenCookieName is set by the identity provider on the shared parent domain.
// Browsers cannot attach headers to EventSource requests, so the live feeds rely on it.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
