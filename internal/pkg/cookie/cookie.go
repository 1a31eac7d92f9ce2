package cookie

import (
	"github.com/gin-gonic/gin"
)

// Token issuance lives in the identity service; this service only reads the cookie it sets.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
