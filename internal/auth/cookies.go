package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// TokenCookieName is the cookie carrying the access token.
const TokenCookieName = "token"

// SetTokenCookie attaches the session cookie to the response.
// HTTP-only keeps it away from scripts, Secure keeps it off plaintext
// transports, SameSite=Strict keeps it off cross-site navigations.
func SetTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookieName, token, maxAge, "/", "", true, true)
}

// ClearTokenCookie expires the session cookie with the same flags.
func ClearTokenCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(TokenCookieName, "", -1, "/", "", true, true)
}
