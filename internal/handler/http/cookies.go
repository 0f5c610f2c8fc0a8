package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	usecasecontract "github.com/voyago/voyago/internal/usecase/contract"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// setAuthCookies writes the token pair as httpOnly cookies. With the secure
// flag on, SameSite=None allows a cross-site frontend to send them.
func setAuthCookies(c *gin.Context, cfg usecasecontract.IConfigProvider, pair *usecasecontract.TokenPair) {
	secure := cfg.GetCookieSecure()
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(accessTokenCookie, pair.AccessToken, int(cfg.GetAccessTokenExpiry().Seconds()), "/", "", secure, true)
	c.SetCookie(refreshTokenCookie, pair.RefreshToken, int(cfg.GetRefreshTokenExpiry().Seconds()), "/", "", secure, true)
}

// clearAuthCookies expires both auth cookies unconditionally.
func clearAuthCookies(c *gin.Context, cfg usecasecontract.IConfigProvider) {
	secure := cfg.GetCookieSecure()
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(accessTokenCookie, "", -1, "/", "", secure, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", "", secure, true)
}
