package handler

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/sandzahub/sebenza-api/internal/presentation/http/dto/response"
)

const oauthStateCookie = "oauth_state"

// GoogleAuth starts the Google OAuth flow
// @Summary Google OAuth
// @Description Redirect to Google for authentication
// @Tags auth
// @Success 307
// @Router /auth/google [get]
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	stateBytes := make([]byte, 16)
	if _, err := rand.Read(stateBytes); err != nil {
		response.Error(c, err)
		return
	}
	state := hex.EncodeToString(stateBytes)

	authURL, err := h.authService.GoogleAuthURL(state)
	if err != nil {
		response.Error(c, err)
		return
	}

	// State cookie is verified on the callback to block CSRF
	c.SetCookie(oauthStateCookie, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

// GoogleCallback completes the Google OAuth flow
// @Summary Google OAuth Callback
// @Description Handle the OAuth callback and redirect to the frontend with tokens
// @Tags auth
// @Success 307
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	successURL, errorURL := h.authService.GoogleFrontendURLs()

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		redirectWithError(c, errorURL, "invalid_state")
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		redirectWithError(c, errorURL, "missing_code")
		return
	}

	output, err := h.authService.GoogleLogin(c.Request.Context(), code)
	if err != nil {
		redirectWithError(c, errorURL, "login_failed")
		return
	}

	if successURL == "" {
		response.OK(c, "Login successful", gin.H{
			"access_token":  output.AccessToken,
			"refresh_token": output.RefreshToken,
			"token_type":    "Bearer",
		})
		return
	}

	target := successURL + "?access_token=" + url.QueryEscape(output.AccessToken) +
		"&refresh_token=" + url.QueryEscape(output.RefreshToken)
	c.Redirect(http.StatusTemporaryRedirect, target)
}

func redirectWithError(c *gin.Context, errorURL, reason string) {
	if errorURL == "" {
		response.Unauthorized(c, "Google authentication failed: "+reason)
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, errorURL+"?error="+url.QueryEscape(reason))
}
