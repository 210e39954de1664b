package api

import (
	"net/http"
	"strings"

	"github.com/AlphaHasher/churchlink-go/utils"
	"github.com/gin-gonic/gin"
)

// previewAuthRequest carries the builder secret exchanged for a token.
type previewAuthRequest struct {
	Secret string `json:"secret" binding:"required"`
}

// PreviewAuthHandler exchanges the builder secret for a short-lived preview
// token granting access to draft pages.
func PreviewAuthHandler(c *gin.Context) {
	d, err := getDeps()
	if err != nil {
		logAndAbort(c, http.StatusInternalServerError, "service unavailable", err)
		return
	}
	if d.BuilderSecretHash == "" || d.JWTSecret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "preview auth is not configured"})
		return
	}

	var req previewAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "secret is required"})
		return
	}

	if !utils.CheckBuilderSecret(req.Secret, d.BuilderSecretHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid builder secret"})
		return
	}

	token, err := utils.GeneratePreviewToken(d.JWTSecret, d.AESKey)
	if err != nil {
		logAndAbort(c, http.StatusInternalServerError, "failed to issue token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// hasPreviewAccess reports whether the request carries a valid preview
// token, either as a bearer header or a token query parameter (used by the
// websocket upgrade, which cannot set headers).
func hasPreviewAccess(c *gin.Context, d *Deps) bool {
	if d.JWTSecret == "" {
		return false
	}

	token := c.Query("token")
	if token == "" {
		auth := c.GetHeader("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			token = strings.TrimPrefix(auth, "Bearer ")
		}
	}
	if token == "" {
		return false
	}

	claims, err := utils.ValidateJWT(token, d.JWTSecret)
	if err != nil {
		return false
	}
	return utils.HasPreviewScope(claims) && utils.ValidatePreviewSession(claims, d.AESKey)
}
