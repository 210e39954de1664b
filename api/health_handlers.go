package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness and locale configuration.
func HealthHandler(c *gin.Context) {
	d, err := getDeps()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unconfigured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"locales": d.Bundle.Supported(),
	})
}
