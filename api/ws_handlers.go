package api

import (
	"log"
	"net/http"

	"github.com/AlphaHasher/churchlink-go/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var previewUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Origin is enforced by the CORS layer; the upgrade itself accepts any.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// PreviewSocketHandler upgrades a builder preview session to a websocket
// that receives page-update notifications.
func PreviewSocketHandler(c *gin.Context) {
	d, err := getDeps()
	if err != nil {
		logAndAbort(c, http.StatusInternalServerError, "service unavailable", err)
		return
	}
	if d.Broadcaster == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "preview sockets are not enabled"})
		return
	}
	if !hasPreviewAccess(c, d) {
		c.JSON(http.StatusForbidden, gin.H{"error": "preview token required"})
		return
	}

	pageID := c.Param("id")
	if pageID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page ID is required"})
		return
	}

	conn, err := previewUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ERROR: websocket upgrade failed: %v", err)
		return
	}

	client := &services.PreviewClient{
		Conn:   conn,
		PageID: pageID,
		Send:   make(chan []byte, 16),
	}
	d.Broadcaster.Register(client)

	go client.WritePump()
	go client.ReadPump(d.Broadcaster)
}
