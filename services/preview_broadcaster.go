// Package services provides background coordination between the page store,
// the render cache, and connected builder sessions.
package services

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// PreviewClient represents one connected builder preview session.
type PreviewClient struct {
	Conn   *websocket.Conn
	PageID string
	Send   chan []byte
}

// pageUpdateMessage is the wire payload pushed when a page changes.
type pageUpdateMessage struct {
	Type      string `json:"type"`
	PageID    string `json:"pageId"`
	UpdatedAt string `json:"updatedAt"`
}

// PreviewBroadcaster tracks builder preview sessions per page and pushes a
// notification whenever the page document is republished, so open previews
// re-request rendered HTML.
type PreviewBroadcaster struct {
	pageClients map[string]map[*PreviewClient]bool
	register    chan *PreviewClient
	unregister  chan *PreviewClient
	updates     chan string
	mu          sync.RWMutex
}

// NewPreviewBroadcaster creates a new broadcaster instance.
func NewPreviewBroadcaster() *PreviewBroadcaster {
	return &PreviewBroadcaster{
		pageClients: make(map[string]map[*PreviewClient]bool),
		register:    make(chan *PreviewClient),
		unregister:  make(chan *PreviewClient),
		updates:     make(chan string, 64),
	}
}

// Run starts the broadcaster's main loop. This should be run as a goroutine.
func (b *PreviewBroadcaster) Run() {
	for {
		select {
		case client := <-b.register:
			b.mu.Lock()
			if _, ok := b.pageClients[client.PageID]; !ok {
				b.pageClients[client.PageID] = make(map[*PreviewClient]bool)
			}
			b.pageClients[client.PageID][client] = true
			b.mu.Unlock()
			log.Printf("preview client connected for page %s", client.PageID)

		case client := <-b.unregister:
			b.mu.Lock()
			if clients, ok := b.pageClients[client.PageID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.Send)
					if len(clients) == 0 {
						delete(b.pageClients, client.PageID)
					}
				}
			}
			b.mu.Unlock()
			log.Printf("preview client disconnected for page %s", client.PageID)

		case pageID := <-b.updates:
			b.broadcastPageUpdate(pageID)
		}
	}
}

// Register adds a preview session.
func (b *PreviewBroadcaster) Register(client *PreviewClient) {
	b.register <- client
}

// Unregister removes a preview session.
func (b *PreviewBroadcaster) Unregister(client *PreviewClient) {
	b.unregister <- client
}

// NotifyPageUpdated queues an update notification for all sessions viewing
// the page. Non-blocking; drops when the queue is full.
func (b *PreviewBroadcaster) NotifyPageUpdated(pageID string) {
	select {
	case b.updates <- pageID:
	default:
		log.Printf("preview update queue full, dropping notification for page %s", pageID)
	}
}

// HasViewers reports whether any preview session is watching the page.
func (b *PreviewBroadcaster) HasViewers(pageID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.pageClients[pageID]) > 0
}

func (b *PreviewBroadcaster) broadcastPageUpdate(pageID string) {
	payload, err := json.Marshal(pageUpdateMessage{
		Type:      "pageUpdated",
		PageID:    pageID,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		log.Printf("ERROR: failed to marshal page update: %v", err)
		return
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	for client := range b.pageClients[pageID] {
		select {
		case client.Send <- payload:
		default:
			// Slow client; skip rather than block the loop.
		}
	}
}

// WritePump drains the client's send channel to its socket. Runs as a
// goroutine per connection; exits when the channel closes.
func (c *PreviewClient) WritePump() {
	defer c.Conn.Close()
	for msg := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// ReadPump consumes (and discards) client frames so pings are answered and
// disconnects are noticed. Unregisters on exit.
func (c *PreviewClient) ReadPump(b *PreviewBroadcaster) {
	defer func() {
		b.Unregister(c)
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			return
		}
	}
}
