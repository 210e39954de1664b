// Package cache provides in-memory caching for parsed page documents and
// rendered HTML fragments.
package cache

import (
	"log"
	"sync"
	"time"

	"github.com/AlphaHasher/churchlink-go/models"
)

// pageEntry is a cached parsed page document.
type pageEntry struct {
	page     *models.Page
	cachedAt time.Time
}

// Manager coordinates the page-document and fragment caches. Fragments are
// keyed per page so a builder update can invalidate everything rendered
// from that page in one call.
type Manager struct {
	mu sync.RWMutex

	pages     map[string]*pageEntry          // page slug -> document
	fragments map[string]map[string]fragment // page id -> fragment key -> entry

	pageTTL     time.Duration
	fragmentTTL time.Duration
}

// NewManager creates a cache manager with the given TTLs.
func NewManager(pageTTL, fragmentTTL time.Duration) *Manager {
	return &Manager{
		pages:       make(map[string]*pageEntry),
		fragments:   make(map[string]map[string]fragment),
		pageTTL:     pageTTL,
		fragmentTTL: fragmentTTL,
	}
}

// GetPage retrieves a cached parsed document by slug.
func (m *Manager) GetPage(slug string) (*models.Page, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.pages[slug]
	if !ok || time.Since(entry.cachedAt) > m.pageTTL {
		return nil, false
	}
	return entry.page, true
}

// SetPage caches a parsed document by slug.
func (m *Manager) SetPage(slug string, page *models.Page) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[slug] = &pageEntry{page: page, cachedAt: time.Now().UTC()}
}

// InvalidatePage drops the cached document and every fragment rendered
// from it. Called when the builder publishes an update.
func (m *Manager) InvalidatePage(slug, pageID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pages, slug)
	delete(m.fragments, pageID)
	log.Printf("cache: invalidated page %s (%s)", slug, pageID)
}

// Purge removes expired entries. Called by the cleanup routine.
func (m *Manager) Purge() (pages, fragments int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	for slug, entry := range m.pages {
		if now.Sub(entry.cachedAt) > m.pageTTL {
			delete(m.pages, slug)
			pages++
		}
	}
	for pageID, frags := range m.fragments {
		for key, f := range frags {
			if now.Sub(f.cachedAt) > m.fragmentTTL {
				delete(frags, key)
				fragments++
			}
		}
		if len(frags) == 0 {
			delete(m.fragments, pageID)
		}
	}
	return pages, fragments
}
