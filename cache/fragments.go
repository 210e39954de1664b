package cache

import (
	"fmt"
	"time"
)

// widthBucketPx groups nearby render widths so resizes within a bucket hit
// the same cached fragment. Phase-one output is position-exact per bucket;
// the client re-requests on real width changes anyway.
const widthBucketPx = 16

// fragment is one cached rendered HTML chunk.
type fragment struct {
	html     string
	cachedAt time.Time
}

// FragmentKey identifies one rendered variant of a page or section.
type FragmentKey struct {
	SectionID string // empty for a full-page render
	Width     float64
	Locale    string
	Mobile    bool
}

// WidthBucket quantizes a measured width for cache keying.
func WidthBucket(width float64) int {
	if width <= 0 {
		return 0
	}
	return int(width) / widthBucketPx
}

func (k FragmentKey) String() string {
	section := k.SectionID
	if section == "" {
		section = "page"
	}
	surface := "desktop"
	if k.Mobile {
		surface = "mobile"
	}
	return fmt.Sprintf("%s:%d:%s:%s", section, WidthBucket(k.Width), k.Locale, surface)
}

// GetFragment retrieves cached HTML for a rendered variant.
func (m *Manager) GetFragment(pageID string, key FragmentKey) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	frags, ok := m.fragments[pageID]
	if !ok {
		return "", false
	}
	f, ok := frags[key.String()]
	if !ok || time.Since(f.cachedAt) > m.fragmentTTL {
		return "", false
	}
	return f.html, true
}

// SetFragment stores rendered HTML for a variant.
func (m *Manager) SetFragment(pageID string, key FragmentKey, html string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	frags, ok := m.fragments[pageID]
	if !ok {
		frags = make(map[string]fragment)
		m.fragments[pageID] = frags
	}
	frags[key.String()] = fragment{html: html, cachedAt: time.Now().UTC()}
}
