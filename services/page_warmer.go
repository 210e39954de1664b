package services

import (
	"context"
	"log"
	"time"

	"github.com/AlphaHasher/churchlink-go/cache"
	"github.com/AlphaHasher/churchlink-go/store"
)

// PageWarmingService pre-loads published page documents into the cache so
// first requests after a restart skip the database.
type PageWarmingService struct {
	cache *cache.Manager
	pages *store.PageRepository
}

// NewPageWarmingService creates a new page warmer.
func NewPageWarmingService(cm *cache.Manager, pages *store.PageRepository) *PageWarmingService {
	return &PageWarmingService{cache: cm, pages: pages}
}

// WarmVisiblePages loads every published, visible page and caches its parsed
// document. Returns the number of pages warmed.
func (s *PageWarmingService) WarmVisiblePages(ctx context.Context) (int, error) {
	start := time.Now()
	summaries, err := s.pages.ListVisible(ctx)
	if err != nil {
		return 0, err
	}

	warmed := 0
	for _, summary := range summaries {
		page, err := s.pages.GetBySlug(ctx, summary.Slug)
		if err != nil {
			log.Printf("WARNING: failed to warm page %s: %v", summary.Slug, err)
			continue
		}
		if page == nil {
			continue
		}
		s.cache.SetPage(page.Slug, page)
		warmed++
	}

	log.Printf("warmed %d/%d pages in %s", warmed, len(summaries), time.Since(start).Round(time.Millisecond))
	return warmed, nil
}
