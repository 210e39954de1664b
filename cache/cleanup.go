package cache

import (
	"log"
	"time"
)

// StartCleanupRoutine launches the periodic purge of expired entries.
func StartCleanupRoutine(m *Manager, interval time.Duration) chan<- struct{} {
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				pages, fragments := m.Purge()
				if pages > 0 || fragments > 0 {
					log.Printf("cache cleanup: purged %d pages, %d fragments", pages, fragments)
				}
			case <-stop:
				return
			}
		}
	}()
	return stop
}
