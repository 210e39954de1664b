// Package api provides HTTP handlers for page rendering endpoints
package api

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/AlphaHasher/churchlink-go/cache"
	"github.com/AlphaHasher/churchlink-go/i18n"
	"github.com/AlphaHasher/churchlink-go/models"
	"github.com/AlphaHasher/churchlink-go/services"
	"github.com/AlphaHasher/churchlink-go/store"
	"github.com/AlphaHasher/churchlink-go/utils/images"
	"github.com/gin-gonic/gin"
)

// Deps holds the shared collaborators handlers resolve against. Set once at
// startup via Configure.
type Deps struct {
	Cache       *cache.Manager
	Pages       *store.PageRepository
	Assets      *store.AssetRepository
	Bundle      *i18n.Bundle
	Broadcaster *services.PreviewBroadcaster
	Processor   *images.ImageProcessor

	JWTSecret         string
	AESKey            string
	BuilderSecretHash string
}

var deps *Deps

// Configure wires the handler package to its collaborators.
func Configure(d *Deps) {
	deps = d
}

func getDeps() (*Deps, error) {
	if deps == nil {
		return nil, errors.New("api not configured")
	}
	return deps, nil
}

// renderContextFor builds the ambient render inputs for one request:
// resolved locale, translation hook, and asset resolution backed by the
// asset store.
func renderContextFor(c *gin.Context, d *Deps) *models.RenderContext {
	locale := c.Query("locale")
	if locale == "" {
		locale = d.Bundle.Resolve(c.GetHeader("Accept-Language"))
	}

	return &models.RenderContext{
		ActiveLocale:  locale,
		DefaultLocale: d.Bundle.Fallback(),
		Localize:      d.Bundle.Localizer(locale),
		ResolveAsset:  d.Assets.Resolver(c.Request.Context()),
		Mobile:        c.Query("mobile") == "1" || c.Query("mobile") == "true",
	}
}

// queryWidth parses the measured viewport width. Zero when absent or
// malformed; the renderer treats that as not yet measured.
func queryWidth(c *gin.Context) float64 {
	raw := c.Query("width")
	if raw == "" {
		return 0
	}
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil || w < 0 {
		return 0
	}
	return w
}

// loadPage resolves a page by slug, cache first.
func loadPage(ctx context.Context, d *Deps, slug string) (*models.Page, error) {
	if page, ok := d.Cache.GetPage(slug); ok {
		return page, nil
	}

	page, err := d.Pages.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if page != nil {
		d.Cache.SetPage(slug, page)
	}
	return page, nil
}

func logAndAbort(c *gin.Context, status int, msg string, err error) {
	if err != nil {
		log.Printf("ERROR: %s: %v", msg, err)
	}
	c.JSON(status, gin.H{"error": msg})
}
