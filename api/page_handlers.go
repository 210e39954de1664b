package api

import (
	"net/http"

	"github.com/AlphaHasher/churchlink-go/cache"
	"github.com/AlphaHasher/churchlink-go/html"
	"github.com/AlphaHasher/churchlink-go/models"
	"github.com/gin-gonic/gin"
)

// GetPageHTMLHandler serves the provisional first-phase render of a page.
// These renders depend only on slug, width bucket, locale, and surface, so
// they are fragment-cached.
func GetPageHTMLHandler(c *gin.Context) {
	d, err := getDeps()
	if err != nil {
		logAndAbort(c, http.StatusInternalServerError, "service unavailable", err)
		return
	}

	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page slug is required"})
		return
	}

	page, err := loadPage(c.Request.Context(), d, slug)
	if err != nil {
		logAndAbort(c, http.StatusInternalServerError, "failed to load page", err)
		return
	}
	if page == nil || (!page.Visible && !page.IsDraft) {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}
	if page.IsDraft && !hasPreviewAccess(c, d) {
		c.JSON(http.StatusForbidden, gin.H{"error": "draft pages require a preview token"})
		return
	}

	rctx := renderContextFor(c, d)
	width := queryWidth(c)

	key := cache.FragmentKey{Width: width, Locale: rctx.ActiveLocale, Mobile: rctx.Mobile}
	if !page.IsDraft {
		if cached, ok := d.Cache.GetFragment(page.ID, key); ok {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(cached))
			return
		}
	}

	generator := html.NewGenerator(rctx)
	out := generator.RenderPage(page, width, models.MeasurementSnapshot{})

	if !page.IsDraft {
		d.Cache.SetFragment(page.ID, key, out)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

// renderRequest is the corrective second-phase body: the client posts back
// what it measured after laying out the provisional render.
type renderRequest struct {
	Snapshot models.MeasurementSnapshot `json:"snapshot"`
	Width    float64                    `json:"width"`
}

// RenderPageHandler serves the corrective second-phase render. Snapshots
// are per-client, so these responses are never fragment-cached.
func RenderPageHandler(c *gin.Context) {
	d, err := getDeps()
	if err != nil {
		logAndAbort(c, http.StatusInternalServerError, "service unavailable", err)
		return
	}

	slug := c.Param("slug")
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid measurement snapshot"})
		return
	}

	page, err := loadPage(c.Request.Context(), d, slug)
	if err != nil {
		logAndAbort(c, http.StatusInternalServerError, "failed to load page", err)
		return
	}
	if page == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
		return
	}
	if page.IsDraft && !hasPreviewAccess(c, d) {
		c.JSON(http.StatusForbidden, gin.H{"error": "draft pages require a preview token"})
		return
	}

	rctx := renderContextFor(c, d)
	generator := html.NewGenerator(rctx)
	out := generator.RenderPage(page, req.Width, req.Snapshot)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}

// ListPagesHandler returns navigation summaries of published pages.
func ListPagesHandler(c *gin.Context) {
	d, err := getDeps()
	if err != nil {
		logAndAbort(c, http.StatusInternalServerError, "service unavailable", err)
		return
	}

	pages, err := d.Pages.ListVisible(c.Request.Context())
	if err != nil {
		logAndAbort(c, http.StatusInternalServerError, "failed to list pages", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

// UpsertPageHandler stores a page document from the builder, invalidates
// the cache, and notifies open preview sessions.
func UpsertPageHandler(c *gin.Context) {
	d, err := getDeps()
	if err != nil {
		logAndAbort(c, http.StatusInternalServerError, "service unavailable", err)
		return
	}
	if !hasPreviewAccess(c, d) {
		c.JSON(http.StatusForbidden, gin.H{"error": "builder token required"})
		return
	}

	var page models.Page
	if err := c.ShouldBindJSON(&page); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page document"})
		return
	}
	if page.ID == "" || page.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page id and slug are required"})
		return
	}

	if err := d.Pages.Upsert(c.Request.Context(), &page); err != nil {
		logAndAbort(c, http.StatusInternalServerError, "failed to store page", err)
		return
	}

	d.Cache.InvalidatePage(page.Slug, page.ID)
	if d.Broadcaster != nil {
		d.Broadcaster.NotifyPageUpdated(page.ID)
	}
	c.JSON(http.StatusOK, gin.H{"id": page.ID, "slug": page.Slug})
}
