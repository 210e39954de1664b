package api

import (
	"net/http"

	"github.com/AlphaHasher/churchlink-go/cache"
	"github.com/AlphaHasher/churchlink-go/html"
	"github.com/AlphaHasher/churchlink-go/models"
	"github.com/gin-gonic/gin"
)

// GetSectionFragmentHandler returns the HTML fragment for one section of a
// page, for the builder's incremental editing surface.
func GetSectionFragmentHandler(c *gin.Context) {
	d, err := getDeps()
	if err != nil {
		logAndAbort(c, http.StatusInternalServerError, "service unavailable", err)
		return
	}

	sectionID := c.Param("id")
	if sectionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "section ID is required"})
		return
	}
	slug := c.Query("page")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page query parameter is required"})
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
	width := queryWidth(c)

	key := cache.FragmentKey{SectionID: sectionID, Width: width, Locale: rctx.ActiveLocale, Mobile: rctx.Mobile}
	if !page.IsDraft {
		if cached, ok := d.Cache.GetFragment(page.ID, key); ok {
			c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(cached))
			return
		}
	}

	generator := html.NewGenerator(rctx)
	out := generator.RenderSectionFragment(page, sectionID, width, models.MeasurementSnapshot{})
	if out == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "section not found"})
		return
	}

	if !page.IsDraft {
		d.Cache.SetFragment(page.ID, key, out)
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(out))
}
