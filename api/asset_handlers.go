package api

import (
	"net/http"
	"strings"

	"github.com/AlphaHasher/churchlink-go/store"
	"github.com/AlphaHasher/churchlink-go/utils"
	"github.com/AlphaHasher/churchlink-go/utils/images"
	"github.com/gin-gonic/gin"
)

// assetUploadRequest carries a base64 data-URI image from the builder.
type assetUploadRequest struct {
	Data     string `json:"data" binding:"required"`
	Filename string `json:"filename"`
	Kind     string `json:"kind"` // "hero" or "content"
}

// UploadAssetHandler stores an uploaded image, generates responsive WebP
// variants, and records the asset so image nodes can reference it by ID.
func UploadAssetHandler(c *gin.Context) {
	d, err := getDeps()
	if err != nil {
		logAndAbort(c, http.StatusInternalServerError, "service unavailable", err)
		return
	}
	if !hasPreviewAccess(c, d) {
		c.JSON(http.StatusForbidden, gin.H{"error": "builder token required"})
		return
	}

	var req assetUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image data is required"})
		return
	}

	assetID := utils.GenerateULID()
	sourcePath, err := d.Processor.ProcessBase64Upload(req.Data, assetID, "images/src")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset := &store.Asset{ID: assetID, Filename: req.Filename}

	// SVGs are served as uploaded; raster formats get responsive variants.
	if strings.HasSuffix(sourcePath, ".svg") {
		asset.URL = "/media/images/src/" + assetID + ".svg"
	} else {
		config := images.ContentImageConfig
		if req.Kind == "hero" {
			config = images.HeroImageConfig
		}
		result, err := d.Processor.ProcessMultiSize(sourcePath, assetID, "images", config)
		if err != nil {
			logAndAbort(c, http.StatusInternalServerError, "failed to process image", err)
			return
		}
		asset.URL = result.MainURL
		asset.Srcset = result.SrcSet
		asset.Width = result.Width
		asset.Height = result.Height
	}

	if err := d.Assets.Save(c.Request.Context(), asset); err != nil {
		logAndAbort(c, http.StatusInternalServerError, "failed to record asset", err)
		return
	}
	c.JSON(http.StatusOK, asset)
}

// GetAssetHandler returns a stored asset record.
func GetAssetHandler(c *gin.Context) {
	d, err := getDeps()
	if err != nil {
		logAndAbort(c, http.StatusInternalServerError, "service unavailable", err)
		return
	}

	asset, err := d.Assets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		logAndAbort(c, http.StatusInternalServerError, "failed to load asset", err)
		return
	}
	if asset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "asset not found"})
		return
	}
	c.JSON(http.StatusOK, asset)
}
