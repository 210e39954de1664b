// Package images processes builder image uploads into responsive variants.
package images

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ImageProcessor handles image uploads rooted at the media directory.
type ImageProcessor struct {
	basePath string // points to {mediaRoot}, served under /media
}

// NewImageProcessor creates a new ImageProcessor instance.
func NewImageProcessor(basePath string) *ImageProcessor {
	return &ImageProcessor{basePath: basePath}
}

// ProcessBase64Upload decodes a data-URI upload and writes the original file.
// Returns the full path on disk.
func (p *ImageProcessor) ProcessBase64Upload(data, assetID, subdir string) (string, error) {
	if data == "" {
		return "", fmt.Errorf("empty base64 data")
	}

	ext := extractExtension(data)
	if ext == "" {
		return "", fmt.Errorf("unsupported image format")
	}
	filename := fmt.Sprintf("%s.%s", assetID, ext)

	targetDir := filepath.Join(p.basePath, subdir)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	if strings.Contains(data, "image/svg+xml") {
		return processSVG(data, filename, targetDir)
	}
	return processBinaryImage(data, filename, targetDir)
}

var dataURIPattern = regexp.MustCompile(`^data:image/[a-zA-Z0-9.+-]+;base64,`)

func processBinaryImage(data, filename, targetDir string) (string, error) {
	if !dataURIPattern.MatchString(data) {
		return "", fmt.Errorf("invalid image base64 format")
	}
	decoded, err := base64.StdEncoding.DecodeString(dataURIPattern.ReplaceAllString(data, ""))
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	fullPath := filepath.Join(targetDir, filename)
	if err := os.WriteFile(fullPath, decoded, 0644); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return fullPath, nil
}

func processSVG(data, filename, targetDir string) (string, error) {
	svgPattern := regexp.MustCompile(`^data:image/svg\+xml;base64,`)
	if !svgPattern.MatchString(data) {
		return "", fmt.Errorf("invalid SVG base64 format")
	}
	decoded, err := base64.StdEncoding.DecodeString(svgPattern.ReplaceAllString(data, ""))
	if err != nil {
		return "", fmt.Errorf("failed to decode base64: %w", err)
	}

	fullPath := filepath.Join(targetDir, filename)
	if err := os.WriteFile(fullPath, decoded, 0644); err != nil {
		return "", fmt.Errorf("failed to write SVG file: %w", err)
	}
	return fullPath, nil
}

// extractExtension auto-detects file extension from the data-URI MIME type.
func extractExtension(data string) string {
	switch {
	case strings.Contains(data, "data:image/svg+xml"):
		return "svg"
	case strings.Contains(data, "data:image/png"):
		return "png"
	case strings.Contains(data, "data:image/jpeg"), strings.Contains(data, "data:image/jpg"):
		return "jpg"
	case strings.Contains(data, "data:image/webp"):
		return "webp"
	case strings.Contains(data, "data:image/"):
		return "png"
	}
	return ""
}
