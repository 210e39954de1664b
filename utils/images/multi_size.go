package images

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// MultiSizeConfig holds settings for responsive variant generation.
type MultiSizeConfig struct {
	Widths  []int
	Quality int
}

// MultiSizeResult holds the generated variants. MainURL is the widest
// variant; SrcSet is ready for an img srcset attribute.
type MultiSizeResult struct {
	MainURL string
	SrcSet  string
	Paths   []string
	Width   int
	Height  int
}

var (
	// HeroImageConfig covers full-width section backgrounds.
	HeroImageConfig = MultiSizeConfig{
		Widths:  []int{1920, 1080, 600},
		Quality: 85,
	}
	// ContentImageConfig covers in-grid image nodes.
	ContentImageConfig = MultiSizeConfig{
		Widths:  []int{1080, 600, 400},
		Quality: 85,
	}
)

// ProcessMultiSize generates WebP variants of a source image at each
// configured width. SVG sources are left untouched.
func (p *ImageProcessor) ProcessMultiSize(sourcePath, assetID, subdir string, config MultiSizeConfig) (*MultiSizeResult, error) {
	src, err := imaging.Open(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open source image: %w", err)
	}

	targetDir := filepath.Join(p.basePath, subdir)
	if err := os.MkdirAll(targetDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	bounds := src.Bounds()
	result := MultiSizeResult{Width: bounds.Dx(), Height: bounds.Dy()}
	var srcSetParts []string

	for _, width := range config.Widths {
		resized := imaging.Resize(src, width, 0, imaging.Lanczos)
		filename := fmt.Sprintf("%s_%dpx.webp", assetID, width)
		targetPath := filepath.Join(targetDir, filename)

		if err := webp.Save(targetPath, resized, &webp.Options{Quality: float32(config.Quality)}); err != nil {
			for _, made := range result.Paths {
				os.Remove(made)
			}
			return nil, fmt.Errorf("failed to save %dpx variant: %w", width, err)
		}

		result.Paths = append(result.Paths, targetPath)
		url := strings.ReplaceAll(filepath.Join("/media", subdir, filename), "\\", "/")
		srcSetParts = append(srcSetParts, fmt.Sprintf("%s %dw", url, width))
		if result.MainURL == "" {
			result.MainURL = url
		}
	}

	result.SrcSet = strings.Join(srcSetParts, ", ")
	return &result, nil
}
