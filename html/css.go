package html

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AlphaHasher/churchlink-go/models"
)

// variantBaseRem maps a named text variant to its base font size in rem.
// Rendered size scales with the grid (cellPx/16), not viewport breakpoints.
var variantBaseRem = map[string]float64{
	"h1":    2.25,
	"h2":    1.875,
	"h3":    1.5,
	"lead":  1.25,
	"muted": 0.875,
	"p":     1,
}

// VariantBaseRem returns the base size for a variant, defaulting to p.
func VariantBaseRem(variant string) float64 {
	if size, ok := variantBaseRem[variant]; ok {
		return size
	}
	return variantBaseRem["p"]
}

// VariantTag picks the rendered element for a text variant. lead and muted
// are styling variants of a paragraph.
func VariantTag(variant string) string {
	switch variant {
	case "h1", "h2", "h3":
		return variant
	}
	return "p"
}

// GridFontScale is the type scale factor for a transform; 1 while no
// measurement exists so flowing text keeps its authored size.
func GridFontScale(t *Transform) float64 {
	if t == nil {
		return 1
	}
	return t.CellPx / 16
}

// maxWidthClasses is the fixed enum of allowed container constraints.
var maxWidthClasses = map[string]string{
	"full": "max-w-full",
	"2xl":  "max-w-2xl",
	"xl":   "max-w-xl",
	"lg":   "max-w-lg",
	"md":   "max-w-md",
	"sm":   "max-w-sm",
}

// MaxWidthClass maps a container maxWidth key to its class. Unknown keys
// fall back to full width rather than failing the node.
func MaxWidthClass(key string) string {
	if c, ok := maxWidthClasses[key]; ok {
		return c
	}
	return maxWidthClasses["full"]
}

// allowedPadding is the fixed set of container padding steps.
var allowedPadding = map[int]bool{0: true, 1: true, 2: true, 4: true, 6: true, 8: true, 12: true, 16: true}

// PaddingClass builds a px-N / py-N class from the allowed set; values
// outside it render no padding class.
func PaddingClass(axis string, v *int) string {
	if v == nil || !allowedPadding[*v] {
		return ""
	}
	return fmt.Sprintf("p%s-%d", axis, *v)
}

// FmtFloat formats a bare float for attribute and style values, trimming
// float noise.
func FmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FmtPx formats a pixel value for inline styles, trimming float noise.
func FmtPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// FmtRem formats a rem value for inline styles.
func FmtRem(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "rem"
}

// StyleDecls converts a node style block into inline CSS declarations.
// Missing fields render nothing; there are no required style inputs.
func StyleDecls(s *models.Style) []string {
	if s == nil {
		return nil
	}

	var decls []string
	if s.FontFamily != nil && *s.FontFamily != "" {
		decls = append(decls, "font-family: "+*s.FontFamily)
	}
	if s.Color != nil && *s.Color != "" {
		decls = append(decls, "color: "+*s.Color)
	}
	if s.BackgroundColor != nil && *s.BackgroundColor != "" {
		decls = append(decls, "background-color: "+*s.BackgroundColor)
	}
	if s.Padding != nil {
		p := s.Padding
		if p.Top != nil {
			decls = append(decls, "padding-top: "+FmtPx(*p.Top))
		}
		if p.Right != nil {
			decls = append(decls, "padding-right: "+FmtPx(*p.Right))
		}
		if p.Bottom != nil {
			decls = append(decls, "padding-bottom: "+FmtPx(*p.Bottom))
		}
		if p.Left != nil {
			decls = append(decls, "padding-left: "+FmtPx(*p.Left))
		}
	}
	if s.FontSizeRem != nil {
		decls = append(decls, "font-size: "+FmtRem(*s.FontSizeRem))
	}
	if s.FontWeight != nil && *s.FontWeight != "" {
		decls = append(decls, "font-weight: "+*s.FontWeight)
	}
	if s.TextDecoration != nil && *s.TextDecoration != "" {
		decls = append(decls, "text-decoration: "+*s.TextDecoration)
	}
	if s.BorderRadius != nil && *s.BorderRadius != "" {
		decls = append(decls, "border-radius: "+*s.BorderRadius)
	}
	return decls
}

// ClassName returns the arbitrary class passthrough from a style block.
func ClassName(s *models.Style) string {
	if s == nil || s.ClassName == nil {
		return ""
	}
	return strings.TrimSpace(*s.ClassName)
}

// BackgroundDecls builds the inline declarations for a section background.
// A brightness overlay darkens a background image with a linear-gradient so
// foreground nodes stay readable over photos.
func BackgroundDecls(bg *models.Background) []string {
	if bg == nil {
		return nil
	}

	var decls []string
	if bg.Color != nil && *bg.Color != "" {
		decls = append(decls, "background-color: "+*bg.Color)
	}
	if bg.ImageURL != nil && *bg.ImageURL != "" {
		image := fmt.Sprintf("url('%s')", strings.ReplaceAll(*bg.ImageURL, "'", "%27"))
		if bg.Brightness != nil && *bg.Brightness < 1 {
			shade := 1 - clamp01(*bg.Brightness)
			overlay := fmt.Sprintf("linear-gradient(rgba(0,0,0,%.3f), rgba(0,0,0,%.3f))", shade, shade)
			image = overlay + ", " + image
		}
		decls = append(decls,
			"background-image: "+image,
			"background-size: cover",
			"background-position: center",
		)
	}
	return decls
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
