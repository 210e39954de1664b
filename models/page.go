// Package models defines the page document tree consumed by the HTML renderer.
package models

// Aspect is a nominal aspect ratio expressed as numerator/denominator.
type Aspect struct {
	Num int `json:"num"`
	Den int `json:"den"`
}

// GridSpec defines a section's virtual coordinate space.
type GridSpec struct {
	Cols   int    `json:"cols"`
	Aspect Aspect `json:"aspect"`
}

// Background describes a section background: flat color, image, or both with
// a brightness overlay.
type Background struct {
	Color      *string  `json:"color,omitempty"`
	ImageURL   *string  `json:"imageUrl,omitempty"`
	Brightness *float64 `json:"brightness,omitempty"`
}

// Section is a vertical slice of a page owning its own grid transform.
type Section struct {
	ID         string      `json:"id"`
	Nodes      []*Node     `json:"nodes"`
	Background *Background `json:"background,omitempty"`
	Grid       GridSpec    `json:"grid"`

	// LockedHeightVH, when set, renders the section as natural document flow
	// with a fixed height expressed as percent of viewport height.
	LockedHeightVH *float64 `json:"lockedHeightVh,omitempty"`
	FontFamily     *string  `json:"fontFamily,omitempty"`
}

// PageStyle holds page-wide style tokens.
type PageStyle struct {
	FontFamily   string `json:"fontFamily,omitempty"`
	FontFallback string `json:"fontFallback,omitempty"`
}

// Page is the top-level document. Created by the page builder; the renderer
// only reads it. Immutable for the duration of a render pass.
type Page struct {
	ID      string `json:"id"`
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Visible bool   `json:"visible"`
	IsDraft bool   `json:"isDraft"`

	Sections []*Section `json:"sections"`

	// MobileSections, when non-empty, replaces Sections verbatim for narrow
	// viewports. Otherwise the desktop sections are reused.
	MobileSections []*Section `json:"mobileSections,omitempty"`

	Style PageStyle `json:"style,omitempty"`
}

// SectionsFor returns the section list for the requested surface.
func (p *Page) SectionsFor(mobile bool) []*Section {
	if mobile && len(p.MobileSections) > 0 {
		return p.MobileSections
	}
	return p.Sections
}

// FontStack builds the page-wide CSS font-family value from the style tokens.
func (p *Page) FontStack() string {
	switch {
	case p.Style.FontFamily != "" && p.Style.FontFallback != "":
		return p.Style.FontFamily + ", " + p.Style.FontFallback
	case p.Style.FontFamily != "":
		return p.Style.FontFamily
	case p.Style.FontFallback != "":
		return p.Style.FontFallback
	default:
		return "sans-serif"
	}
}
