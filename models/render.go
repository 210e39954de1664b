package models

// Localizer is the external translation collaborator. It maps base text to
// the active locale; the renderer only honors the override → translated →
// base priority order and never implements lookup itself.
type Localizer func(text string) string

// ImageSource is a resolved image reference: the main URL plus an optional
// srcset listing responsive variants.
type ImageSource struct {
	URL    string
	Srcset string
}

// AssetResolver is the external "sources for stored asset id" collaborator
// used by image nodes.
type AssetResolver func(assetID string) ImageSource

// Offset is a measured top-left position in pixels.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MeasurementSnapshot is the immutable set of client measurements consumed
// by one render pass. Widths are measured section content-box widths;
// ContainerOffsets are measured container origins relative to their owning
// section's content box. Both are recorded post-layout in the browser and
// posted back for the corrective second phase.
type MeasurementSnapshot struct {
	Widths           map[string]float64 `json:"widths,omitempty"`
	ContainerOffsets map[string]Offset  `json:"containerOffsets,omitempty"`
}

// WidthFor returns the measured width for a section, falling back to the
// request-level width when the section was not individually measured.
func (s MeasurementSnapshot) WidthFor(sectionID string, fallback float64) float64 {
	if w, ok := s.Widths[sectionID]; ok {
		return w
	}
	return fallback
}

// OffsetFor returns the measured origin of a container, zero when unmeasured.
func (s MeasurementSnapshot) OffsetFor(containerID string) (Offset, bool) {
	off, ok := s.ContainerOffsets[containerID]
	return off, ok
}

// WidgetBox carries the only concerns the renderer shares with an embedded
// site-section widget: its allocated box and pass-through visuals.
type WidgetBox struct {
	Width        float64
	Height       float64
	HasWidth     bool
	HasHeight    bool
	Scale        float64
	Background   string
	BorderRadius string
	ClassName    string
}

// SiteSectionRenderer is the contract with the independently specified
// embedded widgets. Implementations are opaque to the rendering core; the
// default shells live in html/widgets.
type SiteSectionRenderer interface {
	RenderEventList(props map[string]any, box WidgetBox) string
	RenderMap(props map[string]any, box WidgetBox) string
	RenderPaypal(props map[string]any, box WidgetBox) string
	RenderServiceTimes(props map[string]any, box WidgetBox) string
	RenderMenu(props map[string]any, box WidgetBox) string
	RenderContactInfo(props map[string]any, box WidgetBox) string
}

// RenderContext provides the ambient inputs for one render pass. It is
// never mutated by the renderer.
type RenderContext struct {
	ActiveLocale  string
	DefaultLocale string
	Localize      Localizer
	ResolveAsset  AssetResolver

	// SiteSections overrides the built-in widget shells when set.
	SiteSections SiteSectionRenderer

	// Mobile selects the page's mobile section list when present.
	Mobile bool

	// ForceFlowLayout renders every section as natural document flow,
	// ignoring grid placement. Used for locked layouts.
	ForceFlowLayout bool
}
