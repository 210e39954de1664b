package models

import (
	"encoding/json"
)

// NodeType discriminates the node union. The renderer switches exhaustively
// over these; anything else survives deserialization as NodeUnknown and
// renders as a no-op.
type NodeType string

const (
	NodeText         NodeType = "text"
	NodeButton       NodeType = "button"
	NodeImage        NodeType = "image"
	NodeContainer    NodeType = "container"
	NodeEventList    NodeType = "eventList"
	NodeMap          NodeType = "map"
	NodePaypal       NodeType = "paypal"
	NodeServiceTimes NodeType = "serviceTimes"
	NodeMenu         NodeType = "menu"
	NodeContactInfo  NodeType = "contactInfo"
	NodeUnknown      NodeType = ""
)

// SizeMode governs whether the grid transform's computed height is applied
// to a positioned node.
type SizeMode string

const (
	SizeFull      SizeMode = "full"      // apply width and height
	SizeWidthOnly SizeMode = "widthOnly" // apply width, content sizes height
	SizeNatural   SizeMode = "natural"   // node sizes itself entirely
)

// Units is a position/size in grid units. Wu/Hu are optional.
type Units struct {
	Xu float64  `json:"xu"`
	Yu float64  `json:"yu"`
	Wu *float64 `json:"wu,omitempty"`
	Hu *float64 `json:"hu,omitempty"`
}

// Layout carries placement data. A nil Units means the node flows in normal
// document order instead of being absolutely positioned.
type Layout struct {
	Units *Units `json:"units,omitempty"`
}

// Padding is per-side padding in pixels.
type Padding struct {
	Top    *float64 `json:"top,omitempty"`
	Right  *float64 `json:"right,omitempty"`
	Bottom *float64 `json:"bottom,omitempty"`
	Left   *float64 `json:"left,omitempty"`
}

// Style is the optional per-node style block.
type Style struct {
	FontFamily      *string  `json:"fontFamily,omitempty"`
	Color           *string  `json:"color,omitempty"`
	BackgroundColor *string  `json:"backgroundColor,omitempty"`
	Padding         *Padding `json:"padding,omitempty"`
	FontSizeRem     *float64 `json:"fontSizeRem,omitempty"`
	FontWeight      *string  `json:"fontWeight,omitempty"`
	TextDecoration  *string  `json:"textDecoration,omitempty"`
	BorderRadius    *string  `json:"borderRadius,omitempty"`
	ClassName       *string  `json:"className,omitempty"`
}

// I18nOverride holds per-locale content overrides authored in the builder.
// An explicit override wins over the localized-translation fallback.
type I18nOverride struct {
	HTML  *string `json:"html,omitempty"`
	Label *string `json:"label,omitempty"`
	Alt   *string `json:"alt,omitempty"`
}

// TextProps is the payload for text nodes.
type TextProps struct {
	HTML    string  `json:"html"`
	Align   *string `json:"align,omitempty"`
	Variant *string `json:"variant,omitempty"` // h1 | h2 | h3 | lead | muted | p
}

// ButtonProps is the payload for button nodes.
type ButtonProps struct {
	Label  string  `json:"label"`
	Href   *string `json:"href,omitempty"`
	Target *string `json:"target,omitempty"`
}

// ImageProps is the payload for image nodes. AssetID resolves through the
// external asset-URL collaborator.
type ImageProps struct {
	AssetID    string  `json:"assetId"`
	Alt        *string `json:"alt,omitempty"`
	ObjectFit  *string `json:"objectFit,omitempty"`
	DropShadow *string `json:"dropShadow,omitempty"`
}

// ContainerProps is the payload for container nodes, the one recursive case.
type ContainerProps struct {
	MaxWidth *string `json:"maxWidth,omitempty"` // full | 2xl | xl | lg | md | sm
	PaddingX *int    `json:"paddingX,omitempty"`
	PaddingY *int    `json:"paddingY,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Node is the discriminated union over all renderable node types. Exactly
// one of the typed payloads is set, matching Type; widget nodes carry their
// opaque payload in Widget.
type Node struct {
	ID       string
	Type     NodeType
	RawType  string // preserved verbatim for unknown types
	Layout   *Layout
	Style    *Style
	SizeMode SizeMode
	I18n     map[string]I18nOverride

	Text      *TextProps
	Button    *ButtonProps
	Image     *ImageProps
	Container *ContainerProps

	// Widget is the opaque prop payload passed through to the site-section
	// collaborator for eventList, map, paypal, serviceTimes, menu and
	// contactInfo nodes.
	Widget map[string]any
}

// Positioned reports whether the node carries grid-unit placement.
func (n *Node) Positioned() bool {
	return n.Layout != nil && n.Layout.Units != nil
}

// IsWidget reports whether the node delegates to a site-section collaborator.
func (n *Node) IsWidget() bool {
	switch n.Type {
	case NodeEventList, NodeMap, NodePaypal, NodeServiceTimes, NodeMenu, NodeContactInfo:
		return true
	}
	return false
}

// nodeJSON is the stored wire shape of a node.
type nodeJSON struct {
	ID       string                  `json:"id"`
	Type     string                  `json:"type"`
	Layout   *Layout                 `json:"layout,omitempty"`
	Style    *Style                  `json:"style,omitempty"`
	SizeMode string                  `json:"sizeMode,omitempty"`
	I18n     map[string]I18nOverride `json:"i18n,omitempty"`
	Props    json.RawMessage         `json:"props,omitempty"`
}

// UnmarshalJSON decodes a stored node into the tagged union. Unrecognized
// types are kept as NodeUnknown so future builder versions degrade silently
// instead of failing the whole page.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw nodeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	n.ID = raw.ID
	n.RawType = raw.Type
	n.Layout = raw.Layout
	n.Style = raw.Style
	n.I18n = raw.I18n

	switch NodeType(raw.Type) {
	case NodeText, NodeButton, NodeImage, NodeContainer,
		NodeEventList, NodeMap, NodePaypal, NodeServiceTimes, NodeMenu, NodeContactInfo:
		n.Type = NodeType(raw.Type)
	default:
		n.Type = NodeUnknown
		return nil
	}

	n.SizeMode = resolveSizeMode(raw.SizeMode, n.Type)

	if len(raw.Props) == 0 {
		// Missing props render with defaults; never an error.
		if n.Type == NodeContainer {
			n.Container = &ContainerProps{}
		}
		return nil
	}

	switch n.Type {
	case NodeText:
		n.Text = &TextProps{}
		return json.Unmarshal(raw.Props, n.Text)
	case NodeButton:
		n.Button = &ButtonProps{}
		return json.Unmarshal(raw.Props, n.Button)
	case NodeImage:
		n.Image = &ImageProps{}
		return json.Unmarshal(raw.Props, n.Image)
	case NodeContainer:
		n.Container = &ContainerProps{}
		return json.Unmarshal(raw.Props, n.Container)
	default:
		n.Widget = map[string]any{}
		return json.Unmarshal(raw.Props, &n.Widget)
	}
}

// MarshalJSON re-emits the stored wire shape so documents round-trip through
// the store unchanged.
func (n *Node) MarshalJSON() ([]byte, error) {
	raw := nodeJSON{
		ID:     n.ID,
		Type:   n.RawType,
		Layout: n.Layout,
		Style:  n.Style,
		I18n:   n.I18n,
	}
	if raw.Type == "" {
		raw.Type = string(n.Type)
	}
	if n.SizeMode != "" && n.SizeMode != defaultSizeMode(n.Type) {
		raw.SizeMode = string(n.SizeMode)
	}

	var props any
	switch {
	case n.Text != nil:
		props = n.Text
	case n.Button != nil:
		props = n.Button
	case n.Image != nil:
		props = n.Image
	case n.Container != nil:
		props = n.Container
	case n.Widget != nil:
		props = n.Widget
	}
	if props != nil {
		encoded, err := json.Marshal(props)
		if err != nil {
			return nil, err
		}
		raw.Props = encoded
	}

	return json.Marshal(raw)
}

func resolveSizeMode(stored string, t NodeType) SizeMode {
	switch SizeMode(stored) {
	case SizeFull, SizeWidthOnly, SizeNatural:
		return SizeMode(stored)
	}
	return defaultSizeMode(t)
}

// defaultSizeMode: map and paypal embed content with intrinsic height, so the
// transform's computed height is ignored for them unless explicitly set.
func defaultSizeMode(t NodeType) SizeMode {
	switch t {
	case NodeMap, NodePaypal:
		return SizeWidthOnly
	}
	return SizeFull
}
