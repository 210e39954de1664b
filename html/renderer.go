package html

import (
	"github.com/AlphaHasher/churchlink-go/models"
)

// Renderer dispatches nodes to their per-type rendering logic. It is pure
// over the document: no mutation, no storage or network access.
type Renderer struct {
	ctx *models.RenderContext
}

// NewRenderer creates a renderer for one render pass.
func NewRenderer(ctx *models.RenderContext) *Renderer {
	return &Renderer{ctx: ctx}
}

// Pass carries the per-section ambient state threaded through dispatch:
// the section's current transform, the measurement snapshot for this pass,
// the effective font, and the measured origin of the nearest positioned
// ancestor container (zero at the section root).
type Pass struct {
	Transform  *Transform
	Snapshot   models.MeasurementSnapshot
	SectionID  string
	FontFamily string

	// FlowOnly forces natural document flow (locked layout, or no valid
	// measurement yet).
	FlowOnly bool

	// Origin is the section-space origin for authored grid units: zero at
	// the section root, the container's measured top-left inside a
	// container. Children land relative to the container's real rendered
	// position, not the section origin.
	Origin models.Offset

	// ContextPos is the section-space position of the current CSS
	// positioning context (the section itself, or the nearest positioned
	// wrapper). Emitted left/top values are relative to it.
	ContextPos models.Offset
}

// child returns a copy of the pass with a new unit origin and positioning
// context.
func (p *Pass) child(origin, contextPos models.Offset) *Pass {
	c := *p
	c.Origin = origin
	c.ContextPos = contextPos
	return &c
}

// RenderNode renders one node. Unknown or malformed nodes render nothing;
// a future builder version must never crash the page.
func (r *Renderer) RenderNode(n *models.Node, p *Pass) string {
	if n == nil {
		return ""
	}

	switch n.Type {
	case models.NodeText:
		return r.renderText(n, p)
	case models.NodeButton:
		return r.renderButton(n, p)
	case models.NodeImage:
		return r.renderImage(n, p)
	case models.NodeContainer:
		return r.renderContainer(n, p)
	case models.NodeEventList, models.NodeMap, models.NodePaypal,
		models.NodeServiceTimes, models.NodeMenu, models.NodeContactInfo:
		return r.renderWidget(n, p)
	case models.NodeUnknown:
		return ""
	}
	return ""
}
