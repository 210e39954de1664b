package html

import (
	"strconv"
	"strings"

	"github.com/AlphaHasher/churchlink-go/models"
)

// LayoutState is the measurement lifecycle of a section within a pass:
// no valid width yet, width measured but container origins not, or fully
// measured. It is emitted as a data attribute so the measuring client knows
// which phase it is looking at.
type LayoutState string

const (
	LayoutUnmeasured LayoutState = "unmeasured"
	LayoutMeasuring  LayoutState = "measuring"
	LayoutMeasured   LayoutState = "measured"
)

func layoutStateFor(tf *Transform, snap models.MeasurementSnapshot) LayoutState {
	switch {
	case tf == nil:
		return LayoutUnmeasured
	case len(snap.ContainerOffsets) == 0:
		return LayoutMeasuring
	default:
		return LayoutMeasured
	}
}

// RenderSection composites one section: derive the transform for the
// measured width, emit the section shell with its background and computed
// height, then place every child node.
func (r *Renderer) RenderSection(sec *models.Section, fallbackWidth float64, snap models.MeasurementSnapshot, pageFont string) string {
	if sec == nil {
		return ""
	}

	width := snap.WidthFor(sec.ID, fallbackWidth)
	tf := NewTransform(width, sec.Grid.Cols, sec.Grid.Aspect)

	font := pageFont
	if sec.FontFamily != nil && *sec.FontFamily != "" {
		font = *sec.FontFamily
	}

	locked := sec.LockedHeightVH != nil || r.ctx.ForceFlowLayout
	pass := &Pass{
		Transform:  tf,
		Snapshot:   snap,
		SectionID:  sec.ID,
		FontFamily: font,
		FlowOnly:   locked || tf == nil,
	}

	decls := []string{"position: relative", "width: 100%"}
	if font != "" {
		decls = append(decls, "font-family: "+font)
	}
	decls = append(decls, BackgroundDecls(sec.Background)...)
	switch {
	case sec.LockedHeightVH != nil:
		decls = append(decls, "height: "+FmtFloat(*sec.LockedHeightVH)+"vh")
	case tf != nil && !locked:
		// Height derives from measured width and nominal aspect, so the
		// coordinate space scales uniformly on resize.
		decls = append(decls, "height: "+FmtPx(tf.VirtualHeight))
	}

	var sb strings.Builder
	sb.WriteString(`<section id="section-`)
	sb.WriteString(sec.ID)
	sb.WriteString(`" data-grid-cols="`)
	sb.WriteString(strconv.Itoa(sec.Grid.Cols))
	sb.WriteString(`" data-layout-state="`)
	sb.WriteString(string(layoutStateFor(tf, snap)))
	sb.WriteString(`" style="`)
	sb.WriteString(strings.Join(decls, "; "))
	sb.WriteString(`">`)
	sb.WriteString(r.renderChildren(sec.Nodes, pass))
	sb.WriteString(`</section>`)
	return sb.String()
}

// renderChildren places a node list: positioned nodes become absolutely
// positioned boxes against the current origin, flowing nodes render in
// array order at their natural width. Shared by sections and containers.
func (r *Renderer) renderChildren(nodes []*models.Node, p *Pass) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(r.renderPlaced(n, p))
	}
	return sb.String()
}

// renderPlaced wraps one node in its placement box.
func (r *Renderer) renderPlaced(n *models.Node, p *Pass) string {
	inner := r.RenderNode(n, p)
	if inner == "" {
		return ""
	}

	if p.FlowOnly || p.Transform == nil || !n.Positioned() {
		// Flowing: natural fit-content width, except containers which
		// manage their own width constraint.
		if n.Type == models.NodeContainer {
			return inner
		}
		return `<div style="width: fit-content">` + inner + `</div>`
	}

	rect := p.Transform.Rect(n.Layout.Units)
	decls := []string{
		"position: absolute",
		"left: " + FmtPx(p.Origin.X+rect.X-p.ContextPos.X),
		"top: " + FmtPx(p.Origin.Y+rect.Y-p.ContextPos.Y),
	}
	switch n.SizeMode {
	case models.SizeNatural:
	case models.SizeWidthOnly:
		if rect.HasW {
			decls = append(decls, "width: "+FmtPx(rect.W))
		}
	default:
		if rect.HasW {
			decls = append(decls, "width: "+FmtPx(rect.W))
		}
		if rect.HasH {
			decls = append(decls, "height: "+FmtPx(rect.H))
		}
	}
	if clip := overflowFor(n); clip != "" {
		decls = append(decls, clip)
	}

	return `<div style="` + strings.Join(decls, "; ") + `">` + inner + `</div>`
}

// overflowFor clips positioned image boxes to their bounds, except when a
// drop-shadow filter is present: clipping would cut off the shadow.
func overflowFor(n *models.Node) string {
	if n.Type != models.NodeImage {
		return ""
	}
	if n.Image != nil && n.Image.DropShadow != nil && *n.Image.DropShadow != "" {
		return "overflow: visible"
	}
	return "overflow: hidden"
}
