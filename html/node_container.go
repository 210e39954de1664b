package html

import (
	"strings"

	"github.com/AlphaHasher/churchlink-go/models"
)

// renderContainer renders the one recursive node type. A container is the
// unit origin for its positioned children: they land relative to its real
// rendered top-left, not the section origin. Centering and max-width shift
// that origin in ways grid math does not model, so the true origin comes
// from the client's offset measurement; until it arrives the renderer falls
// back to the best grid-math estimate (provisional phase).
func (r *Renderer) renderContainer(n *models.Node, p *Pass) string {
	props := n.Container
	if props == nil {
		props = &models.ContainerProps{}
	}

	maxWidth := "full"
	if props.MaxWidth != nil && *props.MaxWidth != "" {
		maxWidth = *props.MaxWidth
	}

	classes := []string{MaxWidthClass(maxWidth), "mx-auto"}
	if c := PaddingClass("x", props.PaddingX); c != "" {
		classes = append(classes, c)
	}
	if c := PaddingClass("y", props.PaddingY); c != "" {
		classes = append(classes, c)
	}
	if c := ClassName(n.Style); c != "" {
		classes = append(classes, c)
	}

	// Deliberately not position:relative. A flowing container must not
	// capture its absolutely-positioned children; they resolve against the
	// section (or nearest positioned wrapper) using measured coordinates.
	decls := StyleDecls(n.Style)

	childOrigin, measured := p.Snapshot.OffsetFor(n.ID)
	childContext := p.ContextPos
	if n.Positioned() && p.Transform != nil && !p.FlowOnly {
		// A positioned container's wrapper is itself a positioning context
		// for everything inside it.
		rect := p.Transform.Rect(n.Layout.Units)
		wrapperPos := models.Offset{X: p.Origin.X + rect.X, Y: p.Origin.Y + rect.Y}
		childContext = wrapperPos
		if !measured {
			childOrigin = wrapperPos
		}
	} else if !measured {
		childOrigin = p.ContextPos
	}
	childPass := p.child(childOrigin, childContext)

	var sb strings.Builder
	sb.WriteString(`<div`)
	writeNodeAttrs(&sb, n.ID, strings.Join(classes, " "), decls)
	// data-measure marks the element for the client's offset-measurement
	// pass between the provisional and final render.
	sb.WriteString(` data-measure="container">`)
	sb.WriteString(r.renderChildren(props.Children, childPass))
	sb.WriteString(`</div>`)
	return sb.String()
}
