package html

import (
	"github.com/AlphaHasher/churchlink-go/html/widgets"
	"github.com/AlphaHasher/churchlink-go/models"
)

// paypalBaseSize is the intrinsic edge length of the embedded PayPal box in
// px; its allocated box scales it proportionally.
const paypalBaseSize = 200.0

// paypalMinScale avoids degenerate rendering in tiny allocations.
const paypalMinScale = 0.2

// renderWidget hands an embedded site-section node to its collaborator,
// passing through only layout and sizing concerns.
func (r *Renderer) renderWidget(n *models.Node, p *Pass) string {
	box := models.WidgetBox{Scale: 1, ClassName: ClassName(n.Style)}

	if n.Positioned() && p.Transform != nil && !p.FlowOnly {
		rect := p.Transform.Rect(n.Layout.Units)
		if rect.HasW {
			box.Width = rect.W
			box.HasWidth = true
		}
		if rect.HasH && n.SizeMode == models.SizeFull {
			box.Height = rect.H
			box.HasHeight = true
		}
	}
	if n.Style != nil {
		if n.Style.BackgroundColor != nil {
			box.Background = *n.Style.BackgroundColor
		}
		if n.Style.BorderRadius != nil {
			box.BorderRadius = *n.Style.BorderRadius
		}
	}
	if n.Type == models.NodePaypal {
		box.Scale = paypalScale(box)
	}

	sections := r.ctx.SiteSections
	if sections == nil {
		sections = widgets.Default{}
	}

	switch n.Type {
	case models.NodeEventList:
		return sections.RenderEventList(n.Widget, box)
	case models.NodeMap:
		return sections.RenderMap(n.Widget, box)
	case models.NodePaypal:
		return sections.RenderPaypal(n.Widget, box)
	case models.NodeServiceTimes:
		return sections.RenderServiceTimes(n.Widget, box)
	case models.NodeMenu:
		return sections.RenderMenu(n.Widget, box)
	case models.NodeContactInfo:
		return sections.RenderContactInfo(n.Widget, box)
	}
	return ""
}

// paypalScale fits the intrinsic 200x200 box into the allocation,
// proportionally, clamped to the minimum scale.
func paypalScale(box models.WidgetBox) float64 {
	scale := 1.0
	switch {
	case box.HasWidth && box.HasHeight:
		scale = box.Width / paypalBaseSize
		if h := box.Height / paypalBaseSize; h < scale {
			scale = h
		}
	case box.HasWidth:
		scale = box.Width / paypalBaseSize
	case box.HasHeight:
		scale = box.Height / paypalBaseSize
	}
	if scale < paypalMinScale {
		scale = paypalMinScale
	}
	return scale
}
