package html

import (
	"strings"

	"github.com/AlphaHasher/churchlink-go/models"
)

// Generator is the top-level entry point for page rendering: it picks the
// section list for the requested surface, establishes the page-wide font,
// and composites sections in order.
type Generator struct {
	ctx      *models.RenderContext
	renderer *Renderer
}

// NewGenerator creates a generator for one render pass.
func NewGenerator(ctx *models.RenderContext) *Generator {
	return &Generator{
		ctx:      ctx,
		renderer: NewRenderer(ctx),
	}
}

// RenderPage renders a full page at the given fallback width using the
// supplied measurement snapshot. An empty snapshot is the provisional
// first phase; the client posts measured container offsets back for the
// corrective second phase.
func (g *Generator) RenderPage(page *models.Page, width float64, snap models.MeasurementSnapshot) string {
	if page == nil {
		return ""
	}

	sections := page.SectionsFor(g.ctx.Mobile)
	font := page.FontStack()

	var sb strings.Builder
	sb.WriteString(`<div id="page-`)
	sb.WriteString(page.ID)
	sb.WriteString(`" style="font-family: `)
	sb.WriteString(font)
	sb.WriteString(`">`)
	for _, sec := range sections {
		sb.WriteString(g.renderer.RenderSection(sec, width, snap, font))
	}
	sb.WriteString(`</div>`)
	return sb.String()
}

// RenderSectionFragment renders a single section by id, for fragment
// requests from the builder's editing surface. Returns "" when the page has
// no such section.
func (g *Generator) RenderSectionFragment(page *models.Page, sectionID string, width float64, snap models.MeasurementSnapshot) string {
	if page == nil {
		return ""
	}

	for _, sec := range page.SectionsFor(g.ctx.Mobile) {
		if sec.ID == sectionID {
			return g.renderer.RenderSection(sec, width, snap, page.FontStack())
		}
	}
	return ""
}
