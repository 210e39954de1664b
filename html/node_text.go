package html

import (
	"strings"

	"github.com/AlphaHasher/churchlink-go/models"
)

// renderText renders a text node. Displayed HTML resolves through the
// locale priority chain and is sanitized before insertion; the visual
// variant picks the tag and the grid-scaled base font size.
func (r *Renderer) renderText(n *models.Node, p *Pass) string {
	content := SanitizeRichText(ResolveHTML(n, r.ctx))
	if strings.TrimSpace(content) == "" {
		return ""
	}

	variant := "p"
	var align string
	if n.Text != nil {
		if n.Text.Variant != nil && *n.Text.Variant != "" {
			variant = *n.Text.Variant
		}
		if n.Text.Align != nil && *n.Text.Align != "" {
			align = *n.Text.Align
		}
	}
	tag := VariantTag(variant)

	var decls []string
	if n.Style == nil || n.Style.FontSizeRem == nil {
		decls = append(decls, "font-size: "+FmtRem(VariantBaseRem(variant)*GridFontScale(p.Transform)))
	}
	if variant == "muted" {
		decls = append(decls, "opacity: 0.7")
	}
	if align != "" {
		decls = append(decls, "text-align: "+align)
	}
	decls = append(decls, StyleDecls(n.Style)...)

	var sb strings.Builder
	sb.WriteString("<")
	sb.WriteString(tag)
	writeNodeAttrs(&sb, n.ID, ClassName(n.Style), decls)
	sb.WriteString(">")
	sb.WriteString(content)
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteString(">")
	return sb.String()
}

// writeNodeAttrs emits the shared id/class/style attribute triple.
func writeNodeAttrs(sb *strings.Builder, id, class string, decls []string) {
	if id != "" {
		sb.WriteString(` id="node-`)
		sb.WriteString(id)
		sb.WriteString(`"`)
	}
	if class != "" {
		sb.WriteString(` class="`)
		sb.WriteString(class)
		sb.WriteString(`"`)
	}
	if len(decls) > 0 {
		sb.WriteString(` style="`)
		sb.WriteString(strings.Join(decls, "; "))
		sb.WriteString(`"`)
	}
}
