package html

import (
	stdhtml "html"
	"strings"

	"github.com/AlphaHasher/churchlink-go/models"
)

// renderButton renders a button node: an anchor when an href is present,
// otherwise an inert button shell. Click behavior belongs to the embedding
// client, not to this renderer.
func (r *Renderer) renderButton(n *models.Node, p *Pass) string {
	label := stdhtml.EscapeString(ResolveLabel(n, r.ctx))

	var href, target string
	if n.Button != nil {
		if n.Button.Href != nil {
			href = *n.Button.Href
		}
		if n.Button.Target != nil {
			target = *n.Button.Target
		}
	}

	decls := append([]string{"display: inline-block"}, StyleDecls(n.Style)...)

	var sb strings.Builder
	if href != "" {
		sb.WriteString(`<a`)
		writeNodeAttrs(&sb, n.ID, ClassName(n.Style), decls)
		sb.WriteString(` href="`)
		sb.WriteString(stdhtml.EscapeString(href))
		sb.WriteString(`"`)
		if target != "" {
			sb.WriteString(` target="`)
			sb.WriteString(stdhtml.EscapeString(target))
			sb.WriteString(`"`)
			if target == "_blank" {
				sb.WriteString(` rel="noopener"`)
			}
		}
		sb.WriteString(`>`)
		sb.WriteString(label)
		sb.WriteString(`</a>`)
		return sb.String()
	}

	sb.WriteString(`<button type="button"`)
	writeNodeAttrs(&sb, n.ID, ClassName(n.Style), decls)
	sb.WriteString(` onclick="return false;">`)
	sb.WriteString(label)
	sb.WriteString(`</button>`)
	return sb.String()
}
