package html

import (
	"html/template"
	"log"
	"strings"

	"github.com/AlphaHasher/churchlink-go/models"
)

// nodeImageTmpl is a pre-parsed template for the <img> tag. html/template
// escapes every attribute, so resolved URLs and alt text cannot break out.
var nodeImageTmpl = template.Must(template.New("nodeImage").Parse(
	`<img{{if .ID}} id="node-{{.ID}}"{{end}} src="{{.Src}}"{{if .Srcset}} srcset="{{.Srcset}}" sizes="{{.Sizes}}"{{end}} alt="{{.Alt}}"{{if .Class}} class="{{.Class}}"{{end}}{{if .Style}} style="{{.Style}}"{{end}} loading="lazy" />`,
))

type nodeImageData struct {
	ID     string
	Src    string
	Srcset string
	Sizes  string
	Alt    string
	Class  string
	Style  template.CSS
}

// renderImage renders an image node. The src resolves through the external
// asset collaborator; alt text follows the locale priority chain. A node
// with no resolvable source renders nothing.
func (r *Renderer) renderImage(n *models.Node, p *Pass) string {
	if n.Image == nil || n.Image.AssetID == "" {
		return ""
	}

	source := models.ImageSource{URL: n.Image.AssetID}
	if r.ctx.ResolveAsset != nil {
		source = r.ctx.ResolveAsset(n.Image.AssetID)
	}
	if source.URL == "" {
		return ""
	}

	var decls []string
	if n.Positioned() && p.Transform != nil && !p.FlowOnly {
		// Fill the placement box; object-fit decides how.
		decls = append(decls, "width: 100%", "height: 100%")
	}
	if n.Image.ObjectFit != nil && *n.Image.ObjectFit != "" {
		decls = append(decls, "object-fit: "+*n.Image.ObjectFit)
	}
	if n.Image.DropShadow != nil && *n.Image.DropShadow != "" {
		decls = append(decls, "filter: drop-shadow("+*n.Image.DropShadow+")")
	}
	decls = append(decls, StyleDecls(n.Style)...)

	// With responsive variants, sizes tells the browser the rendered width:
	// the placement box when grid-positioned, the viewport otherwise.
	sizes := ""
	if source.Srcset != "" {
		sizes = "100vw"
		if n.Positioned() && p.Transform != nil && !p.FlowOnly {
			rect := p.Transform.Rect(n.Layout.Units)
			if rect.W > 0 {
				sizes = FmtPx(rect.W)
			}
		}
	}

	data := nodeImageData{
		ID:     n.ID,
		Src:    source.URL,
		Srcset: source.Srcset,
		Sizes:  sizes,
		Alt:    ResolveAlt(n, r.ctx),
		Class:  ClassName(n.Style),
		Style:  template.CSS(strings.Join(decls, "; ")),
	}

	var sb strings.Builder
	if err := nodeImageTmpl.Execute(&sb, data); err != nil {
		log.Printf("ERROR: failed to execute image template for node %s: %v", n.ID, err)
		return ""
	}
	return sb.String()
}
