package html

import (
	"github.com/AlphaHasher/churchlink-go/models"
)

// Locale resolution follows a fixed three-tier priority for any piece of
// authored content: an explicit per-locale override on the node wins over
// the translated base text, which wins over the raw base text.

// ResolveHTML returns the display HTML for a text node (unsanitized).
func ResolveHTML(n *models.Node, ctx *models.RenderContext) string {
	if ov, ok := n.I18n[ctx.ActiveLocale]; ok && ov.HTML != nil {
		return *ov.HTML
	}
	base := ""
	if n.Text != nil {
		base = n.Text.HTML
	}
	return localize(base, ctx)
}

// ResolveLabel returns the display label for a button node.
func ResolveLabel(n *models.Node, ctx *models.RenderContext) string {
	if ov, ok := n.I18n[ctx.ActiveLocale]; ok && ov.Label != nil {
		return *ov.Label
	}
	base := ""
	if n.Button != nil {
		base = n.Button.Label
	}
	return localize(base, ctx)
}

// ResolveAlt returns the alt text for an image node.
func ResolveAlt(n *models.Node, ctx *models.RenderContext) string {
	if ov, ok := n.I18n[ctx.ActiveLocale]; ok && ov.Alt != nil {
		return *ov.Alt
	}
	base := ""
	if n.Image != nil && n.Image.Alt != nil {
		base = *n.Image.Alt
	}
	return localize(base, ctx)
}

func localize(base string, ctx *models.RenderContext) string {
	if base == "" || ctx.Localize == nil {
		return base
	}
	return ctx.Localize(base)
}
