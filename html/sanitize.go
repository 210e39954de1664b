package html

import (
	"github.com/microcosm-cc/bluemonday"
)

// richTextPolicy is the fixed safelist for editor-authored rich text.
// Builder content is semi-trusted: formatting survives, script vectors do
// not. Sanitizing already-sanitized output is a no-op.
var richTextPolicy = newRichTextPolicy()

func newRichTextPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(
		"p", "h1", "h2", "h3", "h4", "h5", "h6",
		"strong", "em", "u", "br",
		"ul", "ol", "li", "a",
	)
	p.AllowAttrs("href", "target", "rel").OnElements("a")
	p.AllowStandardURLs()
	return p
}

// SanitizeRichText strips everything outside the formatting safelist from
// editor-authored HTML. The sanitized remainder still renders; unsafe
// content is neutralized, never rejected.
func SanitizeRichText(raw string) string {
	return richTextPolicy.Sanitize(raw)
}
