// Package widgets provides the built-in shells for embedded site sections.
// Each shell emits a hydration target carrying the node's opaque prop
// payload; the real section components are independent collaborators that
// mount into these shells client-side.
package widgets

import (
	"encoding/json"
	stdhtml "html"
	"strconv"
	"strings"

	"github.com/AlphaHasher/churchlink-go/models"
)

// Default is the built-in SiteSectionRenderer used when no collaborator
// implementation is injected.
type Default struct{}

var _ models.SiteSectionRenderer = Default{}

func (Default) RenderEventList(props map[string]any, box models.WidgetBox) string {
	return shell("event-list", props, box)
}

func (Default) RenderMap(props map[string]any, box models.WidgetBox) string {
	return shell("map", props, box)
}

func (Default) RenderPaypal(props map[string]any, box models.WidgetBox) string {
	return paypalShell(props, box)
}

func (Default) RenderServiceTimes(props map[string]any, box models.WidgetBox) string {
	return shell("service-times", props, box)
}

func (Default) RenderMenu(props map[string]any, box models.WidgetBox) string {
	return shell("menu", props, box)
}

func (Default) RenderContactInfo(props map[string]any, box models.WidgetBox) string {
	return shell("contact-info", props, box)
}

func shell(kind string, props map[string]any, box models.WidgetBox) string {
	var sb strings.Builder
	sb.WriteString(`<div data-site-section="`)
	sb.WriteString(kind)
	sb.WriteString(`"`)
	writePropsAttr(&sb, props)
	writeBoxAttrs(&sb, box, boxDecls(box))
	sb.WriteString(`></div>`)
	return sb.String()
}

// paypalShell keeps the intrinsic 200x200 box and scales it proportionally
// into the allocation.
func paypalShell(props map[string]any, box models.WidgetBox) string {
	decls := append(boxDecls(box),
		"width: 200px",
		"height: 200px",
		"transform: scale("+trimFloat(box.Scale)+")",
		"transform-origin: top left",
	)

	var sb strings.Builder
	sb.WriteString(`<div data-site-section="paypal"`)
	writePropsAttr(&sb, props)
	writeBoxAttrs(&sb, box, decls)
	sb.WriteString(`></div>`)
	return sb.String()
}

func boxDecls(box models.WidgetBox) []string {
	var decls []string
	if box.Background != "" {
		decls = append(decls, "background-color: "+box.Background)
	}
	if box.BorderRadius != "" {
		decls = append(decls, "border-radius: "+box.BorderRadius)
	}
	return decls
}

func writePropsAttr(sb *strings.Builder, props map[string]any) {
	if len(props) == 0 {
		return
	}
	encoded, err := json.Marshal(props)
	if err != nil {
		return
	}
	sb.WriteString(` data-props="`)
	sb.WriteString(stdhtml.EscapeString(string(encoded)))
	sb.WriteString(`"`)
}

func writeBoxAttrs(sb *strings.Builder, box models.WidgetBox, decls []string) {
	class := "site-section"
	if box.ClassName != "" {
		class += " " + box.ClassName
	}
	sb.WriteString(` class="`)
	sb.WriteString(class)
	sb.WriteString(`"`)
	if len(decls) > 0 {
		sb.WriteString(` style="`)
		sb.WriteString(strings.Join(decls, "; "))
		sb.WriteString(`"`)
	}
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
