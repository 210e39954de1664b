package html

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/AlphaHasher/churchlink-go/models"
)

func fptr(v float64) *float64 { return &v }

func testPass() *Pass {
	return &Pass{
		Transform: NewTransform(1280, 64, models.Aspect{Num: 16, Den: 9}),
	}
}

func TestUnknownNodeTypeRendersNothing(t *testing.T) {
	var unknown models.Node
	if err := json.Unmarshal([]byte(`{"id":"z","type":"hologram-v9","props":{"x":1}}`), &unknown); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if unknown.Type != models.NodeUnknown {
		t.Fatalf("expected unknown type to survive decode, got %q", unknown.Type)
	}

	r := NewRenderer(&models.RenderContext{})
	if got := r.RenderNode(&unknown, testPass()); got != "" {
		t.Errorf("unknown node must render nothing, got %q", got)
	}

	// Siblings render normally around it.
	sibling := &models.Node{ID: "s", Type: models.NodeText, Text: &models.TextProps{HTML: "<p>hi</p>"}}
	out := r.renderChildren([]*models.Node{&unknown, sibling}, testPass())
	if !strings.Contains(out, "hi") {
		t.Errorf("sibling did not render: %q", out)
	}
}

func TestTextVariantTagAndGridScaledSize(t *testing.T) {
	r := NewRenderer(&models.RenderContext{})
	variant := "h2"
	n := &models.Node{
		ID:   "t1",
		Type: models.NodeText,
		Text: &models.TextProps{HTML: "<p>Welcome</p>", Variant: &variant},
	}

	out := r.renderText(n, testPass()) // cellPx = 20 -> scale 1.25
	if !strings.HasPrefix(out, "<h2") {
		t.Errorf("h2 variant must render an h2, got %q", out)
	}
	if !strings.Contains(out, "font-size: 2.34375rem") {
		t.Errorf("expected 1.875rem scaled by 1.25, got %q", out)
	}
}

func TestTextSanitizesResolvedHTML(t *testing.T) {
	r := NewRenderer(&models.RenderContext{})
	n := &models.Node{
		ID:   "t2",
		Type: models.NodeText,
		Text: &models.TextProps{HTML: `<p>safe<script>alert(1)</script></p>`},
	}

	out := r.renderText(n, testPass())
	if strings.Contains(out, "script") {
		t.Errorf("script must not survive sanitization: %q", out)
	}
	if !strings.Contains(out, "safe") {
		t.Errorf("sanitized remainder must still render: %q", out)
	}
}

func TestButtonAnchorVersusShell(t *testing.T) {
	r := NewRenderer(&models.RenderContext{})

	href, target := "https://example.org/give", "_blank"
	link := &models.Node{
		ID:     "b1",
		Type:   models.NodeButton,
		Button: &models.ButtonProps{Label: "Give", Href: &href, Target: &target},
	}
	out := r.renderButton(link, testPass())
	if !strings.HasPrefix(out, "<a") || !strings.Contains(out, `href="https://example.org/give"`) {
		t.Errorf("href button must render an anchor: %q", out)
	}
	if !strings.Contains(out, `rel="noopener"`) {
		t.Errorf("_blank anchor must carry rel=noopener: %q", out)
	}

	plain := &models.Node{ID: "b2", Type: models.NodeButton, Button: &models.ButtonProps{Label: "RSVP"}}
	out = r.renderButton(plain, testPass())
	if !strings.HasPrefix(out, `<button type="button"`) {
		t.Errorf("hrefless button must render an inert shell: %q", out)
	}
	if !strings.Contains(out, `onclick="return false;"`) {
		t.Errorf("shell must be non-interactive: %q", out)
	}
}

func TestImageResolvesThroughAssetCollaborator(t *testing.T) {
	r := NewRenderer(&models.RenderContext{
		ResolveAsset: func(id string) models.ImageSource {
			return models.ImageSource{URL: "/media/" + id + ".webp"}
		},
	})
	fit := "cover"
	n := &models.Node{
		ID:    "i1",
		Type:  models.NodeImage,
		Image: &models.ImageProps{AssetID: "hero01", ObjectFit: &fit},
	}

	out := r.renderImage(n, testPass())
	if !strings.Contains(out, `src="/media/hero01.webp"`) {
		t.Errorf("asset id must resolve through collaborator: %q", out)
	}
	if !strings.Contains(out, "object-fit: cover") {
		t.Errorf("objectFit must map to object-fit: %q", out)
	}

	empty := &models.Node{ID: "i2", Type: models.NodeImage, Image: &models.ImageProps{}}
	if got := r.renderImage(empty, testPass()); got != "" {
		t.Errorf("image without asset renders nothing, got %q", got)
	}
}

func TestImageEmitsResponsiveSrcset(t *testing.T) {
	srcset := "/media/images/a1_1080px.webp 1080w, /media/images/a1_600px.webp 600w"
	r := NewRenderer(&models.RenderContext{
		ResolveAsset: func(id string) models.ImageSource {
			return models.ImageSource{URL: "/media/images/" + id + "_1080px.webp", Srcset: srcset}
		},
	})

	positioned := &models.Node{
		ID:     "i5",
		Type:   models.NodeImage,
		Layout: &models.Layout{Units: &models.Units{Xu: 2, Yu: 1, Wu: fptr(10), Hu: fptr(4)}},
		Image:  &models.ImageProps{AssetID: "a1"},
	}

	out := r.renderImage(positioned, testPass()) // cellPx = 20 -> box width 200
	if !strings.Contains(out, `srcset="`+srcset+`"`) {
		t.Errorf("resolved srcset must reach the img tag: %q", out)
	}
	if !strings.Contains(out, `sizes="200px"`) {
		t.Errorf("positioned image advertises its placement-box width: %q", out)
	}

	flowing := &models.Node{ID: "i6", Type: models.NodeImage, Image: &models.ImageProps{AssetID: "a1"}}
	out = r.renderImage(flowing, testPass())
	if !strings.Contains(out, `sizes="100vw"`) {
		t.Errorf("flowing image defaults sizes to the viewport: %q", out)
	}

	// No variants: no srcset or sizes attributes at all.
	bare := NewRenderer(&models.RenderContext{
		ResolveAsset: func(id string) models.ImageSource {
			return models.ImageSource{URL: "/media/" + id + ".png"}
		},
	})
	out = bare.renderImage(flowing, testPass())
	if strings.Contains(out, "srcset") || strings.Contains(out, "sizes") {
		t.Errorf("image without variants must not emit srcset/sizes: %q", out)
	}
}

func TestImageDropShadowDisablesClipping(t *testing.T) {
	r := NewRenderer(&models.RenderContext{})
	shadow := "0 8px 12px rgba(0,0,0,0.4)"
	p := testPass()

	withShadow := &models.Node{
		ID:     "i3",
		Type:   models.NodeImage,
		Layout: &models.Layout{Units: &models.Units{Xu: 1, Yu: 1, Wu: fptr(8), Hu: fptr(8)}},
		Image:  &models.ImageProps{AssetID: "a.png", DropShadow: &shadow},
	}
	out := r.renderPlaced(withShadow, p)
	if !strings.Contains(out, "overflow: visible") {
		t.Errorf("drop shadow must not be clipped: %q", out)
	}

	plain := &models.Node{
		ID:     "i4",
		Type:   models.NodeImage,
		Layout: &models.Layout{Units: &models.Units{Xu: 1, Yu: 1, Wu: fptr(8), Hu: fptr(8)}},
		Image:  &models.ImageProps{AssetID: "a.png"},
	}
	out = r.renderPlaced(plain, p)
	if !strings.Contains(out, "overflow: hidden") {
		t.Errorf("plain positioned image clips to its box: %q", out)
	}
}

func TestPaypalScaleClamps(t *testing.T) {
	r := NewRenderer(&models.RenderContext{})
	p := testPass() // cellPx = 20

	wide := &models.Node{
		ID:       "pp1",
		Type:     models.NodePaypal,
		SizeMode: models.SizeWidthOnly,
		Layout:   &models.Layout{Units: &models.Units{Xu: 0, Yu: 0, Wu: fptr(20)}},
		Widget:   map[string]any{"hostedButtonId": "XYZ"},
	}
	out := r.renderWidget(wide, p) // 400px allocation / 200 base
	if !strings.Contains(out, "transform: scale(2)") {
		t.Errorf("expected scale 2: %q", out)
	}

	tiny := &models.Node{
		ID:       "pp2",
		Type:     models.NodePaypal,
		SizeMode: models.SizeWidthOnly,
		Layout:   &models.Layout{Units: &models.Units{Xu: 0, Yu: 0, Wu: fptr(1)}},
	}
	out = r.renderWidget(tiny, p) // 20px allocation -> 0.1, clamped
	if !strings.Contains(out, "transform: scale(0.2)") {
		t.Errorf("scale must clamp to 0.2: %q", out)
	}
}

func TestWidgetDelegatesToInjectedSections(t *testing.T) {
	stub := &stubSections{}
	r := NewRenderer(&models.RenderContext{SiteSections: stub})
	n := &models.Node{
		ID:     "w1",
		Type:   models.NodeEventList,
		Widget: map[string]any{"lockedFilters": []any{"youth"}},
	}

	out := r.renderWidget(n, testPass())
	if out != "events!" {
		t.Errorf("expected injected collaborator output, got %q", out)
	}
	if stub.gotProps["lockedFilters"] == nil {
		t.Error("props payload must pass through untouched")
	}
}

type stubSections struct {
	gotProps map[string]any
}

func (s *stubSections) RenderEventList(props map[string]any, box models.WidgetBox) string {
	s.gotProps = props
	return "events!"
}
func (s *stubSections) RenderMap(map[string]any, models.WidgetBox) string          { return "" }
func (s *stubSections) RenderPaypal(map[string]any, models.WidgetBox) string       { return "" }
func (s *stubSections) RenderServiceTimes(map[string]any, models.WidgetBox) string { return "" }
func (s *stubSections) RenderMenu(map[string]any, models.WidgetBox) string         { return "" }
func (s *stubSections) RenderContactInfo(map[string]any, models.WidgetBox) string  { return "" }
