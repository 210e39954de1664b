// Package html renders page documents to HTML with virtual-grid positioning.
package html

import (
	"github.com/AlphaHasher/churchlink-go/models"
)

// Transform converts grid units to pixels for one section at one measured
// width. Derived state only: recomputed on every width change, never stored.
type Transform struct {
	Width         float64 // measured content-box width in px
	CellPx        float64 // pixel size of one grid unit
	OffsetX       float64
	OffsetY       float64
	Rows          float64 // virtual height in grid units
	VirtualHeight float64 // virtual height in px
	Cols          int
}

// CenterPolicy computes non-uniform centering offsets for a transform.
// Reserved extension point; the base behavior keeps both offsets at zero.
type CenterPolicy func(measuredWidth, virtualHeight float64) (dx, dy float64)

// NewTransform derives a transform from a measured width, a column count and
// a nominal aspect ratio. Returns nil while no valid measurement exists
// (width <= 0); callers suppress positioned rendering until then. Cols is
// clamped to >= 1 so malformed grid specs never divide by zero.
func NewTransform(width float64, cols int, aspect models.Aspect) *Transform {
	if width <= 0 {
		return nil
	}
	if cols < 1 {
		cols = 1
	}
	num, den := aspect.Num, aspect.Den
	if num <= 0 || den <= 0 {
		num, den = 16, 9
	}

	virtualHeight := width * float64(den) / float64(num)
	cellPx := width / float64(cols)

	return &Transform{
		Width:         width,
		CellPx:        cellPx,
		Rows:          virtualHeight / cellPx,
		VirtualHeight: virtualHeight,
		Cols:          cols,
	}
}

// Center applies a centering policy to the transform. No-op when nil.
func (t *Transform) Center(policy CenterPolicy) {
	if t == nil || policy == nil {
		return
	}
	t.OffsetX, t.OffsetY = policy(t.Width, t.VirtualHeight)
}

// X maps a horizontal grid coordinate to pixels.
func (t *Transform) X(xu float64) float64 { return t.OffsetX + xu*t.CellPx }

// Y maps a vertical grid coordinate to pixels.
func (t *Transform) Y(yu float64) float64 { return t.OffsetY + yu*t.CellPx }

// Px maps a grid length to pixels.
func (t *Transform) Px(u float64) float64 { return u * t.CellPx }

// XUnits and YUnits invert the coordinate mapping.
func (t *Transform) XUnits(px float64) float64 { return (px - t.OffsetX) / t.CellPx }
func (t *Transform) YUnits(px float64) float64 { return (px - t.OffsetY) / t.CellPx }

// LenUnits inverts the length mapping.
func (t *Transform) LenUnits(px float64) float64 { return px / t.CellPx }

// Rect is a computed pixel box for a positioned node. W/H are only valid
// when the corresponding Has flag is set.
type Rect struct {
	X, Y float64
	W, H float64
	HasW bool
	HasH bool
}

// Rect maps a node's grid units to its pixel box. Height is reported even
// for widthOnly nodes; the compositor decides whether to apply it based on
// the node's size mode.
func (t *Transform) Rect(u *models.Units) Rect {
	r := Rect{X: t.X(u.Xu), Y: t.Y(u.Yu)}
	if u.Wu != nil {
		r.W = t.Px(*u.Wu)
		r.HasW = true
	}
	if u.Hu != nil {
		r.H = t.Px(*u.Hu)
		r.HasH = true
	}
	return r
}
