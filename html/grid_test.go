package html

import (
	"math"
	"testing"

	"github.com/AlphaHasher/churchlink-go/models"
)

func TestTransformKnownGeometry(t *testing.T) {
	tf := NewTransform(1280, 64, models.Aspect{Num: 16, Den: 9})
	if tf == nil {
		t.Fatal("expected transform for valid width")
	}

	if tf.CellPx != 20 {
		t.Errorf("cellPx: expected 20, got %f", tf.CellPx)
	}
	if tf.VirtualHeight != 720 {
		t.Errorf("virtualHeight: expected 720, got %f", tf.VirtualHeight)
	}
	if tf.Rows != 36 {
		t.Errorf("rows: expected 36, got %f", tf.Rows)
	}

	wu, hu := 10.0, 2.0
	rect := tf.Rect(&models.Units{Xu: 2, Yu: 1, Wu: &wu, Hu: &hu})
	if rect.X != 40 || rect.Y != 20 || rect.W != 200 || rect.H != 40 {
		t.Errorf("rect: expected (40,20,200,40), got (%f,%f,%f,%f)", rect.X, rect.Y, rect.W, rect.H)
	}
}

func TestTransformScalingInvariance(t *testing.T) {
	aspect := models.Aspect{Num: 4, Den: 3}
	small := NewTransform(960, 48, aspect)
	large := NewTransform(1920, 48, aspect)

	xu, yu := 5.5, 3.25
	sx := small.X(xu) / small.Width
	lx := large.X(xu) / large.Width
	if math.Abs(sx-lx) > 1e-12 {
		t.Errorf("fractional x drifted under scaling: %f vs %f", sx, lx)
	}

	sy := small.Y(yu) / small.VirtualHeight
	ly := large.Y(yu) / large.VirtualHeight
	if math.Abs(sy-ly) > 1e-12 {
		t.Errorf("fractional y drifted under scaling: %f vs %f", sy, ly)
	}
}

func TestTransformUnitRoundTrip(t *testing.T) {
	tf := NewTransform(1234, 37, models.Aspect{Num: 16, Den: 10})

	cases := []struct{ xu, yu, wu, hu float64 }{
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{12.75, 3.5, 9.125, 2.25},
		{36.999, 22.01, 0.001, 18},
	}
	const tol = 1e-9
	for _, c := range cases {
		if got := tf.XUnits(tf.X(c.xu)); math.Abs(got-c.xu) > tol {
			t.Errorf("xu round trip: %f -> %f", c.xu, got)
		}
		if got := tf.YUnits(tf.Y(c.yu)); math.Abs(got-c.yu) > tol {
			t.Errorf("yu round trip: %f -> %f", c.yu, got)
		}
		if got := tf.LenUnits(tf.Px(c.wu)); math.Abs(got-c.wu) > tol {
			t.Errorf("wu round trip: %f -> %f", c.wu, got)
		}
		if got := tf.LenUnits(tf.Px(c.hu)); math.Abs(got-c.hu) > tol {
			t.Errorf("hu round trip: %f -> %f", c.hu, got)
		}
	}
}

func TestTransformGuards(t *testing.T) {
	if tf := NewTransform(0, 64, models.Aspect{Num: 16, Den: 9}); tf != nil {
		t.Error("expected nil transform for zero width")
	}
	if tf := NewTransform(-100, 64, models.Aspect{Num: 16, Den: 9}); tf != nil {
		t.Error("expected nil transform for negative width")
	}

	// cols clamps to 1 instead of dividing by zero
	tf := NewTransform(800, 0, models.Aspect{Num: 16, Den: 9})
	if tf == nil {
		t.Fatal("expected transform despite invalid cols")
	}
	if tf.Cols != 1 || tf.CellPx != 800 {
		t.Errorf("expected cols clamped to 1 with cellPx 800, got cols=%d cellPx=%f", tf.Cols, tf.CellPx)
	}

	// malformed aspect falls back to 16:9
	tf = NewTransform(1600, 16, models.Aspect{})
	if tf.VirtualHeight != 900 {
		t.Errorf("expected 16:9 fallback height 900, got %f", tf.VirtualHeight)
	}
}

func TestTransformCentering(t *testing.T) {
	tf := NewTransform(1280, 64, models.Aspect{Num: 16, Den: 9})
	if tf.OffsetX != 0 || tf.OffsetY != 0 {
		t.Errorf("default offsets must be zero, got (%f,%f)", tf.OffsetX, tf.OffsetY)
	}

	tf.Center(func(w, h float64) (float64, float64) { return w / 10, h / 10 })
	if tf.OffsetX != 128 || tf.OffsetY != 72 {
		t.Errorf("centering policy not applied, got (%f,%f)", tf.OffsetX, tf.OffsetY)
	}
	if tf.X(0) != 128 || tf.Y(0) != 72 {
		t.Errorf("offsets not reflected in mapping, got (%f,%f)", tf.X(0), tf.Y(0))
	}

	tf.Center(nil) // no-op
	if tf.OffsetX != 128 {
		t.Error("nil policy must not reset offsets")
	}
}
