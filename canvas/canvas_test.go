// Copyright (c) 2025 Apple Inc. Licensed under MIT License.

package canvas

import (
	"image/color"
	"testing"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	black = color.RGBA{0, 0, 0, 255}
)

func TestFillRect(t *testing.T) {
	m := NewImage(20, 20)
	m.SetFillColor(red)
	m.BeginPath()
	m.Rect(4, 4, 8, 8)
	m.Fill()

	if got := m.RGBA().RGBAAt(8, 8); got != red {
		t.Errorf("inside pixel = %v; want %v", got, red)
	}
	if got := m.RGBA().RGBAAt(1, 1); got.A != 0 {
		t.Errorf("outside pixel = %v; want transparent", got)
	}
}

func TestTransform(t *testing.T) {
	m := NewImage(20, 20)
	m.SetTransform(2, 1, 1)
	m.SetFillColor(red)
	m.BeginPath()
	m.Rect(0, 0, 4, 4)
	m.Fill()

	// Device rect is (2,2)-(10,10).
	if got := m.RGBA().RGBAAt(6, 6); got != red {
		t.Errorf("pixel (6,6) = %v; want %v", got, red)
	}
	if got := m.RGBA().RGBAAt(12, 12); got.A != 0 {
		t.Errorf("pixel (12,12) = %v; want transparent", got)
	}
}

func TestGlobalAlpha(t *testing.T) {
	m := NewImage(10, 10)
	m.SetFillColor(red)
	m.SetGlobalAlpha(0.5)
	m.BeginPath()
	m.Rect(0, 0, 10, 10)
	m.Fill()

	a := m.RGBA().RGBAAt(5, 5).A
	if a < 120 || a > 135 {
		t.Errorf("alpha = %d; want about 127", a)
	}
}

func TestClear(t *testing.T) {
	m := NewImage(10, 10)
	m.SetFillColor(red)
	m.BeginPath()
	m.Rect(0, 0, 10, 10)
	m.Fill()
	m.Clear()
	if got := m.RGBA().RGBAAt(5, 5); got.A != 0 {
		t.Errorf("pixel after Clear = %v; want transparent", got)
	}
}

func TestEmptyPath(t *testing.T) {
	m := NewImage(10, 10)
	m.SetFillColor(red)
	m.BeginPath()
	m.Fill()
	m.Stroke()
	m.BeginPath()
	m.MoveTo(5, 5)
	m.Fill()
	m.Stroke()
	if got := m.RGBA().RGBAAt(5, 5); got.A != 0 {
		t.Errorf("pixel after empty draws = %v; want transparent", got)
	}
}

func TestStrokeCaps(t *testing.T) {
	tests := []struct {
		cap            LineCap
		start, end     uint8 // alpha floor at the cap extension pixels
		startUp, endUp uint8 // alpha ceiling
	}{
		{ButtCap, 0, 0, 0, 0},
		{SquareCap, 255, 255, 255, 255},
		{RoundCap, 50, 50, 254, 254},
	}
	for _, test := range tests {
		m := NewImage(20, 12)
		m.SetStrokeColor(black)
		m.SetLineWidth(2)
		m.SetLineCap(test.cap)
		m.BeginPath()
		m.MoveTo(2, 5)
		m.LineTo(14, 5)
		m.Stroke()

		if got := m.RGBA().RGBAAt(8, 5).A; got != 255 {
			t.Errorf("%s: body alpha = %d; want 255", test.cap, got)
		}
		if got := m.RGBA().RGBAAt(1, 5).A; got < test.start || got > test.startUp {
			t.Errorf("%s: start cap alpha = %d; want in [%d,%d]", test.cap, got, test.start, test.startUp)
		}
		if got := m.RGBA().RGBAAt(14, 5).A; got < test.end || got > test.endUp {
			t.Errorf("%s: end cap alpha = %d; want in [%d,%d]", test.cap, got, test.end, test.endUp)
		}
		if got := m.RGBA().RGBAAt(17, 5).A; got != 0 {
			t.Errorf("%s: far pixel alpha = %d; want 0", test.cap, got)
		}
	}
}

func TestStrokeJoins(t *testing.T) {
	// An elbow from (2,2) right to (10,2) then down to (10,10). The
	// outer corner pixel (10,1) is fully covered by a miter join and
	// about half covered by a bevel.
	probe := func(join LineJoin) uint8 {
		m := NewImage(16, 16)
		m.SetStrokeColor(black)
		m.SetLineWidth(2)
		m.SetLineJoin(join)
		m.BeginPath()
		m.MoveTo(2, 2)
		m.LineTo(10, 2)
		m.LineTo(10, 10)
		m.Stroke()
		return m.RGBA().RGBAAt(10, 1).A
	}

	if got := probe(MiterJoin); got != 255 {
		t.Errorf("miter corner alpha = %d; want 255", got)
	}
	if got := probe(BevelJoin); got < 50 || got > 220 {
		t.Errorf("bevel corner alpha = %d; want partial coverage", got)
	}
	if got := probe(RoundJoin); got < 50 {
		t.Errorf("round corner alpha = %d; want partial coverage", got)
	}
}

func TestStrokeScaledWidth(t *testing.T) {
	m := NewImage(20, 20)
	m.SetTransform(2, 0, 0)
	m.SetStrokeColor(black)
	m.SetLineWidth(1)
	m.BeginPath()
	m.MoveTo(5, 2)
	m.LineTo(5, 8)
	m.Stroke()

	// Device line x=10 with width 2 covers x in [9,11].
	if got := m.RGBA().RGBAAt(9, 8).A; got != 255 {
		t.Errorf("pixel (9,8) alpha = %d; want 255", got)
	}
	if got := m.RGBA().RGBAAt(7, 8).A; got != 0 {
		t.Errorf("pixel (7,8) alpha = %d; want 0", got)
	}
}

func TestCircleFill(t *testing.T) {
	m := NewImage(20, 20)
	m.SetFillColor(red)
	m.BeginPath()
	m.Circle(10, 10, 5)
	m.Fill()

	if got := m.RGBA().RGBAAt(10, 10); got != red {
		t.Errorf("center = %v; want %v", got, red)
	}
	if got := m.RGBA().RGBAAt(10, 3).A; got != 0 {
		t.Errorf("above circle alpha = %d; want 0", got)
	}
	if got := m.RGBA().RGBAAt(2, 2).A; got != 0 {
		t.Errorf("corner alpha = %d; want 0", got)
	}
}

func TestStrokeOutlinePieces(t *testing.T) {
	// One open segment with butt caps is a single quad.
	subs := []subpath{{pts: []point{{0, 0}, {10, 0}}}}
	out := strokeOutline(subs, 2, ButtCap, MiterJoin)
	if len(out) != 1 {
		t.Errorf("open segment: %d pieces; want 1", len(out))
	}
	// A closed triangle gets a quad and a join per edge.
	subs = []subpath{{pts: []point{{0, 0}, {10, 0}, {5, 8}}, closed: true}}
	out = strokeOutline(subs, 2, ButtCap, BevelJoin)
	if len(out) != 6 {
		t.Errorf("closed triangle: %d pieces; want 6", len(out))
	}
	for _, p := range out {
		if signedArea(p.pts) <= 0 {
			t.Errorf("piece with non-positive area %v", signedArea(p.pts))
		}
	}
}

type memDisplay struct {
	w, h    int16
	pix     map[[2]int16]color.RGBA
	flushed bool
}

func (d *memDisplay) Size() (int16, int16) { return d.w, d.h }
func (d *memDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.pix[[2]int16{x, y}] = c
}
func (d *memDisplay) Display() error {
	d.flushed = true
	return nil
}

func TestBlit(t *testing.T) {
	m := NewImage(10, 10)
	m.SetFillColor(red)
	m.BeginPath()
	m.Rect(2, 2, 6, 6)
	m.Fill()

	d := &memDisplay{w: 10, h: 10, pix: make(map[[2]int16]color.RGBA)}
	if err := Blit(m.RGBA(), color.White, d); err != nil {
		t.Fatal(err)
	}
	if !d.flushed {
		t.Error("Display was not called")
	}
	if got := d.pix[[2]int16{5, 5}]; got.R != 255 || got.G != 0 {
		t.Errorf("display pixel (5,5) = %v; want red", got)
	}
	if got := d.pix[[2]int16{0, 0}]; got.R != 255 || got.G != 255 || got.B != 255 {
		t.Errorf("display pixel (0,0) = %v; want white", got)
	}
}
