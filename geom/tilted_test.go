package geom

import "testing"

// axisSquare returns the unit-aligned 4x4 square at (2, 2) as corner points.
func axisSquare() [4]Point {
	return [4]Point{
		{2, 2},
		{6, 2},
		{6, 6},
		{2, 6},
	}
}

func TestTiltedRectContains(t *testing.T) {
	c := axisSquare()
	tr := NewTiltedRect(c[0], c[1], c[2])

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 4, 4, true},
		{"corner A", 2, 2, true},
		{"edge midpoint", 6, 4, true},
		{"left of rect", 1.5, 4, false},
		{"right of rect", 6.5, 4, false},
		{"above rect", 4, 1.9, false},
		{"far away", 100, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tr.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// Containment must be invariant under cyclic relabeling of which three
// consecutive corners are named (A, B, C).
func TestTiltedRectCyclicRelabeling(t *testing.T) {
	corners := [4]Point{
		{0, 400},
		{600, 0},
		{880, 420},
		{280, 820},
	}

	probes := []Point{
		{400, 300},
		{600, 10},
		{0, 0},
		{500, 500},
		{876, 415},
		{-10, 200},
		{438, 407},
	}

	var rects [4]TiltedRect
	for i := range 4 {
		rects[i] = NewTiltedRect(corners[i], corners[(i+1)%4], corners[(i+2)%4])
	}

	for _, p := range probes {
		want := rects[0].Contains(p.X, p.Y)
		for i := 1; i < 4; i++ {
			if got := rects[i].Contains(p.X, p.Y); got != want {
				t.Errorf("labeling %d: Contains(%v, %v) = %v, labeling 0 says %v",
					i, p.X, p.Y, got, want)
			}
		}
	}
}

func TestTiltedRectBoundsIncludesImplicitCorner(t *testing.T) {
	// The fourth corner (280, 820) extends below the three named ones;
	// the bounding rect must cover it.
	tr := NewTiltedRect(Point{0, 400}, Point{600, 0}, Point{880, 420})
	b := tr.Bounds()
	if b.Y+b.H < 820 {
		t.Errorf("bounds %+v exclude the implicit fourth corner", b)
	}
	if b.X != 0 || b.Y != 0 {
		t.Errorf("bounds origin = (%d, %d), want (0, 0)", b.X, b.Y)
	}
}

func TestTiltedRectBoundsClampAtZero(t *testing.T) {
	tr := NewTiltedRect(Point{-4, -2}, Point{4, -2}, Point{4, 2})
	b := tr.Bounds()
	if b.X != 0 || b.Y != 0 {
		t.Errorf("negative corners must clamp bounds to origin, got %+v", b)
	}
}

func TestTiltedRectTranslate(t *testing.T) {
	c := axisSquare()
	tr := NewTiltedRect(c[0], c[1], c[2])
	tr.Translate(10, 20)

	if !tr.Contains(14, 24) {
		t.Error("translated center must be inside")
	}
	if tr.Contains(4, 4) {
		t.Error("old center must be outside after translation")
	}
	want := Rect{X: 12, Y: 22, W: 4, H: 4}
	if tr.Bounds() != want {
		t.Errorf("Bounds() = %+v, want %+v", tr.Bounds(), want)
	}
}

func TestTiltRectUnrotatedMatchesRect(t *testing.T) {
	r := Rect{X: 3, Y: 5, W: 4, H: 6}
	tr := TiltRect(r, 0)
	if tr.Bounds() != r {
		t.Errorf("TiltRect(r, 0).Bounds() = %+v, want %+v", tr.Bounds(), r)
	}
}

func TestTiltRect90SwapsDimensions(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 6, H: 2}
	tr := TiltRect(r, 90)
	b := tr.Bounds()
	if b.W != 2 || b.H != 6 {
		t.Errorf("90 degree bounds = %+v, want 2x6", b)
	}
	// Center is preserved.
	if b.X+b.W/2 != r.X+r.W/2 || b.Y+b.H/2 != r.Y+r.H/2 {
		t.Errorf("rotation moved the center: %+v vs %+v", b, r)
	}
}

func TestRotatedSize(t *testing.T) {
	tests := []struct {
		w, h    uint32
		degrees float64
		wantW   uint32
		wantH   uint32
	}{
		{3, 3, 0, 3, 3},
		{3, 3, 45, 4, 4},
		{0, 5, 30, 0, 0},
	}
	for _, tt := range tests {
		gw, gh := RotatedSize(tt.w, tt.h, tt.degrees)
		if gw != tt.wantW || gh != tt.wantH {
			t.Errorf("RotatedSize(%d, %d, %v) = (%d, %d), want (%d, %d)",
				tt.w, tt.h, tt.degrees, gw, gh, tt.wantW, tt.wantH)
		}
	}
}
