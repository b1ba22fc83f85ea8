package portion

import (
	"errors"
	"testing"

	"github.com/gogpu/compositor/geom"
)

const (
	testWidth  = 800
	testHeight = 600
)

func mustNew(t *testing.T, width, height, rows, cols uint32) *Portioner {
	t.Helper()
	p, err := New(width, height, rows, cols)
	if err != nil {
		t.Fatalf("New(%d, %d, %d, %d): %v", width, height, rows, cols, err)
	}
	return p
}

func TestNewDividesEvenly(t *testing.T) {
	p := mustNew(t, testWidth, testHeight, 4, 4)
	rows, cols := p.GridDims()
	if rows*cols != 16 {
		t.Errorf("grid has %d cells, want 16", rows*cols)
	}
	cw, ch := p.CellSize()
	if cw != 200 || ch != 150 {
		t.Errorf("CellSize() = (%d, %d), want (200, 150)", cw, ch)
	}
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	tests := []struct {
		name                      string
		width, height, rows, cols uint32
	}{
		{"grid larger than buffer", testWidth, testHeight, 100000, 1000000},
		{"width not divisible", 10, 10, 5, 3},
		{"height not divisible", 10, 10, 3, 5},
		{"zero rows", 10, 10, 0, 5},
		{"zero cols", 10, 10, 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.width, tt.height, tt.rows, tt.cols); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("New() error = %v, want ErrInvalidDimensions", err)
			}
		})
	}
}

func TestTakePixel(t *testing.T) {
	p := mustNew(t, 10, 10, 10, 10)
	for i, c := range p.cells {
		if c {
			t.Fatalf("cell %d active before any TakePixel", i)
		}
	}

	p.TakePixel(0, 0)
	if !p.cells[0] {
		t.Error("cell (0,0) not active")
	}
	if p.cells[1] {
		t.Error("cell (0,1) unexpectedly active")
	}

	p.TakePixel(9, 9)
	if !p.cells[9*10+9] {
		t.Error("cell (9,9) not active")
	}
}

func TestTakePixelOutOfRangeIgnored(t *testing.T) {
	p := mustNew(t, 10, 10, 10, 10)
	p.TakePixel(10, 0)
	p.TakePixel(0, 10)
	p.TakePixel(4000, 4000)
	for i, c := range p.cells {
		if c {
			t.Errorf("out-of-range TakePixel activated cell %d", i)
		}
	}
}

func TestFlushMinimalRectangles(t *testing.T) {
	tests := []struct {
		name  string
		touch func(p *Portioner)
		want  int
	}{
		{
			name: "simple square",
			touch: func(p *Portioner) {
				p.TakePixel(0, 0)
				p.TakePixel(0, 1)
				p.TakePixel(1, 0)
				p.TakePixel(1, 1)
			},
			want: 1,
		},
		{
			name: "row gap splits",
			touch: func(p *Portioner) {
				p.TakePixel(0, 0)
				p.TakePixel(1, 0)
				p.TakePixel(0, 2)
				p.TakePixel(1, 2)
			},
			want: 2,
		},
		{
			name: "entire grid",
			touch: func(p *Portioner) {
				for y := uint32(0); y < 10; y++ {
					for x := uint32(0); x < 10; x++ {
						p.TakePixel(x, y)
					}
				}
			},
			want: 1,
		},
		{
			name: "full-height column",
			touch: func(p *Portioner) {
				for y := uint32(0); y < 10; y++ {
					for x := uint32(3); x < 7; x++ {
						p.TakePixel(x, y)
					}
				}
			},
			want: 1,
		},
		{
			name: "two columns with gap",
			touch: func(p *Portioner) {
				for y := uint32(0); y < 10; y++ {
					p.TakePixel(0, y)
					p.TakePixel(1, y)
					p.TakePixel(8, y)
					p.TakePixel(9, y)
				}
			},
			want: 2,
		},
		{
			// Two top rows of different widths, a square in the middle,
			// and two bottom corner blocks: 2 + 1 + 2 rectangles.
			name: "mixed shapes",
			touch: func(p *Portioner) {
				for i := uint32(0); i < 10; i++ {
					p.TakePixel(i, 0)
					if i != 9 {
						p.TakePixel(i, 1)
					}
					if i >= 3 && i < 7 {
						p.TakePixel(i, 4)
						p.TakePixel(i, 5)
						p.TakePixel(i, 6)
					}
					if i >= 7 {
						p.TakePixel(0, i)
						p.TakePixel(1, i)
						p.TakePixel(2, i)
						p.TakePixel(7, i)
						p.TakePixel(8, i)
						p.TakePixel(9, i)
					}
				}
			},
			want: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustNew(t, 10, 10, 10, 10)
			tt.touch(p)
			if got := p.Flush(); len(got) != tt.want {
				t.Errorf("Flush() returned %d rects %v, want %d", len(got), got, tt.want)
			}
		})
	}
}

// Any single column-aligned rectangle of touched cells must flush to
// exactly that one rectangle.
func TestFlushSingleRectangleExact(t *testing.T) {
	rects := []geom.Rect{
		{X: 0, Y: 0, W: 1, H: 1},
		{X: 9, Y: 9, W: 1, H: 1},
		{X: 2, Y: 3, W: 5, H: 4},
		{X: 0, Y: 0, W: 10, H: 10},
		{X: 4, Y: 0, W: 1, H: 10},
		{X: 0, Y: 7, W: 10, H: 1},
	}
	for _, want := range rects {
		p := mustNew(t, 10, 10, 10, 10)
		for y := want.Y; y < want.Y+want.H; y++ {
			for x := want.X; x < want.X+want.W; x++ {
				p.TakePixel(x, y)
			}
		}
		got := p.Flush()
		if len(got) != 1 || got[0] != want {
			t.Errorf("Flush() = %v, want [%+v]", got, want)
		}
	}
}

func TestFlushResetsGrid(t *testing.T) {
	p := mustNew(t, 10, 10, 10, 10)
	p.TakePixel(0, 0)
	p.TakePixel(0, 1)
	p.TakePixel(1, 0)
	p.TakePixel(1, 1)

	if got := p.Flush(); len(got) != 1 {
		t.Fatalf("first Flush() = %v, want one rect", got)
	}
	if got := p.Flush(); len(got) != 0 {
		t.Errorf("second Flush() = %v, want empty", got)
	}
	for i, c := range p.cells {
		if c {
			t.Errorf("cell %d still active after Flush", i)
		}
	}
}

func TestFlushMapsPixelsToCells(t *testing.T) {
	// 100x100 pixels over a 10x10 grid: cell size 10x10.
	p := mustNew(t, 100, 100, 10, 10)
	p.TakePixel(57, 33) // cell (3, 5)
	got := p.Flush()
	want := geom.Rect{X: 5, Y: 3, W: 1, H: 1}
	if len(got) != 1 || got[0] != want {
		t.Errorf("Flush() = %v, want [%+v]", got, want)
	}
}

func BenchmarkFlush(b *testing.B) {
	p, err := New(1000, 1000, 10, 10)
	if err != nil {
		b.Fatal(err)
	}
	for i := 0; i < b.N; i++ {
		for y := uint32(0); y < 1000; y += 100 {
			for x := uint32(0); x < 1000; x += 100 {
				p.TakePixel(x, y)
			}
		}
		p.Flush()
	}
}
