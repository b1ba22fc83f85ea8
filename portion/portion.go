// Package portion tracks dirty pixels on a coarse grid and summarizes them
// as a minimal set of covering rectangles.
//
// A Portioner overlays a rows x cols boolean grid on a pixel buffer, with
// each cell standing for a colWidth x rowHeight block of pixels. Writers
// report touched pixels with TakePixel; a presenter later calls Flush to
// collapse the active cells into rectangles and reset the grid, limiting
// its own redraw or upload cost to the regions that actually changed.
package portion

import (
	"errors"
	"fmt"

	"github.com/gogpu/compositor/geom"
)

// ErrInvalidDimensions is returned when the buffer size does not divide
// evenly into the requested grid, or is smaller than it.
var ErrInvalidDimensions = errors.New("portion: invalid grid dimensions")

// DimensionsValid reports whether a width x height buffer can be covered by
// a rows x cols grid: each dimension must be at least the cell count and
// divide evenly by it.
func DimensionsValid(width, height, rows, cols uint32) bool {
	if rows == 0 || cols == 0 {
		return false
	}
	if width < cols || height < rows {
		return false
	}
	return width%cols == 0 && height%rows == 0
}

// Portioner is the dirty-pixel grid. Create one with New; the zero value
// is not usable.
type Portioner struct {
	rows      uint32
	cols      uint32
	rowHeight uint32
	colWidth  uint32
	cells     []bool
}

// New creates a Portioner covering a width x height pixel buffer with a
// rows x cols grid. Invalid dimensions are a configuration error: the
// cell arithmetic assumes exact divisibility, so nothing is clamped.
func New(width, height, rows, cols uint32) (*Portioner, error) {
	if !DimensionsValid(width, height, rows, cols) {
		return nil, fmt.Errorf("%w: %dx%d buffer over %dx%d grid",
			ErrInvalidDimensions, width, height, rows, cols)
	}
	return &Portioner{
		rows:      rows,
		cols:      cols,
		rowHeight: height / rows,
		colWidth:  width / cols,
		cells:     make([]bool, rows*cols),
	}, nil
}

// TakePixel marks the grid cell containing pixel (x, y) as active.
// Coordinates outside the grid are logged and ignored; the caller is
// responsible for staying in bounds during normal operation.
func (p *Portioner) TakePixel(x, y uint32) {
	row := y / p.rowHeight
	col := x / p.colWidth
	if row >= p.rows || col >= p.cols {
		logger().Warn("portion: pixel outside grid",
			"x", x, "y", y, "row", row, "col", col)
		return
	}
	p.cells[row*p.cols+col] = true
}

// GridDims returns the grid size as (rows, cols).
func (p *Portioner) GridDims() (rows, cols uint32) {
	return p.rows, p.cols
}

// CellSize returns the pixel size of one grid cell as (width, height).
func (p *Portioner) CellSize() (width, height uint32) {
	return p.colWidth, p.rowHeight
}

// Flush collapses the active cells into the minimum number of contiguous
// rectangles (in grid coordinates) and resets every cell to inactive.
//
// Each grid row is scanned left to right, turning maximal runs of active
// cells into height-1 candidates. A candidate then walks the emitted list
// backward: an entry whose bottom edge touches this row and whose x/width
// match exactly absorbs the candidate by growing one row taller. The walk
// stops at the first entry that does not reach this row — entries above a
// gap can never match, so the search stays short.
//
// The result is minimal for column-aligned contiguous regions, which is
// what axis-aligned object footprints produce; it is not a globally
// optimal cover for arbitrary shapes.
func (p *Portioner) Flush() []geom.Rect {
	var out []geom.Rect

	for row := uint32(0); row < p.rows; row++ {
		runStart := int64(-1)
		for col := uint32(0); col <= p.cols; col++ {
			active := false
			if col < p.cols {
				active = p.cells[row*p.cols+col]
				p.cells[row*p.cols+col] = false
			}

			if active && runStart < 0 {
				runStart = int64(col)
			}
			if !active && runStart >= 0 {
				out = mergeRun(out, uint32(runStart), col, row)
				runStart = -1
			}
		}
	}

	return out
}

// mergeRun appends the run [start, end) on the given row to rects, first
// trying to extend a touching rectangle with identical columns.
func mergeRun(rects []geom.Rect, start, end, row uint32) []geom.Rect {
	run := geom.Rect{X: start, Y: row, W: end - start, H: 1}

	for i := len(rects) - 1; i >= 0; i-- {
		last := &rects[i]
		if last.Y+last.H != row {
			// A gap between this row and everything emitted earlier:
			// no older entry can touch this row either.
			break
		}
		if last.X == run.X && last.W == run.W {
			last.H++
			return rects
		}
	}

	return append(rects, run)
}
