package uvmap

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned when a dimension or cell size is not positive.
var ErrInvalidGeometry = errors.New("uvmap: invalid geometry")

// Geometry describes the image and the cell size it is divided into.
// All four values must be at least 1.
type Geometry struct {
	// Width and Height are the image size in pixels.
	Width  int
	Height int

	// CellWidth and CellHeight are the size of a full cell in pixels.
	// Cells in the last column/row are smaller when the image size is not
	// a multiple of the cell size.
	CellWidth  int
	CellHeight int
}

// Validate reports whether every dimension is positive.
func (g Geometry) Validate() error {
	if g.Width < 1 || g.Height < 1 || g.CellWidth < 1 || g.CellHeight < 1 {
		return fmt.Errorf("%w: width=%d, height=%d, cell=%dx%d",
			ErrInvalidGeometry, g.Width, g.Height, g.CellWidth, g.CellHeight)
	}
	return nil
}

// Pixels returns Width*Height.
func (g Geometry) Pixels() int {
	return g.Width * g.Height
}

// Cell is a cell position in the grid, in cells rather than pixels.
type Cell struct {
	X, Y int
}

// Grid is the cell grid for a Geometry.
//
// Cells holds CountX*CountY entries in row-major order. A fresh grid is the
// identity (entry i is (i%CountX, i/CountX)); after Shuffle it is a
// permutation of the identity in which grid position i takes its pixels
// from cell Cells[i].
type Grid struct {
	Geometry

	// CountX and CountY are the number of cell columns and rows
	// (ceil(Width/CellWidth), ceil(Height/CellHeight)).
	CountX int
	CountY int

	// LastX and LastY are the pixel origin of the last column and row.
	LastX int
	LastY int

	// LastWidth and LastHeight are the size of the trailing (possibly
	// partial) column and row. They equal CellWidth/CellHeight when the
	// image divides evenly.
	LastWidth  int
	LastHeight int

	Cells []Cell
}

// NewGrid returns the identity grid for g.
func NewGrid(g Geometry) (*Grid, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}

	countX := ceilDiv(g.Width, g.CellWidth)
	countY := ceilDiv(g.Height, g.CellHeight)
	lastX := (countX - 1) * g.CellWidth
	lastY := (countY - 1) * g.CellHeight

	gr := &Grid{
		Geometry:   g,
		CountX:     countX,
		CountY:     countY,
		LastX:      lastX,
		LastY:      lastY,
		LastWidth:  g.Width - lastX,
		LastHeight: g.Height - lastY,
		Cells:      make([]Cell, countX*countY),
	}
	for i := range gr.Cells {
		gr.Cells[i] = Cell{X: i % countX, Y: i / countX}
	}
	return gr, nil
}

// ShuffledGrid returns the grid for g permuted with seed.
func ShuffledGrid(seed uint32, g Geometry) (*Grid, error) {
	gr, err := NewGrid(g)
	if err != nil {
		return nil, err
	}
	gr.Shuffle(seed)
	return gr, nil
}

// Shuffle permutes the cells in place with the seeded shuffle.
func (gr *Grid) Shuffle(seed uint32) {
	Shuffle(gr.Cells, seed)
}

// Len returns the number of cells.
func (gr *Grid) Len() int {
	return len(gr.Cells)
}

// Index returns the row-major index of c.
func (gr *Grid) Index(c Cell) int {
	return c.Y*gr.CountX + c.X
}

// At returns the cell stored at grid position (cx, cy).
func (gr *Grid) At(cx, cy int) Cell {
	return gr.Cells[cy*gr.CountX+cx]
}

// CellOf returns the grid position owning pixel (x, y).
func (gr *Grid) CellOf(x, y int) Cell {
	return Cell{X: x / gr.CellWidth, Y: y / gr.CellHeight}
}

// IsPermutation reports whether every cell of the grid appears exactly once.
func (gr *Grid) IsPermutation() bool {
	if len(gr.Cells) != gr.CountX*gr.CountY {
		return false
	}
	seen := make([]bool, len(gr.Cells))
	for _, c := range gr.Cells {
		if c.X < 0 || c.X >= gr.CountX || c.Y < 0 || c.Y >= gr.CountY {
			return false
		}
		i := gr.Index(c)
		if seen[i] {
			return false
		}
		seen[i] = true
	}
	return true
}

// Inverse returns the inverse permutation: entry Index(Cells[i]) of the
// result is the cell at grid position i.
func (gr *Grid) Inverse() []Cell {
	inv := make([]Cell, len(gr.Cells))
	for i, c := range gr.Cells {
		inv[gr.Index(c)] = Cell{X: i % gr.CountX, Y: i / gr.CountX}
	}
	return inv
}

// ceilDiv returns ceil(a/b) for positive a and b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
