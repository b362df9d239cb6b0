// Package voxel implements the isometric voxel grid engine: a keyed store of
// height-extruded colored cells on a fixed 20x20 grid, a bounded undo/redo
// history of encoded snapshots, and the projection and scene-composition math
// that turns the grid into an ordered 2D polygon list.
//
// One Engine instance owns one editing session. All operations are
// synchronous and single-owner; no locking is done or required.
package voxel

import "fmt"

const (
	// GridSize is the grid extent per axis; coordinates are [0,GridSize).
	GridSize = 20
	// MinHeight and MaxHeight bound a voxel's extrusion height.
	MinHeight = 1
	MaxHeight = 10
)

var (
	ErrInvalidCoordinate = fmt.Errorf("coordinate out of range")
	ErrInvalidHeight     = fmt.Errorf("height out of range")
)

// Voxel is one colored, height-extruded cell.
type Voxel struct {
	X, Y   int
	Height int
	Color  Color
}

// cell is the dense-array slot for one grid position. Height 0 means empty.
type cell struct {
	height uint8
	color  Color
}

// Store holds at most one voxel per (x,y) cell, backed by a dense array
// indexed x*GridSize+y.
type Store struct {
	cells [GridSize * GridSize]cell
	count int
}

// NewStore returns an empty store.
func NewStore() *Store { return &Store{} }

func cellIndex(x, y int) int { return x*GridSize + y }

func inBounds(x, y int) bool {
	return x >= 0 && x < GridSize && y >= 0 && y < GridSize
}

// Upsert places or replaces the voxel at (x,y). Validation happens before
// any mutation, so a failed call leaves the store untouched.
func (s *Store) Upsert(x, y, height int, c Color) error {
	if !inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, x, y)
	}
	if height < MinHeight || height > MaxHeight {
		return fmt.Errorf("%w: %d", ErrInvalidHeight, height)
	}
	i := cellIndex(x, y)
	if s.cells[i].height == 0 {
		s.count++
	}
	s.cells[i] = cell{height: uint8(height), color: c}
	return nil
}

// Remove deletes the voxel at (x,y) if present. Out-of-range coordinates
// and empty cells are ignored.
func (s *Store) Remove(x, y int) {
	if !inBounds(x, y) {
		return
	}
	i := cellIndex(x, y)
	if s.cells[i].height != 0 {
		s.cells[i] = cell{}
		s.count--
	}
}

// Clear empties the store.
func (s *Store) Clear() {
	s.cells = [GridSize * GridSize]cell{}
	s.count = 0
}

// Has reports whether a voxel exists at (x,y).
func (s *Store) Has(x, y int) bool {
	return inBounds(x, y) && s.cells[cellIndex(x, y)].height != 0
}

// Get returns the voxel at (x,y), if any.
func (s *Store) Get(x, y int) (Voxel, bool) {
	if !s.Has(x, y) {
		return Voxel{}, false
	}
	c := s.cells[cellIndex(x, y)]
	return Voxel{X: x, Y: y, Height: int(c.height), Color: c.color}, true
}

// Len returns the number of voxels in the store.
func (s *Store) Len() int { return s.count }

// Voxels returns every voxel in cell-index order (x major, y minor).
func (s *Store) Voxels() []Voxel {
	out := make([]Voxel, 0, s.count)
	for x := 0; x < GridSize; x++ {
		for y := 0; y < GridSize; y++ {
			c := s.cells[cellIndex(x, y)]
			if c.height == 0 {
				continue
			}
			out = append(out, Voxel{X: x, Y: y, Height: int(c.height), Color: c.color})
		}
	}
	return out
}
