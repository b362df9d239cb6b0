package voxel

import "math"

// Scale is the projection scale: one grid unit spans Scale screen units
// along the isometric axes.
const Scale = 20

var (
	cos30 = math.Cos(30 * math.Pi / 180)
	sin30 = math.Sin(30 * math.Pi / 180)
)

// Point is a 2D screen-space coordinate.
type Point struct {
	X, Y float64
}

// Project maps grid coordinates (x,y) at elevation z to screen space.
// Pure; grid bounds are enforced upstream, any reals are accepted here.
func Project(x, y, z float64) Point {
	return Point{
		X: (x - y) * cos30 * Scale,
		Y: (x+y)*sin30*Scale - z*Scale,
	}
}
