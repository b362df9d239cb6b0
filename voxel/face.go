package voxel

import "math"

// FaceKind identifies one of the three visible faces of an extruded voxel.
type FaceKind uint8

const (
	FaceTop FaceKind = iota
	FaceLeft
	FaceRight
)

// Face is one filled quad of a voxel, ready for a vector renderer.
type Face struct {
	Kind    FaceKind
	Polygon [4]Point
	Fill    Color
}

// lightingOffset returns the brightness delta for a face kind under the
// given lighting angle in degrees. Stylized shading: top is always
// brightest, right darkest on average.
func lightingOffset(kind FaceKind, angle float64) float64 {
	rad := wrapAngle(angle) * math.Pi / 180
	switch kind {
	case FaceLeft:
		return -20 + math.Sin(rad)*10
	case FaceRight:
		return -30 + math.Cos(rad)*10
	default:
		return 0
	}
}

// wrapAngle normalizes degrees to [0,360).
func wrapAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// makeFace builds the lit quad of the given kind for voxel v. Corners run
// clockwise in screen space so downstream renderers fill correctly.
func makeFace(v Voxel, kind FaceKind, angle float64) Face {
	x, y := float64(v.X), float64(v.Y)
	h := float64(v.Height)
	var quad [4]Point
	switch kind {
	case FaceTop:
		quad = [4]Point{
			Project(x, y, h),
			Project(x+1, y, h),
			Project(x+1, y+1, h),
			Project(x, y+1, h),
		}
	case FaceLeft: // the y+1 edge of the cell
		quad = [4]Point{
			Project(x, y+1, h),
			Project(x+1, y+1, h),
			Project(x+1, y+1, 0),
			Project(x, y+1, 0),
		}
	case FaceRight: // the x+1 edge of the cell
		quad = [4]Point{
			Project(x+1, y+1, h),
			Project(x+1, y, h),
			Project(x+1, y, 0),
			Project(x+1, y+1, 0),
		}
	}
	return Face{
		Kind:    kind,
		Polygon: quad,
		Fill:    AdjustBrightness(v.Color, lightingOffset(kind, angle)),
	}
}
