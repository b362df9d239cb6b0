package voxel

import "sort"

// Padding expands the scene viewport on every side.
const Padding = 40

// Viewport is the bounding rectangle of a composed scene.
type Viewport struct {
	X, Y          float64
	Width, Height float64
}

// Scene is the ordered polygon list for one render of the store. Transient;
// recomputed on every call and owned by the caller.
type Scene struct {
	Viewport Viewport
	Faces    []Face
}

// defaultViewport is returned for an empty store: grid extent times scale.
var defaultViewport = Viewport{X: 0, Y: 0, Width: GridSize * Scale, Height: GridSize * Scale}

// Compose reads the store and emits the scene for the given lighting angle
// in degrees. Pure: no mutation, deterministic for identical inputs.
//
// Voxels are sorted ascending by y + x*100, an approximate back-to-front
// painter ordering that holds while the grid extent stays below 100 per
// axis. Per voxel the faces go out right, left, top, so a voxel's own top
// occludes its sides without depth testing.
func Compose(store *Store, lightingAngle float64) Scene {
	if store.Len() == 0 {
		return Scene{Viewport: defaultViewport}
	}

	voxels := store.Voxels()
	sort.Slice(voxels, func(i, j int) bool {
		return voxels[i].Y+voxels[i].X*100 < voxels[j].Y+voxels[j].X*100
	})

	faces := make([]Face, 0, len(voxels)*3)
	var bb bbox
	for _, v := range voxels {
		faces = append(faces,
			makeFace(v, FaceRight, lightingAngle),
			makeFace(v, FaceLeft, lightingAngle),
			makeFace(v, FaceTop, lightingAngle),
		)
		addVoxelBounds(&bb, v)
	}

	return Scene{
		Viewport: Viewport{
			X:      bb.minX - Padding,
			Y:      bb.minY - Padding,
			Width:  bb.maxX - bb.minX + 2*Padding,
			Height: bb.maxY - bb.minY + 2*Padding,
		},
		Faces: faces,
	}
}

type bbox struct {
	minX, minY, maxX, maxY float64
	set                    bool
}

func (b *bbox) add(p Point) {
	if !b.set {
		b.minX, b.maxX = p.X, p.X
		b.minY, b.maxY = p.Y, p.Y
		b.set = true
		return
	}
	if p.X < b.minX {
		b.minX = p.X
	}
	if p.X > b.maxX {
		b.maxX = p.X
	}
	if p.Y < b.minY {
		b.minY = p.Y
	}
	if p.Y > b.maxY {
		b.maxY = p.Y
	}
}

// addVoxelBounds accumulates all 8 projected corners (top and base quads)
// of the voxel.
func addVoxelBounds(b *bbox, v Voxel) {
	x, y := float64(v.X), float64(v.Y)
	for _, z := range [2]float64{0, float64(v.Height)} {
		b.add(Project(x, y, z))
		b.add(Project(x+1, y, z))
		b.add(Project(x+1, y+1, z))
		b.add(Project(x, y+1, z))
	}
}
