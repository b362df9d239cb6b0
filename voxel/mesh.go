package voxel

// Vertex is one mesh corner with a packed occupancy+RGB color value.
type Vertex struct {
	Position [3]float32
	Color    uint32
}

// Mesh is an indexed triangle mesh of the extruded grid.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// volume is the dense occupancy of the extruded grid, indexed [x][y][z].
// 0 means empty; otherwise occupied|RGB packed via packVolumeColor.
type volume [GridSize][GridSize][MaxHeight]uint32

const volumeOccupied = 0x01000000

func packVolumeColor(c Color) uint32 {
	return volumeOccupied | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// VolumeColor unpacks the RGB of a mesh vertex color value.
func VolumeColor(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// buildVolume extrudes each voxel downward from its height to the ground.
func buildVolume(store *Store) *volume {
	vol := new(volume)
	for _, v := range store.Voxels() {
		packed := packVolumeColor(v.Color)
		for z := 0; z < v.Height; z++ {
			vol[v.X][v.Y][z] = packed
		}
	}
	return vol
}

// dirSpec describes one sweep direction: the face normal, the two in-plane
// axes u/v, and the unit steps along them.
type dirSpec struct {
	normal [3]float32
	u, v   int
	du, dv [3]int
}

var meshDirections = []dirSpec{
	{[3]float32{1, 0, 0}, 1, 2, [3]int{0, 1, 0}, [3]int{0, 0, 1}},
	{[3]float32{-1, 0, 0}, 1, 2, [3]int{0, 1, 0}, [3]int{0, 0, 1}},
	{[3]float32{0, 1, 0}, 0, 2, [3]int{1, 0, 0}, [3]int{0, 0, 1}},
	{[3]float32{0, -1, 0}, 0, 2, [3]int{1, 0, 0}, [3]int{0, 0, 1}},
	{[3]float32{0, 0, 1}, 0, 1, [3]int{1, 0, 0}, [3]int{0, 1, 0}},
	{[3]float32{0, 0, -1}, 0, 1, [3]int{1, 0, 0}, [3]int{0, 1, 0}},
}

// volumeAt treats everything outside the grid as empty, so boundary faces
// are always exposed.
func volumeAt(vol *volume, x, y, z int) uint32 {
	if x < 0 || x >= GridSize || y < 0 || y >= GridSize || z < 0 || z >= MaxHeight {
		return 0
	}
	return vol[x][y][z]
}

// exposedMask collects, for slice p of the sweep, the packed colors of
// cells whose face toward dir.normal is visible (the neighbor is empty).
func exposedMask(vol *volume, dir dirSpec, perp, p int, dims [3]int) [][]uint32 {
	mask := make([][]uint32, dims[dir.u])
	for u := range mask {
		mask[u] = make([]uint32, dims[dir.v])
	}
	step := 1
	if dir.normal[perp] < 0 {
		step = -1
	}
	for u := 0; u < dims[dir.u]; u++ {
		for v := 0; v < dims[dir.v]; v++ {
			var pos [3]int
			pos[dir.u] = u
			pos[dir.v] = v
			pos[perp] = p
			cv := volumeAt(vol, pos[0], pos[1], pos[2])
			if cv == 0 {
				continue
			}
			adj := pos
			adj[perp] = p + step
			if volumeAt(vol, adj[0], adj[1], adj[2]) == 0 {
				mask[u][v] = cv
			}
		}
	}
	return mask
}

// mergeQuads greedily grows same-color rectangles over the mask and emits
// one quad per rectangle.
func mergeQuads(mesh *Mesh, mask [][]uint32, dir dirSpec, perp, p int, dims [3]int) {
	visited := make([][]bool, dims[dir.u])
	for u := range visited {
		visited[u] = make([]bool, dims[dir.v])
	}
	for u := 0; u < dims[dir.u]; u++ {
		for v := 0; v < dims[dir.v]; {
			if mask[u][v] == 0 || visited[u][v] {
				v++
				continue
			}
			color := mask[u][v]
			runW := 1
			for w := v + 1; w < dims[dir.v] && mask[u][w] == color && !visited[u][w]; w++ {
				runW++
			}
			runH := 1
		grow:
			for h := u + 1; h < dims[dir.u]; h++ {
				for w := v; w < v+runW; w++ {
					if mask[h][w] != color || visited[h][w] {
						break grow
					}
				}
				runH++
			}
			for hu := u; hu < u+runH; hu++ {
				for hv := v; hv < v+runW; hv++ {
					visited[hu][hv] = true
				}
			}
			emitQuad(mesh, dir, [3]int{p, u, v}, runW, runH, color, perp)
			v += runW
		}
	}
}

func emitQuad(mesh *Mesh, dir dirSpec, start [3]int, w, h int, color uint32, perp int) {
	var origin [3]float32
	origin[perp] = float32(start[0])
	if dir.normal[perp] > 0 {
		origin[perp]++
	}
	origin[dir.u] = float32(start[1])
	origin[dir.v] = float32(start[2])

	at := func(nu, nv int) [3]float32 {
		return [3]float32{
			origin[0] + float32(dir.du[0]*nu+dir.dv[0]*nv),
			origin[1] + float32(dir.du[1]*nu+dir.dv[1]*nv),
			origin[2] + float32(dir.du[2]*nu+dir.dv[2]*nv),
		}
	}
	verts := [4]Vertex{
		{Position: at(0, 0), Color: color},
		{Position: at(h, 0), Color: color},
		{Position: at(h, w), Color: color},
		{Position: at(0, w), Color: color},
	}
	// keep windings outward-facing
	if (dir.normal[perp] < 0) != (perp == 1) {
		verts[1], verts[3] = verts[3], verts[1]
	}

	base := uint32(len(mesh.Vertices))
	mesh.Vertices = append(mesh.Vertices, verts[:]...)
	mesh.Indices = append(mesh.Indices, base, base+1, base+2, base, base+2, base+3)
}

// GenerateMesh greedy-meshes the extruded grid: per axis direction, exposed
// same-color runs merge into maximal quads.
func GenerateMesh(store *Store) *Mesh {
	vol := buildVolume(store)
	mesh := &Mesh{}
	dims := [3]int{GridSize, GridSize, MaxHeight}

	for _, dir := range meshDirections {
		perp := 3 - dir.u - dir.v
		for p := 0; p < dims[perp]; p++ {
			mergeQuads(mesh, exposedMask(vol, dir, perp, p, dims), dir, perp, p, dims)
		}
	}
	return mesh
}
