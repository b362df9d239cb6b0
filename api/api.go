// Package api provides in-memory conversions of engine output to exchange
// formats: SVG vector documents and GLB binary meshes.
package api

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/netshdev/isometric-voxel/voxel"
)

// strokeOffset darkens each face fill for its outline stroke.
const strokeOffset = -30

// SceneToSVG serializes a composed scene to an SVG document: the root
// element is sized to the viewport, the body is the ordered polygon list,
// each filled and stroked. Byte-deterministic for identical scenes.
func SceneToSVG(scene voxel.Scene) []byte {
	var buf bytes.Buffer
	vp := scene.Viewport
	fmt.Fprintf(&buf,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\" viewBox=\"%s %s %s %s\">\n",
		coord(vp.Width), coord(vp.Height),
		coord(vp.X), coord(vp.Y), coord(vp.Width), coord(vp.Height))
	for _, face := range scene.Faces {
		buf.WriteString("  <polygon points=\"")
		for i, p := range face.Polygon {
			if i > 0 {
				buf.WriteByte(' ')
			}
			buf.WriteString(coord(p.X))
			buf.WriteByte(',')
			buf.WriteString(coord(p.Y))
		}
		fmt.Fprintf(&buf, "\" fill=\"%s\" stroke=\"%s\" stroke-width=\"0.5\"/>\n",
			face.Fill, voxel.AdjustBrightness(face.Fill, strokeOffset))
	}
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// StoreToGLB greedy-meshes the extruded grid and encodes it as a glTF
// binary with per-vertex colors and flat normals.
func StoreToGLB(store *voxel.Store) ([]byte, error) {
	mesh := voxel.GenerateMesh(store)
	if len(mesh.Vertices) == 0 {
		return nil, fmt.Errorf("empty grid, nothing to mesh")
	}

	positions := make([][3]float32, len(mesh.Vertices))
	colors := make([][4]float32, len(mesh.Vertices))
	for i, v := range mesh.Vertices {
		positions[i] = v.Position
		colors[i] = voxel.VolumeColor(v.Color).RGBA()
	}
	indices := make([]uint32, len(mesh.Indices))
	copy(indices, mesh.Indices)

	// flat normals per face
	normals := make([][3]float32, len(positions))
	for i := 0; i < len(indices); i += 3 {
		v0, v1, v2 := indices[i], indices[i+1], indices[i+2]
		p0, p1, p2 := positions[v0], positions[v1], positions[v2]
		vec1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		vec2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		cross := [3]float32{
			vec1[1]*vec2[2] - vec1[2]*vec2[1],
			vec1[2]*vec2[0] - vec1[0]*vec2[2],
			vec1[0]*vec2[1] - vec1[1]*vec2[0],
		}
		length := float32(math.Sqrt(float64(cross[0]*cross[0] + cross[1]*cross[1] + cross[2]*cross[2])))
		if length > 0 {
			cross[0] /= length
			cross[1] /= length
			cross[2] /= length
		}
		normals[v0] = cross
		normals[v1] = cross
		normals[v2] = cross
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "isometric-voxel"
	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	colorAccessor := modeler.WriteColor(doc, colors)
	indicesAccessor := modeler.WriteIndices(doc, indices)
	prim := &gltf.Primitive{
		Attributes: map[string]int{
			gltf.POSITION: posAccessor,
			gltf.NORMAL:   normalAccessor,
			gltf.COLOR_0:  colorAccessor,
		},
		Indices: gltf.Index(indicesAccessor),
	}
	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float64{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	material := &gltf.Material{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}
	doc.Materials = []*gltf.Material{material}
	prim.Material = gltf.Index(0)
	meshGltf := &gltf.Mesh{Name: "VoxelGrid", Primitives: []*gltf.Primitive{prim}}
	doc.Meshes = []*gltf.Mesh{meshGltf}
	node := &gltf.Node{Mesh: gltf.Index(0)}
	doc.Nodes = []*gltf.Node{node}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)

	var out bytes.Buffer
	enc := gltf.NewEncoder(&out)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
