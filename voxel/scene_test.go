package voxel

import (
	"reflect"
	"testing"
)

func TestCompose_EmptyStore(t *testing.T) {
	scene := Compose(NewStore(), 45)
	if len(scene.Faces) != 0 {
		t.Fatalf("empty store produced %d faces", len(scene.Faces))
	}
	want := Viewport{X: 0, Y: 0, Width: GridSize * Scale, Height: GridSize * Scale}
	if scene.Viewport != want {
		t.Fatalf("default viewport = %+v, want %+v", scene.Viewport, want)
	}
}

func TestCompose_SingleVoxel(t *testing.T) {
	s := NewStore()
	base, _ := ParseColor("#3B82F6")
	if err := s.Upsert(0, 0, 1, base); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	scene := Compose(s, 45)
	if len(scene.Faces) != 3 {
		t.Fatalf("want 3 faces, got %d", len(scene.Faces))
	}
	// emission order: right, left, top
	if scene.Faces[0].Kind != FaceRight || scene.Faces[1].Kind != FaceLeft || scene.Faces[2].Kind != FaceTop {
		t.Fatalf("wrong face order: %v %v %v",
			scene.Faces[0].Kind, scene.Faces[1].Kind, scene.Faces[2].Kind)
	}
	if got := scene.Faces[2].Fill; got != base {
		t.Fatalf("top fill = %s, want base color unchanged", got)
	}
	if got := scene.Faces[1].Fill.String(); got != "#2E75E9" {
		t.Fatalf("left fill = %s, want #2E75E9", got)
	}
	if got := scene.Faces[0].Fill.String(); got != "#246BDF" {
		t.Fatalf("right fill = %s, want #246BDF", got)
	}
}

func TestCompose_Viewport(t *testing.T) {
	s := NewStore()
	c, _ := ParseColor("#FFFFFF")
	_ = s.Upsert(0, 0, 1, c)
	scene := Compose(s, 0)

	left := Project(0, 1, 0)
	right := Project(1, 0, 0)
	top := Project(0, 0, 1)
	bottom := Project(1, 1, 0)
	wantX := left.X - Padding
	wantY := top.Y - Padding
	wantW := right.X - left.X + 2*Padding
	wantH := bottom.Y - top.Y + 2*Padding
	vp := scene.Viewport
	if vp.X != wantX || vp.Y != wantY || vp.Width != wantW || vp.Height != wantH {
		t.Fatalf("viewport = %+v, want {%v %v %v %v}", vp, wantX, wantY, wantW, wantH)
	}
}

func TestCompose_PainterOrdering(t *testing.T) {
	s := NewStore()
	a, _ := ParseColor("#FF0000")
	b, _ := ParseColor("#00FF00")
	_ = s.Upsert(1, 0, 2, b) // sort key 100
	_ = s.Upsert(0, 5, 2, a) // sort key 5, paints first
	scene := Compose(s, 45)
	if len(scene.Faces) != 6 {
		t.Fatalf("want 6 faces, got %d", len(scene.Faces))
	}
	if scene.Faces[2].Fill != a {
		t.Fatalf("first voxel top fill = %s, want %s", scene.Faces[2].Fill, a)
	}
	if scene.Faces[5].Fill != b {
		t.Fatalf("second voxel top fill = %s, want %s", scene.Faces[5].Fill, b)
	}
}

func TestCompose_Deterministic(t *testing.T) {
	s := NewStore()
	c, _ := ParseColor("#8833AA")
	_ = s.Upsert(2, 3, 4, c)
	_ = s.Upsert(7, 1, 9, c)
	_ = s.Upsert(0, 0, 1, c)

	s1 := Compose(s, 123.4)
	s2 := Compose(s, 123.4)
	if !reflect.DeepEqual(s1, s2) {
		t.Fatalf("identical inputs produced different scenes")
	}
}

func TestCompose_AngleWraps(t *testing.T) {
	s := NewStore()
	c, _ := ParseColor("#336699")
	_ = s.Upsert(4, 4, 3, c)
	if !reflect.DeepEqual(Compose(s, 45), Compose(s, 405)) {
		t.Fatalf("angle 405 differs from 45")
	}
	if !reflect.DeepEqual(Compose(s, 45), Compose(s, -315)) {
		t.Fatalf("angle -315 differs from 45")
	}
}
