package utils

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/netshdev/isometric-voxel/voxel"
)

func TestApplyScript(t *testing.T) {
	script := `
// a small scene
# hash comments work too
paint 0 0 3 #3B82F6
paint 1 0 2 #FF0000
erase 1 0

paint 2 2 1 #00FF00
undo
redo
`
	e := voxel.NewEngine()
	if err := ApplyScript(e, strings.NewReader(script)); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if !e.HasVoxel(0, 0) || e.HasVoxel(1, 0) || !e.HasVoxel(2, 2) {
		t.Fatalf("unexpected grid state after script")
	}
	v, _ := e.GetVoxel(0, 0)
	if v.Height != 3 || v.Color.String() != "#3B82F6" {
		t.Fatalf("wrong voxel: %+v", v)
	}
}

func TestApplyScript_Clear(t *testing.T) {
	script := "paint 0 0 1 #111111\npaint 1 1 1 #222222\nclear\n"
	e := voxel.NewEngine()
	if err := ApplyScript(e, strings.NewReader(script)); err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if e.HasVoxel(0, 0) || e.HasVoxel(1, 1) {
		t.Fatalf("clear did not empty the grid")
	}
}

func TestApplyScript_Errors(t *testing.T) {
	e := voxel.NewEngine()
	err := ApplyScript(e, strings.NewReader("paint 0 0 1 #111111\nexplode 1 2\n"))
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line 2 error, got %v", err)
	}

	err = ApplyScript(voxel.NewEngine(), strings.NewReader("paint 0 0 1 banana\n"))
	if !errors.Is(err, voxel.ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}

	err = ApplyScript(voxel.NewEngine(), strings.NewReader("paint 50 0 1 #111111\n"))
	if !errors.Is(err, voxel.ErrInvalidCoordinate) {
		t.Fatalf("expected ErrInvalidCoordinate, got %v", err)
	}

	err = ApplyScript(voxel.NewEngine(), strings.NewReader("paint 0 0\n"))
	if err == nil {
		t.Fatalf("expected arity error")
	}
}

func TestRunScriptToSVG(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "scene.txt")
	outPath := filepath.Join(dir, "scene.svg")
	script := "paint 0 0 1 #3B82F6\npaint 1 1 4 #FF8800\n"
	if err := os.WriteFile(scriptPath, []byte(script), 0644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if err := RunScriptToSVG(scriptPath, outPath, 45); err != nil {
		t.Fatalf("RunScriptToSVG failed: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if got := strings.Count(string(data), "<polygon"); got != 6 {
		t.Fatalf("want 6 polygons, got %d", got)
	}
}

func TestRunScriptToGLB(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "scene.txt")
	outPath := filepath.Join(dir, "scene.glb")
	if err := os.WriteFile(scriptPath, []byte("paint 3 3 5 #44AA88\n"), 0644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if err := RunScriptToGLB(scriptPath, outPath); err != nil {
		t.Fatalf("RunScriptToGLB failed: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(data) < 4 || string(data[:4]) != "glTF" {
		t.Fatalf("output is not a glb")
	}
}

func TestRunGenerateNoiseScenes(t *testing.T) {
	dir := t.TempDir()
	if err := RunGenerateNoiseScenes(25, 3, dir, 45); err != nil {
		t.Fatalf("gennoise failed: %v", err)
	}
	for i := 0; i < 3; i++ {
		data, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("%d.svg", i)))
		if err != nil {
			t.Fatalf("missing scene %d: %v", i, err)
		}
		if !strings.HasPrefix(string(data), "<svg") {
			t.Fatalf("scene %d is not an svg", i)
		}
	}
}
