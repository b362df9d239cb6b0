package utils

import (
	"log/slog"
	"os"

	"github.com/netshdev/isometric-voxel/api"
)

// RunScriptToSVG replays a paint script and writes the composed scene as an
// SVG document under the given lighting angle in degrees.
func RunScriptToSVG(scriptPath, outPath string, angle float64) error {
	e, err := RunScriptFile(scriptPath)
	if err != nil {
		return err
	}
	scene := e.RenderScene(angle)
	data := api.SceneToSVG(scene)
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return err
	}
	slog.Info("svg written", "path", outPath, "faces", len(scene.Faces), "bytes", len(data))
	return nil
}

// RunScriptToGLB replays a paint script and writes the extruded grid as a
// glTF binary mesh.
func RunScriptToGLB(scriptPath, outPath string) error {
	e, err := RunScriptFile(scriptPath)
	if err != nil {
		return err
	}
	data, err := api.StoreToGLB(e.Store())
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return err
	}
	slog.Info("glb written", "path", outPath, "bytes", len(data))
	return nil
}
