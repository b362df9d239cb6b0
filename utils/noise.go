package utils

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/netshdev/isometric-voxel/api"
	"github.com/netshdev/isometric-voxel/voxel"
)

// generateNoiseStore fills a fresh store with the given percentage of cells,
// each given a random height and color.
func generateNoiseStore(percentage float64, r *rand.Rand) *voxel.Store {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	total := voxel.GridSize * voxel.GridSize
	want := int(float64(total)*(percentage/100.0) + 0.5)
	if want > total {
		want = total
	}

	// Fisher-Yates over the first 'want' cells only
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < want; i++ {
		j := i + r.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	store := voxel.NewStore()
	for k := 0; k < want; k++ {
		i := idx[k]
		x := i / voxel.GridSize
		y := i % voxel.GridSize
		h := voxel.MinHeight + r.Intn(voxel.MaxHeight-voxel.MinHeight+1)
		c := voxel.Color{R: uint8(r.Intn(256)), G: uint8(r.Intn(256)), B: uint8(r.Intn(256))}
		_ = store.Upsert(x, y, h, c)
	}
	return store
}

// RunGenerateNoiseScenes writes 'amount' SVG scenes named 0.svg..(amount-1).svg
// into outDir, each a random grid at the given fill percentage, lit at the
// given angle.
func RunGenerateNoiseScenes(percentage float64, amount int, outDir string, angle float64) error {
	if amount < 0 {
		amount = 0
	}
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < amount; i++ {
		store := generateNoiseStore(percentage, r)
		scene := voxel.Compose(store, angle)
		path := filepath.Join(outDir, fmt.Sprintf("%d.svg", i))
		if err := os.WriteFile(path, api.SceneToSVG(scene), 0644); err != nil {
			return err
		}
		slog.Info("noise scene written", "path", path, "voxels", store.Len())
	}
	return nil
}
