package main

import (
	"fmt"
	"os"

	"github.com/netshdev/isometric-voxel/utils"
	"github.com/netshdev/isometric-voxel/voxel"
)

func usage() {
	fmt.Println("Usage: voxeltool <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  svg script.txt output.svg [angle]        (replay paint script, export SVG scene)")
	fmt.Println("  glb script.txt output.glb                (replay paint script, export GLB mesh)")
	fmt.Println("  gennoise <percentage> <amount> <output_dir> [angle]  (generate random SVG scenes)")
	fmt.Println("  contrast #RRGGBB #RRGGBB                 (print the WCAG contrast ratio)")
}

func parseAngle(arg string) (float64, error) {
	var angle float64
	if _, err := fmt.Sscan(arg, &angle); err != nil {
		return 0, fmt.Errorf("bad angle %q: %w", arg, err)
	}
	return angle, nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "svg":
		if len(os.Args) != 4 && len(os.Args) != 5 {
			usage()
			os.Exit(1)
		}
		angle := 45.0
		if len(os.Args) == 5 {
			a, err := parseAngle(os.Args[4])
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			angle = a
		}
		if err := utils.RunScriptToSVG(os.Args[2], os.Args[3], angle); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "glb":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunScriptToGLB(os.Args[2], os.Args[3]); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "gennoise":
		if len(os.Args) != 5 && len(os.Args) != 6 {
			usage()
			os.Exit(1)
		}
		var perc float64
		var amt int
		if _, err := fmt.Sscan(os.Args[2], &perc); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		if _, err := fmt.Sscan(os.Args[3], &amt); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		angle := 45.0
		if len(os.Args) == 6 {
			a, err := parseAngle(os.Args[5])
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			angle = a
		}
		if err := utils.RunGenerateNoiseScenes(perc, amt, os.Args[4], angle); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "contrast":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		a, err := voxel.ParseColor(os.Args[2])
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		b, err := voxel.ParseColor(os.Args[3])
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		fmt.Printf("%.2f\n", voxel.ContrastRatio(a, b))
	default:
		usage()
		os.Exit(1)
	}
}
