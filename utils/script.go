// Package utils implements the file-based commands behind the CLI: paint
// scripts, SVG/GLB export and noise scene generation.
package utils

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/netshdev/isometric-voxel/voxel"
)

// ApplyScript feeds a line-oriented stream of edit events to the engine.
// Commands, one per line:
//
//	paint x y height #RRGGBB
//	erase x y
//	clear
//	undo
//	redo
//
// Blank lines and comment lines starting with # or // are ignored (only
// whole lines; a # color argument is never a comment). Errors carry the
// line number.
func ApplyScript(e *voxel.Engine, r io.Reader) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		fields := splitFields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := applyCommand(e, fields); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	return sc.Err()
}

func splitFields(line string) []string {
	fields := strings.Fields(line)
	if len(fields) > 0 &&
		(strings.HasPrefix(fields[0], "#") || strings.HasPrefix(fields[0], "//")) {
		return nil
	}
	return fields
}

func applyCommand(e *voxel.Engine, fields []string) error {
	switch fields[0] {
	case "paint":
		if len(fields) != 5 {
			return fmt.Errorf("paint wants: paint x y height color")
		}
		x, y, err := parseCoords(fields[1], fields[2])
		if err != nil {
			return err
		}
		h, err := strconv.Atoi(fields[3])
		if err != nil {
			return fmt.Errorf("bad height %q: %w", fields[3], err)
		}
		return e.UpsertVoxel(x, y, h, fields[4])
	case "erase":
		if len(fields) != 3 {
			return fmt.Errorf("erase wants: erase x y")
		}
		x, y, err := parseCoords(fields[1], fields[2])
		if err != nil {
			return err
		}
		e.RemoveVoxel(x, y)
		return nil
	case "clear":
		e.Clear()
		return nil
	case "undo":
		e.Undo()
		return nil
	case "redo":
		e.Redo()
		return nil
	default:
		return fmt.Errorf("unknown command %q", fields[0])
	}
}

func parseCoords(xs, ys string) (int, int, error) {
	x, err := strconv.Atoi(xs)
	if err != nil {
		return 0, 0, fmt.Errorf("bad x %q: %w", xs, err)
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, fmt.Errorf("bad y %q: %w", ys, err)
	}
	return x, y, nil
}

// RunScriptFile replays a paint script from disk into a fresh engine.
func RunScriptFile(path string) (*voxel.Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	e := voxel.NewEngine()
	if err := ApplyScript(e, f); err != nil {
		return nil, err
	}
	return e, nil
}
