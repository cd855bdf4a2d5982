// Package pentomino encodes exact tiling of a board with the twelve free
// pentominoes as an exact-cover matrix: one strict item per board cell to
// be covered, one strict item per piece (each piece must be placed
// exactly once), and one option per (piece, orientation, position).
package pentomino

import (
	"sort"

	"github.com/kpitt/xcover/internal/set"
)

type point struct{ r, c int }

// Names are the conventional F I L N P T U V W X Y Z letters.
var Names = [12]string{"F", "I", "L", "N", "P", "T", "U", "V", "W", "X", "Y", "Z"}

// canonical gives one orientation of each of the twelve pentominoes as
// offsets from an arbitrary anchor cell. Every other orientation is
// generated from these by rotation and reflection.
var canonical = [12][]point{
	{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}}, // F
	{{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}}, // I
	{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {3, 1}}, // L
	{{0, 1}, {1, 1}, {2, 0}, {2, 1}, {3, 0}}, // N
	{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}}, // P
	{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {2, 1}}, // T
	{{0, 0}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}, // U
	{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}, // V
	{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}}, // W
	{{0, 1}, {1, 0}, {1, 1}, {1, 2}, {2, 1}}, // X
	{{0, 1}, {1, 0}, {1, 1}, {2, 1}, {3, 1}}, // Y
	{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {2, 2}}, // Z
}

// orientations returns every distinct cell-set reachable from shape by
// rotation and reflection (up to 8; fewer for symmetric pieces like I or
// X), each normalized to a minimal bounding box anchored at (0,0).
func orientations(shape []point) [][]point {
	seen := set.NewSet[string]()
	var out [][]point

	cur := shape
	for reflected := range 2 {
		for range 4 {
			norm := normalize(cur)
			key := key(norm)
			if !seen.Contains(key) {
				seen.Add(key)
				out = append(out, norm)
			}
			cur = rotate90(cur)
		}
		if reflected == 0 {
			cur = reflect(shape)
		}
	}
	return out
}

func rotate90(cells []point) []point {
	out := make([]point, len(cells))
	for i, p := range cells {
		out[i] = point{r: p.c, c: -p.r}
	}
	return out
}

func reflect(cells []point) []point {
	out := make([]point, len(cells))
	for i, p := range cells {
		out[i] = point{r: p.r, c: -p.c}
	}
	return out
}

func normalize(cells []point) []point {
	minR, minC := cells[0].r, cells[0].c
	for _, p := range cells {
		if p.r < minR {
			minR = p.r
		}
		if p.c < minC {
			minC = p.c
		}
	}
	out := make([]point, len(cells))
	for i, p := range cells {
		out[i] = point{r: p.r - minR, c: p.c - minC}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].r != out[j].r {
			return out[i].r < out[j].r
		}
		return out[i].c < out[j].c
	})
	return out
}

func key(cells []point) string {
	b := make([]byte, 0, len(cells)*4)
	for _, p := range cells {
		b = append(b, byte(p.r), byte(p.c), ';')
	}
	return string(b)
}
