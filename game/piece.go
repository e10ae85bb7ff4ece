package game

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// PieceID identifies one of the 21 standard pieces. IDs are ordered by cell count.
type PieceID int

const (
	Monomino PieceID = iota
	Domino
	I3
	V3
	I4
	L4
	T4
	O4
	Z4
	I5
	L5
	N5
	P5
	U5
	Y5
	T5
	V5
	W5
	Z5
	F5
	X5
	NumPieces
)

var (
	errEmptyShape        = errors.New("empty shape")
	errDimensionMismatch = errors.New("dimension mismatch")
)

// Offset is a cell position relative to a piece's anchor.
type Offset struct {
	Row int
	Col int
}

// Orientation is a sorted list of offsets whose minimum row and column are both 0.
type Orientation []Offset

// Height returns the number of rows spanned by the orientation.
func (o Orientation) Height() int {
	h := 0
	for _, off := range o {
		h = max(h, off.Row+1)
	}
	return h
}

// Width returns the number of columns spanned by the orientation.
func (o Orientation) Width() int {
	w := 0
	for _, off := range o {
		w = max(w, off.Col+1)
	}
	return w
}

func (o Orientation) key() string {
	var sb strings.Builder
	for _, off := range o {
		fmt.Fprintf(&sb, "%d,%d;", off.Row, off.Col)
	}
	return sb.String()
}

// String draws the orientation as rows of '#' and '_'.
func (o Orientation) String() string {
	grid := make([][]byte, o.Height())
	for r := range grid {
		grid[r] = []byte(strings.Repeat("_", o.Width()))
	}
	for _, off := range o {
		grid[off.Row][off.Col] = '#'
	}
	rows := make([]string, len(grid))
	for r, row := range grid {
		rows[r] = string(row)
	}
	return strings.Join(rows, "\n")
}

type pieceDef struct {
	name  string
	shape string
}

// Shapes use '#' for a filled cell, any other character for a gap.
var pieceDefs = [NumPieces]pieceDef{
	Monomino: {"monomino", "#"},
	Domino:   {"domino", "##"},
	I3:       {"I3", "###"},
	V3:       {"V3", "#_\n##"},
	I4:       {"I4", "####"},
	L4:       {"L4", "#__\n###"},
	T4:       {"T4", "_#_\n###"},
	O4:       {"O4", "##\n##"},
	Z4:       {"Z4", "##_\n_##"},
	I5:       {"I5", "#####"},
	L5:       {"L5", "#___\n####"},
	N5:       {"N5", "##__\n_###"},
	P5:       {"P5", "##_\n###"},
	U5:       {"U5", "#_#\n###"},
	Y5:       {"Y5", "__#_\n####"},
	T5:       {"T5", "#__\n###\n#__"},
	V5:       {"V5", "#__\n#__\n###"},
	W5:       {"W5", "#__\n##_\n_##"},
	Z5:       {"Z5", "#__\n###\n__#"},
	F5:       {"F5", "#__\n###\n_#_"},
	X5:       {"X5", "_#_\n###\n_#_"},
}

type catalog struct {
	orientations [NumPieces][]Orientation
	sizes        [NumPieces]int
}

var (
	catalogOnce sync.Once
	pieces      catalog
)

func loadCatalog() *catalog {
	catalogOnce.Do(func() {
		for id, def := range pieceDefs {
			base, err := parseShape(def.shape)
			if err != nil {
				panic(fmt.Sprintf("piece %s: %v", def.name, err))
			}
			pieces.sizes[id] = len(base)
			pieces.orientations[id] = symmetries(base)
		}
	})
	return &pieces
}

// parseShape reads a piece drawn as newline separated rows of equal length.
func parseShape(s string) (Orientation, error) {
	rows := strings.Split(s, "\n")
	width := len(rows[0])
	var cells Orientation
	for r, row := range rows {
		if len(row) != width {
			return nil, errDimensionMismatch
		}
		for c, ch := range row {
			if ch == '#' {
				cells = append(cells, Offset{Row: r, Col: c})
			}
		}
	}
	if len(cells) == 0 {
		return nil, errEmptyShape
	}
	return normalize(cells), nil
}

// normalize translates the cells so the minimum row and column are 0 and sorts them.
func normalize(cells []Offset) Orientation {
	minRow, minCol := cells[0].Row, cells[0].Col
	for _, c := range cells[1:] {
		minRow = min(minRow, c.Row)
		minCol = min(minCol, c.Col)
	}
	out := make(Orientation, len(cells))
	for i, c := range cells {
		out[i] = Offset{Row: c.Row - minRow, Col: c.Col - minCol}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func rotate90(o Orientation) Orientation {
	cells := make([]Offset, len(o))
	for i, off := range o {
		cells[i] = Offset{Row: off.Col, Col: -off.Row}
	}
	return normalize(cells)
}

func mirror(o Orientation) Orientation {
	cells := make([]Offset, len(o))
	for i, off := range o {
		cells[i] = Offset{Row: off.Row, Col: -off.Col}
	}
	return normalize(cells)
}

// Transform applies the given number of quarter turns, after mirroring when flipped.
func Transform(o Orientation, rotations int, flipped bool) Orientation {
	out := normalize(o)
	if flipped {
		out = mirror(out)
	}
	for i := 0; i < ((rotations%4)+4)%4; i++ {
		out = rotate90(out)
	}
	return out
}

// symmetries enumerates identity, r90, r180, r270, then the same after a mirror,
// keeping the first occurrence of each distinct shape.
func symmetries(base Orientation) []Orientation {
	seen := make(map[string]bool, 8)
	var out []Orientation
	for _, flipped := range []bool{false, true} {
		for rot := 0; rot < 4; rot++ {
			o := Transform(base, rot, flipped)
			k := o.key()
			if seen[k] {
				continue
			}
			seen[k] = true
			out = append(out, o)
		}
	}
	return out
}

// Orientations returns the distinct orientations of a piece in enumeration order.
// The returned slices are shared and must not be modified.
func Orientations(id PieceID) []Orientation {
	if !id.Valid() {
		return nil
	}
	return loadCatalog().orientations[id]
}

// OrientationIndex finds the catalog index of an orientation of the piece, or -1.
func OrientationIndex(id PieceID, o Orientation) int {
	k := normalize(o).key()
	for i, candidate := range Orientations(id) {
		if candidate.key() == k {
			return i
		}
	}
	return -1
}

// Valid reports whether the id names one of the standard pieces.
func (id PieceID) Valid() bool {
	return id >= 0 && id < NumPieces
}

// Size returns the number of cells covered by the piece.
func (id PieceID) Size() int {
	if !id.Valid() {
		return 0
	}
	return loadCatalog().sizes[id]
}

func (id PieceID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("piece(%d)", int(id))
	}
	return pieceDefs[id].name
}

// AllPieces returns every piece id in ascending order.
func AllPieces() []PieceID {
	ids := make([]PieceID, NumPieces)
	for i := range ids {
		ids[i] = PieceID(i)
	}
	return ids
}
