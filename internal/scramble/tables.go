package scramble

import "fmt"

// Table is the move set of one puzzle size.
//
// Axes groups layers that turn about the same axis; turns on one axis
// commute, so a layer repeated with only same-axis turns in between is
// redundant. Sides groups the three turns ("", "'", "2") of one layer.
type Table struct {
	Puzzle int
	Moves  []string
	Axes   [][]string
	Sides  [][]string

	axisOf map[string]int
	sideOf map[string]int
}

// MinPuzzle and MaxPuzzle bound the supported cube sizes.
const (
	MinPuzzle = 2
	MaxPuzzle = 7
)

var suffixes = []string{"", "'", "2"}

// layers per puzzle, grouped by axis: R/L, U/D, F/B. A 2x2 only turns
// R, U and F, so each of its axes holds a single layer.
var layers = map[int][3][]string{
	2: {{"R"}, {"U"}, {"F"}},
	3: {{"R", "L"}, {"U", "D"}, {"F", "B"}},
	4: {{"R", "L", "Rw"}, {"U", "D", "Uw"}, {"F", "B", "Fw"}},
	5: {{"R", "L", "Rw", "Lw"}, {"U", "D", "Uw", "Dw"}, {"F", "B", "Fw", "Bw"}},
	6: {
		{"R", "L", "Rw", "Lw", "3Rw"},
		{"U", "D", "Uw", "Dw", "3Uw"},
		{"F", "B", "Fw", "Bw", "3Fw"},
	},
	7: {
		{"R", "L", "Rw", "Lw", "3Rw", "3Lw"},
		{"U", "D", "Uw", "Dw", "3Uw", "3Dw"},
		{"F", "B", "Fw", "Bw", "3Fw", "3Bw"},
	},
}

var defaultLengths = map[int]int{2: 11, 3: 20, 4: 40, 5: 60, 6: 80, 7: 100}

var tables = func() map[int]*Table {
	out := make(map[int]*Table, len(layers))
	for puzzle, axes := range layers {
		t := &Table{Puzzle: puzzle, axisOf: map[string]int{}, sideOf: map[string]int{}}
		for _, axisLayers := range axes {
			var axis []string
			for _, layer := range axisLayers {
				var side []string
				for _, s := range suffixes {
					m := layer + s
					t.Moves = append(t.Moves, m)
					t.axisOf[m] = len(t.Axes)
					t.sideOf[m] = len(t.Sides)
					side = append(side, m)
					axis = append(axis, m)
				}
				t.Sides = append(t.Sides, side)
			}
			t.Axes = append(t.Axes, axis)
		}
		out[puzzle] = t
	}
	return out
}()

// TableFor returns the move table for a puzzle size.
func TableFor(puzzle int) (*Table, error) {
	t, ok := tables[puzzle]
	if !ok {
		return nil, fmt.Errorf("%w: %d (want %d-%d)", ErrUnknownPuzzle, puzzle, MinPuzzle, MaxPuzzle)
	}
	return t, nil
}

// DefaultLength is the customary scramble length for a puzzle size, or 0
// when the size is unknown.
func DefaultLength(puzzle int) int { return defaultLengths[puzzle] }

// Axis returns the index of the move's axis group, or -1.
func (t *Table) Axis(move string) int {
	if i, ok := t.axisOf[move]; ok {
		return i
	}
	return -1
}

// Side returns the index of the move's side group, or -1.
func (t *Table) Side(move string) int {
	if i, ok := t.sideOf[move]; ok {
		return i
	}
	return -1
}
