package export

import "strings"

// CellKind distinguishes playable cells from blocked filler.
type CellKind int

const (
	// CellBlocked is filler: never part of any answer.
	CellBlocked CellKind = iota
	// CellOpen is part of at least one answer.
	CellOpen
)

// GridCell is one cell of a reconstructed puzzle grid. Number is the clue
// number shown in the cell (0 when none); Letter is the solution letter
// (zero when unknown), used for answer keys and letter grids.
type GridCell struct {
	Kind   CellKind
	Number int
	Letter rune
}

// Grid is a dense rows×cols matrix rebuilt from sparse placements.
type Grid struct {
	Rows  int
	Cols  int
	Cells [][]GridCell
}

// Direction of a placement walk.
type Direction int

const (
	DirAcross Direction = iota
	DirDown
)

// ParseDirection maps the loose direction vocabulary of generated payloads
// onto the two walk directions. Unrecognized values default to across.
func ParseDirection(raw string) Direction {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "down", "vertical", "south":
		return DirDown
	}
	return DirAcross
}

// NewGrid allocates an all-blocked grid. Non-positive dimensions yield an
// empty grid rather than failing; malformed sizes must not abort an export.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	g := &Grid{Rows: rows, Cols: cols}
	g.Cells = make([][]GridCell, rows)
	for r := range g.Cells {
		g.Cells[r] = make([]GridCell, cols)
	}
	return g
}

// At returns the cell at (row, col), or nil when out of bounds.
func (g *Grid) At(row, col int) *GridCell {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return nil
	}
	return &g.Cells[row][col]
}

// place walks the answer from start in the given direction, opening each
// visited cell and recording letters. Cells falling outside the grid are
// silently dropped: AI-generated coordinates overrun the declared size
// often enough that clipping beats failing. The first cell of the walk gets
// the clue number unless an earlier placement already numbered it
// (first-writer-wins — a cell may start both an across and a down clue).
func (g *Grid) place(answer string, start GridPosition, dir Direction, number int) {
	row, col := int(start.Row), int(start.Col)
	for i, letter := range []rune(answer) {
		r, c := row, col
		if dir == DirAcross {
			c += i
		} else {
			r += i
		}
		cell := g.At(r, c)
		if cell == nil {
			continue
		}
		cell.Kind = CellOpen
		if cell.Letter == 0 {
			cell.Letter = letter
		}
		if i == 0 && number > 0 && cell.Number == 0 {
			cell.Number = number
		}
	}
}

// BuildCrosswordGrid reconstructs the full crossword matrix from the sparse
// clue lists. Deterministic: identical clues and size always produce an
// identical grid.
func BuildCrosswordGrid(clues CrosswordClues, size GridSize) *Grid {
	g := NewGrid(int(size.Rows), int(size.Cols))
	for _, clue := range clues.Across {
		g.place(clue.Answer, clue.Position, DirAcross, int(clue.Number))
	}
	for _, clue := range clues.Down {
		g.place(clue.Answer, clue.Position, DirDown, int(clue.Number))
	}
	return g
}

// BuildWordSearchGrid reconstructs a letter grid from word placements, for
// payloads where the generator emitted positions instead of the full grid.
// Words without a placement contribute nothing.
func BuildWordSearchGrid(words []WordEntry, size GridSize) *Grid {
	g := NewGrid(int(size.Rows), int(size.Cols))
	for _, w := range words {
		if w.Position == nil || w.Word == "" {
			continue
		}
		g.place(strings.ToUpper(w.Word), *w.Position, ParseDirection(w.Direction), 0)
	}
	return g
}

// OpenCount returns the number of open cells, mostly for tests and logs.
func (g *Grid) OpenCount() int {
	n := 0
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.Cells[r][c].Kind == CellOpen {
				n++
			}
		}
	}
	return n
}
