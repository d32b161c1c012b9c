package model

import "slices"

// Space is one square of the grid
type Space struct {
	Letter           rune // 0 means empty
	Blank            bool
	LetterMultiplier int
	WordMultiplier   int
	FrozenValue      int // base value of the committed tile, 0 until committed
}

// IsEmpty returns true if no tile sits on the space
func (s *Space) IsEmpty() bool {
	return s.Letter == 0
}

// TileValue is the unmultiplied value of the tile on the space
func (s *Space) TileValue() int {
	if s.IsEmpty() || s.Blank {
		return 0
	}
	return LetterValue(s.Letter)
}

// Tile returns the tile on the space
func (s *Space) Tile() Tile {
	return Tile{Letter: s.Letter, Blank: s.Blank}
}

// Board is the game grid together with the tiles staged this turn and
// the frontier of cells a new play may touch
type Board struct {
	Spaces   [BoardSize][BoardSize]Space
	Staged   []Position // placement order of uncommitted tiles
	Frontier *Frontier
}

// NewBoard creates an empty board with the standard premium layout.
// The frontier starts as the center square.
func NewBoard() *Board {
	b := &Board{Frontier: NewFrontier(Center)}
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			lm, wm := premiumAt(row, col)
			b.Spaces[row][col] = Space{LetterMultiplier: lm, WordMultiplier: wm}
		}
	}
	return b
}

// Space returns the space at the position, or nil if out of bounds
func (b *Board) Space(pos Position) *Space {
	if !pos.IsValid() {
		return nil
	}
	return &b.Spaces[pos.Row][pos.Col]
}

// Get returns the letter at the given position, or 0 if empty or out of bounds
func (b *Board) Get(pos Position) rune {
	if !pos.IsValid() {
		return 0
	}
	return b.Spaces[pos.Row][pos.Col].Letter
}

// IsEmpty returns true if the cell is on the board and has no tile
func (b *Board) IsEmpty(pos Position) bool {
	return pos.IsValid() && b.Spaces[pos.Row][pos.Col].IsEmpty()
}

// IsOccupied returns true if the cell is on the board and has a tile
func (b *Board) IsOccupied(pos Position) bool {
	return pos.IsValid() && !b.Spaces[pos.Row][pos.Col].IsEmpty()
}

// IsStaged reports whether the position holds an uncommitted tile
func (b *Board) IsStaged(pos Position) bool {
	return slices.Contains(b.Staged, pos)
}

// Stage places an uncommitted tile
func (b *Board) Stage(tile Tile, pos Position) error {
	if !pos.IsValid() {
		return ErrInvalidPosition
	}
	space := &b.Spaces[pos.Row][pos.Col]
	if !space.IsEmpty() {
		return ErrCellOccupied
	}
	letter, err := NormalizeLetter(tile.Letter)
	if err != nil {
		return err
	}
	space.Letter = letter
	space.Blank = tile.Blank
	b.Staged = append(b.Staged, pos)
	return nil
}

// Unstage removes the uncommitted tile at the position and returns it
func (b *Board) Unstage(pos Position) (Tile, error) {
	i := slices.Index(b.Staged, pos)
	if i < 0 {
		return Tile{}, ErrNotStaged
	}
	space := &b.Spaces[pos.Row][pos.Col]
	tile := space.Tile()
	space.Letter = 0
	space.Blank = false
	b.Staged = slices.Delete(b.Staged, i, i+1)
	return tile, nil
}

// UnstageAll clears every uncommitted tile, returning them in placement order
func (b *Board) UnstageAll() []Tile {
	tiles := make([]Tile, 0, len(b.Staged))
	for _, pos := range b.Staged {
		space := &b.Spaces[pos.Row][pos.Col]
		tiles = append(tiles, space.Tile())
		space.Letter = 0
		space.Blank = false
	}
	b.Staged = b.Staged[:0]
	return tiles
}

// StagedPlacements returns the staged tiles in placement order
func (b *Board) StagedPlacements() []Placement {
	result := make([]Placement, 0, len(b.Staged))
	for _, pos := range b.Staged {
		result = append(result, Placement{Position: pos, Tile: b.Spaces[pos.Row][pos.Col].Tile()})
	}
	return result
}

// Bounds returns the first and last coordinate of the occupied run through
// the position along the axis. ok is false if the cell is empty.
func (b *Board) Bounds(pos Position, axis Axis) (start, end int, ok bool) {
	if !b.IsOccupied(pos) {
		return 0, 0, false
	}
	first := pos
	for b.IsOccupied(first.Step(axis, -1)) {
		first = first.Step(axis, -1)
	}
	last := pos
	for b.IsOccupied(last.Step(axis, 1)) {
		last = last.Step(axis, 1)
	}
	return first.Coord(axis), last.Coord(axis), true
}

// WordThrough returns the word through the position along the axis.
// ok is false if the cell is empty or the run is a single letter.
func (b *Board) WordThrough(pos Position, axis Axis) (string, bool) {
	start, end, ok := b.Bounds(pos, axis)
	if !ok || start == end {
		return "", false
	}
	letters := make([]rune, 0, end-start+1)
	for i := start; i <= end; i++ {
		letters = append(letters, b.Get(LineAt(pos, axis, i)))
	}
	return string(letters), true
}

// Commit freezes the staged tiles and updates the frontier. It performs no
// validation; callers validate and score first.
func (b *Board) Commit() {
	for _, pos := range b.Staged {
		space := &b.Spaces[pos.Row][pos.Col]
		space.FrozenValue = space.TileValue()
		b.Frontier.Remove(pos)
		for _, n := range pos.Neighbors() {
			if b.IsEmpty(n) {
				b.Frontier.Add(n)
			}
		}
	}
	b.Staged = b.Staged[:0]
}

// TileCount returns the number of tiles on the board, staged or not
func (b *Board) TileCount() int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if !b.Spaces[row][col].IsEmpty() {
				count++
			}
		}
	}
	return count
}

// LineAt returns the cell at coordinate i on the line through pos along axis
func LineAt(pos Position, axis Axis, i int) Position {
	if axis == Across {
		return Position{Row: pos.Row, Col: i}
	}
	return Position{Row: i, Col: pos.Col}
}
