package model

import (
	"cmp"
	"fmt"
	"strings"
)

// BoardSize is the width and height of the grid
const BoardSize = 15

// Center is the square the opening play must cover
var Center = Position{Row: BoardSize / 2, Col: BoardSize / 2}

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// IsValid returns true if the position is within bounds
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Step moves the position delta cells along the axis
func (p Position) Step(axis Axis, delta int) Position {
	if axis == Across {
		return Position{Row: p.Row, Col: p.Col + delta}
	}
	return Position{Row: p.Row + delta, Col: p.Col}
}

// Coord returns the coordinate that varies along the axis
func (p Position) Coord(axis Axis) int {
	if axis == Across {
		return p.Col
	}
	return p.Row
}

// Neighbors returns the orthogonal neighbors that lie on the board,
// in up, down, left, right order
func (p Position) Neighbors() []Position {
	candidates := []Position{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}
	result := make([]Position, 0, len(candidates))
	for _, c := range candidates {
		if c.IsValid() {
			result = append(result, c)
		}
	}
	return result
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// ComparePositions orders positions by row, then column
func ComparePositions(a, b Position) int {
	if c := cmp.Compare(a.Row, b.Row); c != 0 {
		return c
	}
	return cmp.Compare(a.Col, b.Col)
}

// Axis is the direction a word runs in
type Axis int

const (
	Across Axis = iota // row fixed, column varies
	Down               // column fixed, row varies
)

// Orthogonal returns the crossing axis
func (a Axis) Orthogonal() Axis {
	if a == Across {
		return Down
	}
	return Across
}

func (a Axis) String() string {
	if a == Across {
		return "across"
	}
	return "down"
}

// ParseAxis parses "across"/"a" or "down"/"d"
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "across", "a", "h":
		return Across, nil
	case "down", "d", "v":
		return Down, nil
	default:
		return Across, fmt.Errorf("invalid axis %q", s)
	}
}
