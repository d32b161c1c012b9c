package model

import "fmt"

// MoveKind distinguishes a found play from the absence of one
type MoveKind int

const (
	MoveNone MoveKind = iota // no legal play exists
	MovePlay                 // a legal placement
)

// Move is the outcome of a move search
type Move struct {
	Kind       MoveKind
	Word       string
	Score      int
	Start      Position // first cell of the main word
	Axis       Axis
	Placements []Placement // tiles to stage, in placement order
}

// NoMove returns the result used when no legal play exists
func NoMove() Move {
	return Move{Kind: MoveNone}
}

// Found returns true if the move is a play
func (m Move) Found() bool {
	return m.Kind == MovePlay
}

func (m Move) String() string {
	if !m.Found() {
		return "no move"
	}
	return fmt.Sprintf("%s at %s %s for %d", m.Word, m.Start, m.Axis, m.Score)
}
