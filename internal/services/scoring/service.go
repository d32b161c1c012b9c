package scoring

import (
	"github.com/samber/lo"

	"github.com/mcoot/scrabbler/internal/model"
)

// BingoBonus is awarded for playing a full rack in one turn
const BingoBonus = 50

// Service scores the tiles staged on a board
type Service struct{}

// New creates a new ScoringService
func New() *Service {
	return &Service{}
}

// Score returns the value of the staged play: the main word, times the word
// multipliers of the newly covered squares, plus every crossing word formed.
// It returns 0 when nothing is staged or the staged tiles share no line.
func (s *Service) Score(board *model.Board) int {
	staged := board.Staged
	switch len(staged) {
	case 0:
		return 0
	case 1:
		return s.ScoreAxis(board, staged[0], model.Across) + s.ScoreAxis(board, staged[0], model.Down)
	}

	axis, ok := StagedAxis(board)
	if !ok {
		return 0
	}

	wordMult := 1
	for _, pos := range staged {
		wordMult *= board.Space(pos).WordMultiplier
	}
	crossSum := lo.SumBy(staged, func(pos model.Position) int {
		return s.ScoreAxis(board, pos, axis.Orthogonal())
	})

	origin := staged[0]
	start, end, _ := board.Bounds(origin, axis)
	mainScore := 0
	for i := start; i <= end; i++ {
		pos := model.LineAt(origin, axis, i)
		space := board.Space(pos)
		if board.IsStaged(pos) {
			mainScore += space.LetterMultiplier * space.TileValue()
		} else {
			mainScore += space.FrozenValue
		}
	}

	total := mainScore*wordMult + crossSum
	if len(staged) >= model.RackSize {
		total += BingoBonus
	}
	return total
}

// ScoreAxis scores the word through pos along axis with only pos's premium
// square applied. It returns 0 when no multi-letter word runs that way.
func (s *Service) ScoreAxis(board *model.Board, pos model.Position, axis model.Axis) int {
	start, end, ok := board.Bounds(pos, axis)
	if !ok || start == end {
		return 0
	}

	sum := 0
	for i := start; i <= end; i++ {
		sum += board.Space(model.LineAt(pos, axis, i)).TileValue()
	}

	space := board.Space(pos)
	value := space.TileValue()
	sum -= value
	sum += value * space.LetterMultiplier
	return sum * space.WordMultiplier
}

// StagedAxis returns the line shared by all staged tiles. ok is false when
// fewer than two tiles are staged or they span more than one row and column.
func StagedAxis(board *model.Board) (axis model.Axis, ok bool) {
	staged := board.Staged
	if len(staged) < 2 {
		return model.Across, false
	}
	first := staged[0]
	sameRow, sameCol := true, true
	for _, pos := range staged[1:] {
		sameRow = sameRow && pos.Row == first.Row
		sameCol = sameCol && pos.Col == first.Col
	}
	switch {
	case sameRow:
		return model.Across, true
	case sameCol:
		return model.Down, true
	default:
		return model.Across, false
	}
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(board *model.Board) int
	ScoreAxis(board *model.Board, pos model.Position, axis model.Axis) int
}

var _ ServiceInterface = (*Service)(nil)
