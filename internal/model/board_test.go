package model

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type BoardSuite struct {
	suite.Suite
	board *Board
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) SetupTest() {
	s.board = NewBoard()
}

func at(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (s *BoardSuite) commit(letters string, positions ...Position) {
	for i, letter := range letters {
		s.Require().NoError(s.board.Stage(Tile{Letter: letter}, positions[i]))
	}
	s.board.Commit()
}

func (s *BoardSuite) TestFrontierStartsAtCenter() {
	s.Equal([]Position{Center}, s.board.Frontier.Positions())
}

func (s *BoardSuite) TestFrontierAtTopLeftCorner() {
	s.commit("AB", at(0, 0), at(0, 1))

	s.Equal([]Position{at(0, 2), at(1, 0), at(1, 1), Center}, s.board.Frontier.Positions())
	s.Empty(s.board.Staged)
}

func (s *BoardSuite) TestFrontierAtBottomRightCorner() {
	s.commit("A", at(14, 14))

	s.Equal([]Position{Center, at(13, 14), at(14, 13)}, s.board.Frontier.Positions())
}

func (s *BoardSuite) TestFrontierAlongEdge() {
	s.commit("ABC", at(6, 14), at(7, 14), at(8, 14))

	s.Equal([]Position{
		at(5, 14), at(6, 13), Center, at(7, 13), at(8, 13), at(9, 14),
	}, s.board.Frontier.Positions())
}

func (s *BoardSuite) TestCommitFreezesValues() {
	s.Require().NoError(s.board.Stage(Tile{Letter: 'Q', Blank: true}, at(7, 7)))
	s.Require().NoError(s.board.Stage(Tile{Letter: 'Z'}, at(7, 8)))
	s.board.Commit()

	s.Equal(0, s.board.Space(at(7, 7)).FrozenValue)
	s.Equal(10, s.board.Space(at(7, 8)).FrozenValue)
	s.False(s.board.Frontier.Contains(at(7, 7)))
	s.Equal(2, s.board.TileCount())
}

func (s *BoardSuite) TestStageChecksOccupancyFirst() {
	s.commit("A", Center)

	s.ErrorIs(s.board.Stage(Tile{Letter: '3'}, Center), ErrCellOccupied)
	s.ErrorIs(s.board.Stage(Tile{Letter: '3'}, at(0, 0)), ErrInvalidLetter)
	s.ErrorIs(s.board.Stage(Tile{Letter: 'A'}, at(-1, 0)), ErrInvalidPosition)
	s.Empty(s.board.Staged)
}

func (s *BoardSuite) TestUnstage() {
	s.Require().NoError(s.board.Stage(Tile{Letter: 'e'}, Center))
	s.Equal('E', s.board.Get(Center))

	tile, err := s.board.Unstage(Center)
	s.Require().NoError(err)
	s.Equal(Tile{Letter: 'E'}, tile)
	s.True(s.board.IsEmpty(Center))

	_, err = s.board.Unstage(Center)
	s.ErrorIs(err, ErrNotStaged)
}
