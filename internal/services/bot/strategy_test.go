package bot_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabbler/internal/dependencies/mocks"
	"github.com/mcoot/scrabbler/internal/model"
	"github.com/mcoot/scrabbler/internal/services/board"
	"github.com/mcoot/scrabbler/internal/services/bot"
	"github.com/mcoot/scrabbler/internal/services/dictionary"
	"github.com/mcoot/scrabbler/internal/services/scoring"
	"github.com/mcoot/scrabbler/internal/storage/memory"
	"github.com/mcoot/scrabbler/internal/testutil"
)

type StrategySuite struct {
	suite.Suite
	boards     *board.Service
	mockRandom *mocks.MockRandom
	greedy     *bot.GreedyStrategy
	random     *bot.RandomStrategy
	board      *model.Board
	ctx        context.Context
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	logger := testutil.NopLogger()
	dict := dictionary.New(memory.New(), logger)
	s.Require().NoError(dict.LoadWords(testutil.TestWords()))

	s.boards = board.New(dict, scoring.New(), logger)
	s.mockRandom = mocks.NewMockRandom()
	s.greedy = bot.NewGreedyStrategy(s.boards)
	s.random = bot.NewRandomStrategy(s.boards, s.mockRandom)
	s.board = s.boards.NewBoard()
	s.ctx = context.Background()
}

func at(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

func (s *StrategySuite) rack(tiles string) *model.Rack {
	rack, err := model.RackFromString(tiles)
	s.Require().NoError(err)
	return rack
}

// playOpening commits JUBE down, OX and TO
func (s *StrategySuite) playOpening() {
	plays := []struct {
		word  string
		start model.Position
		axis  model.Axis
	}{
		{"JUBE", at(6, 7), model.Down},
		{"OX", at(8, 8), model.Down},
		{"TO", at(5, 8), model.Down},
	}
	for _, p := range plays {
		s.Require().NoError(s.boards.WriteWord(s.board, p.word, p.start, p.axis))
		_, err := s.boards.Submit(s.board)
		s.Require().NoError(err)
	}
}

// findGreedy runs the greedy search and checks it left the board untouched
func (s *StrategySuite) findGreedy(tiles string) model.Move {
	spaces := s.board.Spaces
	frontier := s.board.Frontier.Positions()

	move, err := s.greedy.FindMove(s.ctx, s.board, s.rack(tiles))
	s.Require().NoError(err)

	s.Empty(s.board.Staged)
	s.Equal(spaces, s.board.Spaces)
	s.Equal(frontier, s.board.Frontier.Positions())
	return move
}

// playMove stages the move and checks it commits for the promised score
func (s *StrategySuite) playMove(move model.Move) {
	for _, p := range move.Placements {
		s.Require().NoError(s.boards.PlaceTile(s.board, p.Tile, p.Position))
	}
	score, err := s.boards.Submit(s.board)
	s.Require().NoError(err)
	s.Equal(move.Score, score)
}

func placedAt(move model.Move) []model.Position {
	positions := make([]model.Position, 0, len(move.Placements))
	for _, p := range move.Placements {
		positions = append(positions, p.Position)
	}
	return positions
}

// Greedy strategy tests

func (s *StrategySuite) TestGreedyOpeningWord() {
	move := s.findGreedy("HELLO")

	s.True(move.Found())
	s.Equal("HELLO", move.Word)
	s.Equal(18, move.Score)
	s.Equal(model.Center, move.Start)
	s.Equal(model.Across, move.Axis)
	s.Equal([]model.Position{at(7, 7), at(7, 8), at(7, 9), at(7, 10), at(7, 11)}, placedAt(move))
	s.playMove(move)
}

func (s *StrategySuite) TestGreedyPrefersHigherScore() {
	move := s.findGreedy("AEHLLOX")

	// HEX across ties HEX down; across is found first
	s.Equal("HEX", move.Word)
	s.Equal(26, move.Score)
	s.Equal(at(7, 6), move.Start)
	s.Equal(model.Across, move.Axis)
	s.Equal([]model.Position{at(7, 7), at(7, 6), at(7, 8)}, placedAt(move))
	s.playMove(move)
}

func (s *StrategySuite) TestGreedyBingo() {
	move := s.findGreedy("ELOSTAZ")

	s.Equal("ZEALOTS", move.Word)
	s.Equal(84, move.Score)
	s.Equal(at(7, 5), move.Start)
	s.Equal(model.Across, move.Axis)
	s.playMove(move)
}

func (s *StrategySuite) TestGreedyNoMove() {
	move := s.findGreedy("QZ")

	s.False(move.Found())
	s.Equal(model.MoveNone, move.Kind)
}

func (s *StrategySuite) TestGreedyEmptyRack() {
	s.False(s.findGreedy("").Found())
}

func (s *StrategySuite) TestGreedyExtendsExistingPlays() {
	tests := []struct {
		rack   string
		word   string
		score  int
		start  model.Position
		axis   model.Axis
		placed []model.Position
	}{
		{"AELSTXZ", "LATEX", 40, at(4, 9), model.Down, []model.Position{at(5, 9), at(4, 9), at(6, 9), at(7, 9), at(8, 9)}},
		{"S", "JUBES", 14, at(6, 7), model.Down, []model.Position{at(10, 7)}},
		{"HALO", "HALO", 21, at(9, 6), model.Down, nil},
		{"QUAT", "QAT", 28, at(4, 9), model.Down, nil},
	}

	for _, tt := range tests {
		s.Run(tt.rack, func() {
			s.SetupTest()
			s.playOpening()

			move := s.findGreedy(tt.rack)
			s.Equal(tt.word, move.Word)
			s.Equal(tt.score, move.Score)
			s.Equal(tt.start, move.Start)
			s.Equal(tt.axis, move.Axis)
			if tt.placed != nil {
				s.Equal(tt.placed, placedAt(move))
			}
			s.playMove(move)
		})
	}
}

func (s *StrategySuite) TestGreedyUsesBlank() {
	// the natural tiles only make EL
	natural := s.findGreedy("ZEL")
	s.Equal("EL", natural.Word)
	s.Equal(4, natural.Score)

	// a blank A grown right of the center completes ZEAL
	move := s.findGreedy("ZEL*")
	s.Equal("ZEAL", move.Word)
	s.Equal(24, move.Score)
	s.Equal(at(7, 6), move.Start)
	s.Equal(model.Across, move.Axis)
	s.Equal([]model.Position{at(7, 7), at(7, 6), at(7, 8), at(7, 9)}, placedAt(move))

	blank := move.Placements[2].Tile
	s.True(blank.Blank)
	s.Equal('A', blank.Letter)
	s.Equal(0, blank.Value())
	for _, p := range move.Placements {
		if p.Position != at(7, 8) {
			s.False(p.Tile.Blank)
		}
	}
	s.playMove(move)
}

func (s *StrategySuite) TestSearchCancelled() {
	s.playOpening()
	spaces := s.board.Spaces

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	move, err := s.greedy.FindMove(ctx, s.board, s.rack("AELSTXZ"))
	s.ErrorIs(err, context.Canceled)
	s.False(move.Found())
	s.Empty(s.board.Staged)
	s.Equal(spaces, s.board.Spaces)
}

func (s *StrategySuite) TestSearchRecordsOnlyLegalPlays() {
	s.playOpening()

	recorded := 0
	err := bot.Search(s.ctx, s.boards, s.board, s.rack("AELSTXZ"), bot.RecorderFunc(func(move model.Move) {
		recorded++
		s.True(s.boards.IsValidWord(move.Word), move.Word)
		s.NoError(s.boards.Validate(s.board))
		s.Equal(len(move.Placements), len(s.board.Staged))
	}))
	s.Require().NoError(err)
	s.Positive(recorded)
	s.Empty(s.board.Staged)
}

// Random strategy tests

func (s *StrategySuite) TestRandomCandidates() {
	moves, err := s.random.Candidates(s.ctx, s.board, s.rack("OX"))
	s.Require().NoError(err)

	s.Require().Len(moves, 4)
	starts := []model.Position{at(7, 7), at(7, 6), at(7, 7), at(6, 7)}
	axes := []model.Axis{model.Across, model.Across, model.Down, model.Down}
	for i, move := range moves {
		s.Equal("OX", move.Word)
		s.Equal(18, move.Score)
		s.Equal(starts[i], move.Start)
		s.Equal(axes[i], move.Axis)
	}
}

func (s *StrategySuite) TestRandomPicksWithRandom() {
	s.mockRandom.QueueIntn(1)

	move, err := s.random.FindMove(s.ctx, s.board, s.rack("OX"))
	s.Require().NoError(err)

	s.Equal("OX", move.Word)
	s.Equal(at(7, 6), move.Start)
	s.Equal(model.Across, move.Axis)
	s.playMove(move)
}

func (s *StrategySuite) TestRandomNoMove() {
	move, err := s.random.FindMove(s.ctx, s.board, s.rack("QZ"))
	s.Require().NoError(err)
	s.False(move.Found())
}

func (s *StrategySuite) TestRandomDeduplicatesAnchors() {
	s.playOpening()

	moves, err := s.random.Candidates(s.ctx, s.board, s.rack("S"))
	s.Require().NoError(err)

	seen := make(map[model.Position]bool)
	for _, move := range moves {
		s.Require().Len(move.Placements, 1)
		pos := move.Placements[0].Position
		s.False(seen[pos], "duplicate play at %s", pos)
		seen[pos] = true
	}
	s.True(seen[at(10, 7)])
}
