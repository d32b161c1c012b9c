package bot_test

import (
	"context"
	"testing"
	"time"

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

type ServiceSuite struct {
	suite.Suite
	boards     *board.Service
	mockRandom *mocks.MockRandom
	service    *bot.Service
	ctx        context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	logger := testutil.NopLogger()
	dict := dictionary.New(memory.New(), logger)
	s.Require().NoError(dict.LoadWords(testutil.TestWords()))

	s.boards = board.New(dict, scoring.New(), logger)
	s.mockRandom = mocks.NewMockRandom()
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = bot.NewService(bot.DefaultStrategies(s.boards, s.mockRandom), clk, logger)
	s.ctx = context.Background()
}

func (s *ServiceSuite) rack(tiles string) *model.Rack {
	rack, err := model.RackFromString(tiles)
	s.Require().NoError(err)
	return rack
}

func (s *ServiceSuite) TestDefaultStrategiesRegistered() {
	for _, name := range model.ValidBotStrategies() {
		st, err := s.service.Strategy(name)
		s.Require().NoError(err)
		s.Equal(name, st.Name())
	}
}

func (s *ServiceSuite) TestUnknownStrategy() {
	_, err := s.service.Strategy("clever")
	s.ErrorIs(err, model.ErrUnknownStrategy)

	move, err := s.service.FindMove(s.ctx, "clever", s.boards.NewBoard(), s.rack("OX"))
	s.ErrorIs(err, model.ErrUnknownStrategy)
	s.False(move.Found())
}

func (s *ServiceSuite) TestSuggestUsesGreedy() {
	move, err := s.service.Suggest(s.ctx, s.boards.NewBoard(), s.rack("AEHLLOX"))
	s.Require().NoError(err)
	s.Equal("HEX", move.Word)
	s.Equal(26, move.Score)
}

func (s *ServiceSuite) TestFindMoveRandom() {
	s.mockRandom.QueueIntn(3)

	move, err := s.service.FindMove(s.ctx, model.BotStrategyRandom, s.boards.NewBoard(), s.rack("OX"))
	s.Require().NoError(err)
	s.Equal(model.Position{Row: 6, Col: 7}, move.Start)
	s.Equal(model.Down, move.Axis)
}
