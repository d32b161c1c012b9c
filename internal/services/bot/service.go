package bot

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/scrabbler/internal/dependencies/clock"
	"github.com/mcoot/scrabbler/internal/dependencies/random"
	"github.com/mcoot/scrabbler/internal/model"
	"github.com/mcoot/scrabbler/internal/services/board"
)

// Service looks up bot strategies by name and runs them
type Service struct {
	strategies map[string]Strategy
	clock      clock.Clock
	logger     *slog.Logger
}

// NewService creates a new bot Service
func NewService(strategies map[string]Strategy, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		strategies: strategies,
		clock:      clk,
		logger:     logger.With(slog.String("component", "bot-service")),
	}
}

// DefaultStrategies registers every built-in strategy under its name
func DefaultStrategies(boards *board.Service, rnd random.Random) map[string]Strategy {
	greedy := NewGreedyStrategy(boards)
	rand := NewRandomStrategy(boards, rnd)
	return map[string]Strategy{
		greedy.Name(): greedy,
		rand.Name():   rand,
	}
}

// Strategy returns the named strategy
func (s *Service) Strategy(name string) (Strategy, error) {
	st, ok := s.strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownStrategy, name)
	}
	return st, nil
}

// FindMove runs the named strategy against the board and rack
func (s *Service) FindMove(ctx context.Context, strategy string, b *model.Board, rack *model.Rack) (model.Move, error) {
	st, err := s.Strategy(strategy)
	if err != nil {
		return model.NoMove(), err
	}

	started := s.clock.Now()
	move, err := st.FindMove(ctx, b, rack)
	if err != nil {
		s.logger.Warn("move search aborted",
			slog.String("strategy", strategy),
			slog.String("error", err.Error()),
		)
		return model.NoMove(), err
	}

	s.logger.Debug("move search finished",
		slog.String("strategy", strategy),
		slog.String("rack", rack.String()),
		slog.String("move", move.String()),
		slog.Duration("elapsed", s.clock.Since(started)),
	)
	return move, nil
}

// Suggest returns the highest-scoring play for the rack
func (s *Service) Suggest(ctx context.Context, b *model.Board, rack *model.Rack) (model.Move, error) {
	return s.FindMove(ctx, model.BotStrategyGreedy, b, rack)
}

// Interface for dependency injection
type ServiceInterface interface {
	Strategy(name string) (Strategy, error)
	FindMove(ctx context.Context, strategy string, b *model.Board, rack *model.Rack) (model.Move, error)
	Suggest(ctx context.Context, b *model.Board, rack *model.Rack) (model.Move, error)
}

var _ ServiceInterface = (*Service)(nil)
