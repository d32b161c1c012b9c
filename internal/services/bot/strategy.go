package bot

import (
	"context"

	"github.com/mcoot/scrabbler/internal/model"
	"github.com/mcoot/scrabbler/internal/services/board"
)

// Strategy defines how a bot chooses its play
type Strategy interface {
	// Name is the registry key of the strategy
	Name() string
	// FindMove returns the play to make, or model.NoMove() if none is legal
	FindMove(ctx context.Context, b *model.Board, rack *model.Rack) (model.Move, error)
}

// GreedyStrategy plays the highest-scoring legal move. Ties go to the first
// move found.
type GreedyStrategy struct {
	boards *board.Service
}

// NewGreedyStrategy creates a new GreedyStrategy
func NewGreedyStrategy(boards *board.Service) *GreedyStrategy {
	return &GreedyStrategy{boards: boards}
}

// Name returns the strategy key
func (s *GreedyStrategy) Name() string {
	return model.BotStrategyGreedy
}

// FindMove searches every play and keeps the best
func (s *GreedyStrategy) FindMove(ctx context.Context, b *model.Board, rack *model.Rack) (model.Move, error) {
	best := model.NoMove()
	err := Search(ctx, s.boards, b, rack, RecorderFunc(func(move model.Move) {
		if !best.Found() || move.Score > best.Score {
			best = move
		}
	}))
	if err != nil {
		return model.NoMove(), err
	}
	return best, nil
}

var _ Strategy = (*GreedyStrategy)(nil)
