package bot

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/mcoot/scrabbler/internal/dependencies/random"
	"github.com/mcoot/scrabbler/internal/model"
	"github.com/mcoot/scrabbler/internal/services/board"
)

// RandomStrategy picks uniformly among the distinct legal plays
type RandomStrategy struct {
	boards *board.Service
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(boards *board.Service, rnd random.Random) *RandomStrategy {
	return &RandomStrategy{boards: boards, random: rnd}
}

// Name returns the strategy key
func (s *RandomStrategy) Name() string {
	return model.BotStrategyRandom
}

// FindMove collects every distinct play and picks one at random
func (s *RandomStrategy) FindMove(ctx context.Context, b *model.Board, rack *model.Rack) (model.Move, error) {
	moves, err := s.Candidates(ctx, b, rack)
	if err != nil {
		return model.NoMove(), err
	}
	if len(moves) == 0 {
		return model.NoMove(), nil
	}
	return moves[s.random.Intn(len(moves))], nil
}

// Candidates returns the distinct legal plays in enumeration order. The same
// set of tiles reached from different anchors counts once.
func (s *RandomStrategy) Candidates(ctx context.Context, b *model.Board, rack *model.Rack) ([]model.Move, error) {
	var moves []model.Move
	seen := make(map[string]struct{})
	err := Search(ctx, s.boards, b, rack, RecorderFunc(func(move model.Move) {
		key := placementKey(move.Placements)
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		moves = append(moves, move)
	}))
	if err != nil {
		return nil, err
	}
	return moves, nil
}

func placementKey(placements []model.Placement) string {
	sorted := slices.Clone(placements)
	slices.SortFunc(sorted, func(a, b model.Placement) int {
		return model.ComparePositions(a.Position, b.Position)
	})
	var sb strings.Builder
	for _, p := range sorted {
		fmt.Fprintf(&sb, "%d,%d,%c,%t;", p.Row, p.Col, p.Tile.Letter, p.Tile.Blank)
	}
	return sb.String()
}

var _ Strategy = (*RandomStrategy)(nil)
