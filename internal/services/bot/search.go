package bot

import (
	"context"
	"slices"
	"strings"

	"github.com/mcoot/scrabbler/internal/model"
	"github.com/mcoot/scrabbler/internal/services/board"
)

// Recorder receives every legal play the search finds, in enumeration order
type Recorder interface {
	Record(move model.Move)
}

// RecorderFunc adapts a function to a Recorder
type RecorderFunc func(move model.Move)

// Record calls f(move)
func (f RecorderFunc) Record(move model.Move) {
	f(move)
}

var letters = []rune(model.Alphabet[:26])

// Search enumerates plays of the rack's tiles on the board. Every frontier
// anchor is grown across and then down; tiles are only ever added at the
// ends of the run being built. Branches whose crossing word is illegal, or
// whose run is no prefix of any word, are cut. Each candidate passes full
// validation before it is recorded. The board is left as it was found, also
// when ctx is cancelled.
func Search(ctx context.Context, boards *board.Service, b *model.Board, rack *model.Rack, recorder Recorder) error {
	s := &searcher{ctx: ctx, boards: boards, board: b, recorder: recorder}
	pool := rack.Tiles()
	for _, anchor := range b.Frontier.Positions() {
		for _, axis := range []model.Axis{model.Across, model.Down} {
			if err := s.explore(anchor, axis, pool); err != nil {
				return err
			}
		}
	}
	return nil
}

type searcher struct {
	ctx      context.Context
	boards   *board.Service
	board    *model.Board
	recorder Recorder
}

func (s *searcher) explore(pos model.Position, axis model.Axis, pool []rune) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}

	var candidates []model.Position
	if s.board.IsEmpty(pos) {
		candidates = []model.Position{pos}
	} else {
		if !s.boards.IsLegalWord(s.board, pos, axis.Orthogonal()) {
			return nil
		}
		start, end, _ := s.board.Bounds(pos, axis)
		if end > start {
			run := s.run(pos, axis, start, end)
			if !s.boards.IsPromising(run) {
				return nil
			}
			if s.boards.IsValidWord(run) && s.boards.Validate(s.board) == nil {
				s.recorder.Record(model.Move{
					Kind:       model.MovePlay,
					Word:       run,
					Score:      s.boards.Score(s.board),
					Start:      model.LineAt(pos, axis, start),
					Axis:       axis,
					Placements: s.board.StagedPlacements(),
				})
			}
		}
		for _, next := range []model.Position{model.LineAt(pos, axis, start-1), model.LineAt(pos, axis, end+1)} {
			if s.board.IsEmpty(next) {
				candidates = append(candidates, next)
			}
		}
	}

	if len(pool) == 0 {
		return nil
	}
	distinct := slices.Compact(slices.Clone(pool))
	for _, cand := range candidates {
		for _, symbol := range distinct {
			rest := removeOne(pool, symbol)
			for _, tile := range tilesFor(symbol) {
				if err := s.board.Stage(tile, cand); err != nil {
					return err
				}
				err := s.explore(cand, axis, rest)
				_, _ = s.board.Unstage(cand)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *searcher) run(pos model.Position, axis model.Axis, start, end int) string {
	var sb strings.Builder
	for i := start; i <= end; i++ {
		sb.WriteRune(s.board.Get(model.LineAt(pos, axis, i)))
	}
	return sb.String()
}

// tilesFor lists the tiles a rack symbol can be played as
func tilesFor(symbol rune) []model.Tile {
	if symbol != model.BlankSymbol {
		return []model.Tile{{Letter: symbol}}
	}
	tiles := make([]model.Tile, 0, len(letters))
	for _, l := range letters {
		tiles = append(tiles, model.Tile{Letter: l, Blank: true})
	}
	return tiles
}

func removeOne(pool []rune, symbol rune) []rune {
	i := slices.Index(pool, symbol)
	return slices.Concat(pool[:i], pool[i+1:])
}
