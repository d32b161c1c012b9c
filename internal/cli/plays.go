package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/mcoot/scrabbler/internal/model"
	"github.com/mcoot/scrabbler/internal/services/board"
)

// play is a word written onto the board from a WORD:ROW:COL:AXIS argument
type play struct {
	Word  string
	Start model.Position
	Axis  model.Axis
}

func parsePlay(arg string) (play, error) {
	parts := strings.Split(arg, ":")
	if len(parts) != 4 {
		return play{}, fmt.Errorf("play %q must look like WORD:ROW:COL:AXIS", arg)
	}

	row, err := strconv.Atoi(parts[1])
	if err != nil {
		return play{}, fmt.Errorf("play %q: invalid row: %w", arg, err)
	}
	col, err := strconv.Atoi(parts[2])
	if err != nil {
		return play{}, fmt.Errorf("play %q: invalid column: %w", arg, err)
	}
	axis, err := model.ParseAxis(parts[3])
	if err != nil {
		return play{}, fmt.Errorf("play %q: %w", arg, err)
	}

	return play{
		Word:  strings.ToUpper(parts[0]),
		Start: model.Position{Row: row, Col: col},
		Axis:  axis,
	}, nil
}

// replayPlays writes and submits each play in order, stopping at the first rejection
func replayPlays(boards *board.Service, b *model.Board, args []string) ([]PlayResult, error) {
	results := make([]PlayResult, 0, len(args))
	for _, arg := range args {
		p, err := parsePlay(arg)
		if err != nil {
			return results, err
		}
		if err := boards.WriteWord(b, p.Word, p.Start, p.Axis); err != nil {
			return results, fmt.Errorf("play %q: %w", arg, err)
		}
		score, err := boards.Submit(b)
		if err != nil {
			b.UnstageAll()
			return results, fmt.Errorf("play %q: %w", arg, err)
		}
		results = append(results, PlayResult{
			Word:  p.Word,
			Row:   p.Start.Row,
			Col:   p.Start.Col,
			Axis:  p.Axis.String(),
			Score: score,
		})
	}
	return results, nil
}

func boardView(boards *board.Service, b *model.Board) Board {
	grid := boards.Tokens(b)
	cells := lo.Map(grid[:], func(row [model.BoardSize]string, _ int) []string {
		return row[:]
	})
	return Board{Cells: cells, Rendered: boards.Render(b)}
}

func movePlay(m model.Move) *PlayResult {
	return &PlayResult{
		Word:  m.Word,
		Row:   m.Start.Row,
		Col:   m.Start.Col,
		Axis:  m.Axis.String(),
		Score: m.Score,
	}
}

func tilePlacements(placements []model.Placement) []TilePlacement {
	return lo.Map(placements, func(p model.Placement, _ int) TilePlacement {
		return TilePlacement{
			Row:    p.Position.Row,
			Col:    p.Position.Col,
			Letter: string(p.Tile.Letter),
			Blank:  p.Tile.Blank,
		}
	})
}
