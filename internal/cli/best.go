package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabbler/internal/model"
)

func newBestCmd() *cobra.Command {
	var (
		rackArg  string
		plays    []string
		strategy string
	)

	cmd := &cobra.Command{
		Use:   "best",
		Short: "Find a move for a rack",
		Long: `Replays the given plays, then searches for a move for the rack.
Use * for a blank tile.`,
		Example: `  scrabbler best --rack AEHLLOX
  scrabbler best --rack QUAT --play HELLO:7:7:across`,
		RunE: func(cmd *cobra.Command, args []string) error {
			rack, err := model.RackFromString(rackArg)
			if err != nil {
				return err
			}
			if rack.Len() > model.RackSize {
				return fmt.Errorf("%w: %d tiles, at most %d", model.ErrRackFull, rack.Len(), model.RackSize)
			}

			b := app.BoardService.NewBoard()
			if _, err := replayPlays(app.BoardService, b, plays); err != nil {
				return err
			}

			move, err := app.BotService.FindMove(cmd.Context(), strategy, b, rack)
			if err != nil {
				return err
			}

			result := MoveResult{
				Found:    move.Found(),
				Strategy: strategy,
				Rack:     rack.String(),
			}
			if move.Found() {
				result.Move = movePlay(move)
				result.Placements = tilePlacements(move.Placements)
				result.Board, err = stagedView(b, move)
				if err != nil {
					return err
				}
			} else {
				result.Board = boardView(app.BoardService, b)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&rackArg, "rack", "", "Rack tiles, e.g. AEHLLOX or HELL*")
	cmd.Flags().StringArrayVar(&plays, "play", nil, "Play to apply first as WORD:ROW:COL:AXIS (repeatable)")
	cmd.Flags().StringVar(&strategy, "strategy", model.BotStrategyGreedy, "Move strategy: "+strings.Join(model.ValidBotStrategies(), ", "))
	_ = cmd.MarkFlagRequired("rack")

	return cmd
}

// stagedView renders the board with the move's tiles staged, then takes them back
func stagedView(b *model.Board, move model.Move) (Board, error) {
	defer b.UnstageAll()
	for _, p := range move.Placements {
		if err := app.BoardService.PlaceTile(b, p.Tile, p.Position); err != nil {
			return Board{}, err
		}
	}
	return boardView(app.BoardService, b), nil
}
