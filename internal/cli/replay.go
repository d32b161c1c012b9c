package cli

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newReplayCmd() *cobra.Command {
	var plays []string

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Write plays onto an empty board and score them",
		Example: `  scrabbler replay --play HELLO:7:7:across --play JUMBO:3:11:down`,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := app.BoardService.NewBoard()
			results, err := replayPlays(app.BoardService, b, plays)
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(ReplayResult{
				Plays: results,
				Total: lo.SumBy(results, func(p PlayResult) int { return p.Score }),
				Board: boardView(app.BoardService, b),
			})
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&plays, "play", nil, "Play as WORD:ROW:COL:AXIS (repeatable, applied in order)")
	_ = cmd.MarkFlagRequired("play")

	return cmd
}
