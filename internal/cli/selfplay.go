package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mcoot/scrabbler/internal/model"
)

func newSelfPlayCmd() *cobra.Command {
	var strategies []string

	cmd := &cobra.Command{
		Use:   "selfplay",
		Short: "Play a game between CPU players",
		Example: `  scrabbler selfplay --players greedy,random --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configs := lo.Map(strategies, func(strategy string, i int) model.PlayerConfig {
				return model.PlayerConfig{
					Name:     fmt.Sprintf("CPU %d", i+1),
					CPU:      true,
					Strategy: strategy,
				}
			})

			game, err := app.GameController.CreateGame(configs)
			if err != nil {
				return err
			}
			if _, err := app.GameController.PlayCPUTurns(cmd.Context(), game); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(summarize(game))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&strategies, "players", []string{model.BotStrategyGreedy, model.BotStrategyGreedy}, "Strategy of each CPU player, 1-4 of: "+strings.Join(model.ValidBotStrategies(), ", "))
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", 0, "Seed for the bag and random choices (default: unseeded)")

	return cmd
}

func summarize(game *model.Game) GameSummary {
	names := lo.SliceToMap(game.Players, func(p *model.GamePlayer) (model.PlayerID, string) {
		return p.ID, p.Name
	})

	standings := lo.Map(game.Players, func(p *model.GamePlayer, _ int) Standing {
		return Standing{Player: p.Name, Strategy: p.Strategy, Score: p.Score}
	})
	slices.SortStableFunc(standings, func(a, b Standing) int {
		return b.Score - a.Score
	})

	summary := GameSummary{
		ID:    string(game.ID),
		State: string(game.State),
		Turns: lo.Map(game.History, func(t model.TurnRecord, _ int) TurnSummary {
			return TurnSummary{
				Turn:    t.Turn,
				Player:  names[t.PlayerID],
				Kind:    string(t.Kind),
				Word:    t.Move.Word,
				Swapped: t.Swapped,
				Score:   t.Score,
			}
		}),
		Standings: standings,
		TilesLeft: game.Bag.Len(),
		Board:     boardView(app.BoardService, game.Board),
	}
	if leader := game.Leader(); leader != nil && game.IsComplete() {
		summary.Winner = leader.Name
	}
	return summary
}
