package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <word>...",
		Short: "Check words against the lexicon",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := CheckResult{Words: make([]WordCheck, 0, len(args))}
			for _, arg := range args {
				word := strings.ToUpper(arg)
				result.Words = append(result.Words, WordCheck{
					Word:      word,
					Valid:     app.BoardService.IsValidWord(word),
					Promising: app.BoardService.IsPromising(word),
				})
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(result)
			return nil
		},
	}
}
