package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/matchscore/internal/adapters/outbound/tui"
	"github.com/abdidvp/matchscore/internal/application"
)

func newScoreCmd(env *runtimeEnv) *cobra.Command {
	var (
		jsonOutput bool
		regime     string
		ciMode     bool
		minScore   int
	)

	cmd := &cobra.Command{
		Use:   "score <engineer-id> <job-id>",
		Short: "Score one engineer against one job",
		Long:  "Compute the match score for an engineer/job pair and show the per-factor breakdown.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := env.open()
			if err != nil {
				return err
			}
			defer rt.Close()

			score, err := rt.service.ScorePair(cmd.Context(), args[0], args[1], application.ScoreOptions{Regime: regime})
			if err != nil {
				return fmt.Errorf("scoring failed: %w", err)
			}

			if jsonOutput {
				if err := renderJSON(cmd, score); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderMatch(score))
			}

			if ciMode && score.Overall < minScore {
				return fmt.Errorf("score %d is below minimum %d", score.Overall, minScore)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output score as JSON")
	cmd.Flags().StringVar(&regime, "regime", "", "Weight regime from .matchscore.yaml (defaults to default_regime)")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode")

	return cmd
}
