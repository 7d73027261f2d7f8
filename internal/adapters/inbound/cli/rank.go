package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/matchscore/internal/adapters/outbound/tui"
	"github.com/abdidvp/matchscore/internal/application"
)

func newRankCmd(env *runtimeEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank jobs for an engineer or engineers for a job",
	}
	cmd.AddCommand(newRankJobsCmd(env))
	cmd.AddCommand(newRankEngineersCmd(env))
	return cmd
}

type rankFlags struct {
	jsonOutput bool
	regime     string
	limit      int
}

func (f *rankFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Output ranking as JSON")
	cmd.Flags().StringVar(&f.regime, "regime", "", "Weight regime from .matchscore.yaml")
	cmd.Flags().IntVar(&f.limit, "limit", 10, "Maximum number of results (0 for all)")
}

func (f *rankFlags) options() application.RankOptions {
	return application.RankOptions{Regime: f.regime, Limit: f.limit}
}

func newRankJobsCmd(env *runtimeEnv) *cobra.Command {
	var flags rankFlags

	cmd := &cobra.Command{
		Use:   "jobs <engineer-id>",
		Short: "Rank every job for an engineer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := env.open()
			if err != nil {
				return err
			}
			defer rt.Close()

			ranked, err := rt.service.RankJobs(cmd.Context(), args[0], flags.options())
			if err != nil {
				return err
			}
			if flags.jsonOutput {
				return renderJSON(cmd, ranked)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRanking("Jobs for "+args[0], ranked, true))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newRankEngineersCmd(env *runtimeEnv) *cobra.Command {
	var flags rankFlags

	cmd := &cobra.Command{
		Use:   "engineers <job-id>",
		Short: "Rank every engineer for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := env.open()
			if err != nil {
				return err
			}
			defer rt.Close()

			ranked, err := rt.service.RankEngineers(cmd.Context(), args[0], flags.options())
			if err != nil {
				return err
			}
			if flags.jsonOutput {
				return renderJSON(cmd, ranked)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRanking("Engineers for "+args[0], ranked, false))
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
