package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abdidvp/matchscore/internal/adapters/outbound/tui"
	"github.com/abdidvp/matchscore/internal/domain"
)

func newApplyCmd(env *runtimeEnv) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "apply <engineer-id> <job-id>",
		Short: "Submit an application stamped with its match score",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := env.open()
			if err != nil {
				return err
			}
			defer rt.Close()

			app, err := rt.service.SubmitApplication(cmd.Context(), args[0], args[1])
			if err != nil {
				return fmt.Errorf("submitting application: %w", err)
			}
			return renderApplication(cmd, app, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output application as JSON")
	return cmd
}

func newRecomputeCmd(env *runtimeEnv) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "recompute <application-id>",
		Short: "Re-score an application against current profiles and weights",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := env.open()
			if err != nil {
				return err
			}
			defer rt.Close()

			app, err := rt.service.RecomputeApplication(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("recomputing application: %w", err)
			}
			return renderApplication(cmd, app, jsonOutput)
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output application as JSON")
	return cmd
}

func renderApplication(cmd *cobra.Command, app *domain.Application, jsonOutput bool) error {
	if jsonOutput {
		return renderJSON(cmd, app)
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderApplication(app))
	return nil
}
