package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abdidvp/matchscore/internal/adapters/outbound/tui"
)

func newWeightsCmd(env *runtimeEnv) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Inspect and administer factor weights",
		Long:  "Factor weights resolve as built-in defaults, then .matchscore.yaml weights, then the admin weight table, then the selected regime.",
	}
	cmd.AddCommand(newWeightsListCmd(env))
	cmd.AddCommand(newWeightsSetCmd(env))
	cmd.AddCommand(newWeightsResetCmd(env))
	return cmd
}

func newWeightsListCmd(env *runtimeEnv) *cobra.Command {
	var (
		jsonOutput bool
		regime     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the effective weights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := env.open()
			if err != nil {
				return err
			}
			defer rt.Close()

			weights, resolved, err := rt.weights.Resolve(cmd.Context(), regime)
			if err != nil {
				return err
			}
			if jsonOutput {
				return renderJSON(cmd, weights)
			}

			source := "effective"
			if resolved != "" {
				source = "regime " + resolved
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderWeights(weights, source))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output weights as JSON")
	cmd.Flags().StringVar(&regime, "regime", "", "Resolve weights for this regime")
	return cmd
}

func newWeightsSetCmd(env *runtimeEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "set <factor> <weight>",
		Short: "Set a weight in the admin weight table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			weight, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid weight %q: %w", args[1], err)
			}

			rt, err := env.open()
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := rt.store.SetWeight(cmd.Context(), args[0], weight); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %.2f\n", args[0], weight)
			return nil
		},
	}
}

func newWeightsResetCmd(env *runtimeEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear the admin weight table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := env.open()
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := rt.store.ResetWeights(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "weight table cleared")
			return nil
		},
	}
}
