package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abdidvp/matchscore/internal/adapters/outbound/fixture"
)

func newImportCmd(env *runtimeEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Import engineers and jobs from a YAML file",
		Long:  "Validate and upsert every engineer and job in the file. Existing records with the same id are replaced.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := fixture.Load(args[0])
			if err != nil {
				return err
			}

			rt, err := env.open()
			if err != nil {
				return err
			}
			defer rt.Close()

			if err := file.Apply(cmd.Context(), rt.store); err != nil {
				return fmt.Errorf("importing %s: %w", args[0], err)
			}

			rt.logger.Info("import complete",
				zap.String("file", args[0]),
				zap.Int("engineers", len(file.Engineers)),
				zap.Int("jobs", len(file.Jobs)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d engineers, %d jobs\n", len(file.Engineers), len(file.Jobs))
			return nil
		},
	}
}
