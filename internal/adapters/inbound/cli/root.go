package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/abdidvp/matchscore/internal/adapters/outbound/config"
)

var (
	version = "dev"
	commit  = "none"
)

const defaultDBPath = ".matchscore/matchscore.db"

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("MATCHSCORE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "matchscore",
		Short: "Score how well engineers fit jobs",
		Long: "matchscore computes a 0-100 match score between an engineer profile and a job posting " +
			"from skill overlap, budget fit, remote fit and availability fit.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.String("db", defaultDBPath, "Path to the sqlite database (env MATCHSCORE_DB)")
	pf.String("config-dir", ".", "Directory holding .matchscore.yaml (env MATCHSCORE_CONFIG_DIR)")
	pf.Bool("json-log", false, "Log as JSON (env MATCHSCORE_JSON_LOG)")
	pf.Bool("debug", false, "Enable debug logging (env MATCHSCORE_DEBUG)")
	for _, name := range []string{"db", "config-dir", "json-log", "debug"} {
		_ = v.BindPFlag(name, pf.Lookup(name))
	}

	env := &runtimeEnv{v: v, loader: config.New()}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newImportCmd(env))
	cmd.AddCommand(newScoreCmd(env))
	cmd.AddCommand(newRankCmd(env))
	cmd.AddCommand(newApplyCmd(env))
	cmd.AddCommand(newRecomputeCmd(env))
	cmd.AddCommand(newWeightsCmd(env))
	cmd.AddCommand(newMCPCmd(env))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
