package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abdidvp/matchscore/internal/adapters/outbound/logger"
	"github.com/abdidvp/matchscore/internal/adapters/outbound/sqlite"
	"github.com/abdidvp/matchscore/internal/application"
	"github.com/abdidvp/matchscore/internal/domain"
)

// runtimeEnv carries the process settings bound by viper and the loader
// for the engine config file.
type runtimeEnv struct {
	v      *viper.Viper
	loader domain.ConfigLoader
}

// runtime is everything a command needs to talk to the stores.
type runtime struct {
	logger  *zap.Logger
	store   *sqlite.Store
	weights *application.WeightResolver
	service *application.MatchService
}

func (e *runtimeEnv) open() (*runtime, error) {
	log, err := logger.New(e.v.GetBool("json-log"), e.v.GetBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	cfg, err := e.loader.Load(e.v.GetString("config-dir"))
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := sqlite.Open(e.v.GetString("db"))
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	resolver := application.NewWeightResolver(cfg, store, log)
	return &runtime{
		logger:  log,
		store:   store,
		weights: resolver,
		service: application.NewMatchService(store, store, store, resolver, log),
	}, nil
}

func (r *runtime) Close() error {
	_ = r.logger.Sync()
	return r.store.Close()
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
