package bootstrap

import (
	"context"
	"log/slog"

	"reservas-web/internal/infra/memstore"
	"reservas-web/internal/pkg/clock"
	"reservas-web/internal/pkg/config"
	"reservas-web/internal/pkg/password"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore builds the in-memory store and loads the seed file, or the
// embedded default seed when SEED_FILE is unset.
func NewStore(cfg config.DevServerConfig, clk clock.Clock, logger *slog.Logger) (*memstore.Store, error) {
	seed, err := memstore.LoadSeed(cfg.Seed.File)
	if err != nil {
		return nil, err
	}

	store := memstore.NewStore(logger)
	if err := seed.Apply(context.Background(), store, clk, password.NewHasher(cfg.Seed.PasswordCost)); err != nil {
		return nil, err
	}

	logger.Info("Seed loaded", "events", len(seed.Events), "users", len(seed.Users))
	return store, nil
}
