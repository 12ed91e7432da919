//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"github.com/norce-drilling/wellbore-api/internal/config"
	"github.com/norce-drilling/wellbore-api/internal/domain/wellbore"
	"github.com/norce-drilling/wellbore-api/internal/infrastructure/logger"
	"github.com/norce-drilling/wellbore-api/internal/interfaces/httpserver"
)

var wellBoreSet = wire.NewSet(
	provideRepository,
	wellbore.NewService,
)

// BuildApplication assembles the service with Wire. The returned cleanup
// closes the database.
func BuildApplication(ctx context.Context) (*Application, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		wellBoreSet,
		newUsageTracker,
		httpserver.New,
		NewApplication,
	)
	return nil, nil, nil
}

func provideRepository(ctx context.Context, cfg *config.Config, log zerolog.Logger) (wellbore.Repository, func(), error) {
	return newRepository(ctx, cfg, log)
}
