//go:build wireinject

package main

import (
	"context"

	"github.com/google/wire"
	"github.com/rs/zerolog"

	"jan-server/services/application-settings-api/internal/config"
	domain "jan-server/services/application-settings-api/internal/domain/customlabel"
	"jan-server/services/application-settings-api/internal/infrastructure/auth"
	"jan-server/services/application-settings-api/internal/infrastructure/database"
	"jan-server/services/application-settings-api/internal/infrastructure/logger"
	"jan-server/services/application-settings-api/internal/interfaces/httpserver"
)

var customLabelSet = wire.NewSet(
	domain.NewService,
)

// BuildApplication assembles the application settings service with Wire.
func BuildApplication(ctx context.Context) (*Application, error) {
	wire.Build(
		config.Load,
		logger.New,
		database.NewConfig,
		newGormDB,
		newAuthValidator,
		customLabelSet,
		httpserver.New,
		NewApplication,
	)
	return nil, nil
}

func newAuthValidator(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*auth.Validator, error) {
	return auth.NewValidator(ctx, cfg, log)
}
