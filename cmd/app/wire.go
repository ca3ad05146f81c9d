//go:build wireinject
// +build wireinject

package main

import (
	"patentgate/config"
	"patentgate/internal/command"
	"patentgate/internal/cron"
	"patentgate/internal/database"
	"patentgate/internal/handler"
	"patentgate/internal/middleware"
	"patentgate/internal/router"
	"patentgate/internal/service"
	"patentgate/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// wireApp init application.
func wireApp(*config.Configuration, *zap.Logger) (*App, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			handler.ProviderSet,
			middleware.ProviderSet,
			router.ProviderSet,
			cron.ProviderSet,
			newHttpServer,
			telemetry.ProviderSet,
			newApp,
		),
	)
}

// wireCommand init application.
func wireCommand(*config.Configuration, *zap.Logger) (*command.Command, func(), error) {
	panic(
		wire.Build(
			database.ProviderSet,
			service.ProviderSet,
			telemetry.ProviderSet,
			command.ProviderSet,
		),
	)
}
