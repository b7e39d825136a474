//go:build wireinject
// +build wireinject

package main

import (
	"Packlist/cmd"
	"Packlist/database"
	"Packlist/internal/config"
	"Packlist/internal/erp"
	"Packlist/internal/handlers"
	"Packlist/internal/repository"
	"Packlist/internal/services"
	"Packlist/internal/views"
	"github.com/google/wire"
	"gorm.io/gorm"
)

func Provider(configPath string) (*config.Configuration, error) {
	return config.LoadConfiguration(configPath)
}

func DatabaseProvider(configuration *config.Configuration) (*gorm.DB, func(), error) {
	db, err := database.SetupDatabase(configuration)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { database.CloseDatabase(db) }, nil
}

func InitializeServer(configPath string) (*cmd.Server, func(), error) {
	wire.Build(
		cmd.NewServer,
		Provider,
		DatabaseProvider,
		repository.NewDraftRepository,
		erp.NewClient,
		views.NewRenderer,
		services.NewLogService,
		services.NewDraftService,
		handlers.NewPortalHandler,
		services.NewRowService,
		handlers.NewRowHandler,
		services.NewStagingService,
		handlers.NewStagingHandler,
		services.NewSubmitService,
		handlers.NewSubmitHandler,
		services.NewSheetService,
		handlers.NewSheetHandler,
		services.NewJanitorService,
		wire.Bind(new(services.Cleaner), new(*services.Janitor)),
		handlers.NewJanitorHandler,
	)
	return nil, nil, nil
}
