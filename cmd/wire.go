package cmd

import (
	"Packlist/internal/config"
	"Packlist/internal/handlers"
	"Packlist/internal/services"
)

type Server struct {
	Configuration  *config.Configuration
	DraftService   services.DraftService
	PortalHandler  *handlers.PortalHandler
	RowService     services.RowService
	RowHandler     *handlers.RowHandler
	StagingService services.StagingService
	StagingHandler *handlers.StagingHandler
	SubmitService  services.SubmitService
	SubmitHandler  *handlers.SubmitHandler
	SheetService   services.SheetService
	SheetHandler   *handlers.SheetHandler
	LogService     services.LogService
	JanitorService *services.Janitor
	JanitorHandler *handlers.JanitorHandler
}

func NewServer(
	configuration *config.Configuration,
	draftService services.DraftService,
	portalHandler *handlers.PortalHandler,
	rowService services.RowService,
	rowHandler *handlers.RowHandler,
	stagingService services.StagingService,
	stagingHandler *handlers.StagingHandler,
	submitService services.SubmitService,
	submitHandler *handlers.SubmitHandler,
	sheetService services.SheetService,
	sheetHandler *handlers.SheetHandler,
	logService services.LogService,
	janitorService *services.Janitor,
	janitorHandler *handlers.JanitorHandler,
) *Server {
	return &Server{
		Configuration:  configuration,
		DraftService:   draftService,
		PortalHandler:  portalHandler,
		RowService:     rowService,
		RowHandler:     rowHandler,
		StagingService: stagingService,
		StagingHandler: stagingHandler,
		SubmitService:  submitService,
		SubmitHandler:  submitHandler,
		SheetService:   sheetService,
		SheetHandler:   sheetHandler,
		LogService:     logService,
		JanitorService: janitorService,
		JanitorHandler: janitorHandler,
	}
}
