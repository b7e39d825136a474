package routers

import (
	"Packlist/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupShipmentRouter(app *fiber.App, server *cmd.Server) {
	stagingHandler := server.StagingHandler
	submitHandler := server.SubmitHandler
	sheetHandler := server.SheetHandler

	api := app.Group("/api/pl/:token")
	api.Post("/containers", stagingHandler.StageContainer)
	api.Delete("/containers/:id", stagingHandler.RemoveStaged)
	api.Post("/submit", submitHandler.Submit)
	api.Post("/import", sheetHandler.Import)
	api.Get("/template.xlsx", sheetHandler.Template)
}
