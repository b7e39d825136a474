package routers

import (
	"Packlist/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupPortalRouter(app *fiber.App, server *cmd.Server) {
	portalHandler := server.PortalHandler
	app.Get("/supplier/pl/:token", portalHandler.Page)

	api := app.Group("/api/pl/:token")
	api.Get("/", portalHandler.GetDraft)
	api.Delete("/", portalHandler.Discard)
	api.Put("/header", portalHandler.SaveHeader)
	api.Get("/rows/fragment", portalHandler.RowsFragment)
}
