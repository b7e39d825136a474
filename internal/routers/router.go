package routers

import (
	"Packlist/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupPortalRouter(app, server)
	SetupRowRouter(app, server)
	SetupShipmentRouter(app, server)
	SetupJanitorRouter(app, server)
}
