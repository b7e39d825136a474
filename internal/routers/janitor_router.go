package routers

import (
	"Packlist/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupJanitorRouter(app *fiber.App, server *cmd.Server) {
	app.Post("/janitor/clean", server.JanitorHandler.Clean)
}
