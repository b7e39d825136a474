package routers

import (
	"Packlist/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupRowRouter(app *fiber.App, server *cmd.Server) {
	rowHandler := server.RowHandler
	rows := app.Group("/api/pl/:token/rows")
	rows.Post("/", rowHandler.CreateRows)
	rows.Patch("/:id", rowHandler.UpdateRow)
	rows.Delete("/:id", rowHandler.DeleteRow)
	rows.Post("/:id/fill-down", rowHandler.FillDown)
}
