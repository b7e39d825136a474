package server

import (
	"Packlist/cmd"
	"Packlist/internal/config"
	"Packlist/internal/routers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const appName = "Packlist"

// NewApp wires the HTTP surface. Body limit is configured in MiB and
// concurrency in thousands of connections.
func NewApp(server *cmd.Server, cfg *config.Configuration) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit:   cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency: cfg.Server.Concurrency * 1024,
		AppName:     appName,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Output: server.LogService.Log.Writer(),
	}))

	routers.SetupRoutes(app, server)
	return app
}
