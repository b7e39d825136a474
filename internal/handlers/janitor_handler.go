package handlers

import (
	"Packlist/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type JanitorHandler struct {
	janitor services.Cleaner
}

func NewJanitorHandler(janitor services.Cleaner) *JanitorHandler {
	return &JanitorHandler{janitor: janitor}
}

func (h *JanitorHandler) Clean(c *fiber.Ctx) error {
	if err := h.janitor.ForceStartCleanCycle(); err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"status": "started"})
}
