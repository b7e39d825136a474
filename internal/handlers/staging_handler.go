package handlers

import (
	"Packlist/internal/mapper"
	"Packlist/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type StagingHandler struct {
	service services.StagingService
}

func NewStagingHandler(service services.StagingService) *StagingHandler {
	return &StagingHandler{service: service}
}

func (h *StagingHandler) StageContainer(c *fiber.Ctx) error {
	header, files, err := readUpload(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
	}
	staged, err := h.service.StageContainer(c.Params("token"), header, files)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToStagedContainerDTO(*staged))
}

func (h *StagingHandler) RemoveStaged(c *fiber.Ctx) error {
	if err := h.service.RemoveStaged(c.Params("token"), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
