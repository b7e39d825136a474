package handlers

import (
	"Packlist/internal/mapper"
	"Packlist/internal/services"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type SubmitHandler struct {
	submitService services.SubmitService
	draftService  services.DraftService
}

func NewSubmitHandler(submitService services.SubmitService, draftService services.DraftService) *SubmitHandler {
	return &SubmitHandler{submitService: submitService, draftService: draftService}
}

// Submit saves the header sent along with the request before sending the
// whole packing list to the ERP.
func (h *SubmitHandler) Submit(c *fiber.Ctx) error {
	token := c.Params("token")
	header, files, err := readUpload(c)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
	}
	if header != nil {
		if _, err := h.draftService.SaveHeader(token, *header); err != nil {
			return respondError(c, err)
		}
	}
	params, err := h.submitService.Submit(c.UserContext(), token, files)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToSubmitResultDTO(params))
}
