package handlers

import (
	"Packlist/internal/mapper"
	"Packlist/internal/models"
	"Packlist/internal/services"
	"Packlist/internal/views"
	"bytes"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

type PortalHandler struct {
	draftService services.DraftService
	rowService   services.RowService
	renderer     *views.Renderer
}

func NewPortalHandler(draftService services.DraftService, rowService services.RowService, renderer *views.Renderer) *PortalHandler {
	return &PortalHandler{draftService: draftService, rowService: rowService, renderer: renderer}
}

func (h *PortalHandler) Page(c *fiber.Ctx) error {
	draft, err := h.draftService.Open(c.UserContext(), c.Params("token"))
	if err != nil {
		return respondError(c, err)
	}
	var buf bytes.Buffer
	if err := h.renderer.RenderPage(&buf, draft, h.rowService.Totals(draft)); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(http.StatusOK).Send(buf.Bytes())
}

func (h *PortalHandler) GetDraft(c *fiber.Ctx) error {
	draft, err := h.draftService.Open(c.UserContext(), c.Params("token"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(mapper.ToDraftGetDTO(draft, h.rowService.Totals(draft)))
}

func (h *PortalHandler) SaveHeader(c *fiber.Ctx) error {
	var header models.Header
	if err := c.BodyParser(&header); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid header"})
	}
	draft, err := h.draftService.SaveHeader(c.Params("token"), header)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(draft.Header)
}

// Discard drops the stored draft; the next visit starts again from the ERP.
func (h *PortalHandler) Discard(c *fiber.Ctx) error {
	if err := h.draftService.Clear(c.Params("token")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *PortalHandler) RowsFragment(c *fiber.Ctx) error {
	draft, err := h.draftService.Get(c.Params("token"))
	if err != nil {
		return respondError(c, err)
	}
	var buf bytes.Buffer
	if err := h.renderer.RenderRows(&buf, draft, h.rowService.Totals(draft)); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(http.StatusOK).Send(buf.Bytes())
}
