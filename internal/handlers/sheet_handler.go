package handlers

import (
	"Packlist/internal/services"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SheetHandler struct {
	service services.SheetService
}

func NewSheetHandler(service services.SheetService) *SheetHandler {
	return &SheetHandler{service: service}
}

func (h *SheetHandler) Import(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "Invalid file"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
	}
	defer file.Close()

	report, err := h.service.Import(c.Params("token"), file)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(report)
}

func (h *SheetHandler) Template(c *fiber.Ctx) error {
	workbook, err := h.service.ExportTemplate(c.Params("token"))
	if err != nil {
		return respondError(c, err)
	}
	defer workbook.Close()
	buf, err := workbook.WriteToBuffer()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(map[string]interface{}{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, mimeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=\"packing-list-%s.xlsx\"", c.Params("token")))
	return c.Status(http.StatusOK).Send(buf.Bytes())
}
