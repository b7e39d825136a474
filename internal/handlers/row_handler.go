package handlers

import (
	"Packlist/internal/services"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type RowHandler struct {
	service services.RowService
}

func NewRowHandler(service services.RowService) *RowHandler {
	return &RowHandler{service: service}
}

func (h *RowHandler) CreateRows(c *fiber.Ctx) error {
	req := struct {
		ProductID int `json:"product_id"`
		Count     int `json:"count"`
	}{Count: 1}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": err.Error()})
	}
	rows, err := h.service.CreateRows(c.Params("token"), req.ProductID, req.Count)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(rows)
}

func (h *RowHandler) UpdateRow(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid row ID"})
	}
	var req struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	row, err := h.service.UpdateRow(c.Params("token"), id, req.Field, req.Value)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(row)
}

func (h *RowHandler) DeleteRow(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid row ID"})
	}
	if err := h.service.DeleteRow(c.Params("token"), id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

func (h *RowHandler) FillDown(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid row ID"})
	}
	var req struct {
		Field string `json:"field"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(map[string]interface{}{"error": "invalid input"})
	}
	count, err := h.service.FillDown(c.Params("token"), id, req.Field)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(map[string]interface{}{"count": count})
}
