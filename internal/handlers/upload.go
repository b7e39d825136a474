package handlers

import (
	"Packlist/internal/helpers"
	"Packlist/internal/models"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// readUpload accepts either a multipart form with a "header" JSON field and
// "files" parts, or a plain JSON header body. A missing header yields nil.
func readUpload(c *fiber.Ctx) (*models.Header, []models.Attachment, error) {
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return nil, nil, err
		}
		var header *models.Header
		if values := form.Value["header"]; len(values) > 0 && strings.TrimSpace(values[0]) != "" {
			header = &models.Header{}
			if err := json.Unmarshal([]byte(values[0]), header); err != nil {
				return nil, nil, err
			}
		}
		files, err := helpers.ReadAttachments(form.File["files"])
		if err != nil {
			return nil, nil, err
		}
		return header, files, nil
	}
	if len(c.Body()) == 0 {
		return nil, nil, nil
	}
	header := &models.Header{}
	if err := c.BodyParser(header); err != nil {
		return nil, nil, err
	}
	return header, nil, nil
}
