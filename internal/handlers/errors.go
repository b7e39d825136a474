package handlers

import (
	"Packlist/internal/erp"
	"Packlist/internal/helpers"
	"Packlist/internal/services"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrDraftNotFound),
		errors.Is(err, services.ErrRowNotFound),
		errors.Is(err, services.ErrContainerNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrTokenRequired),
		errors.Is(err, services.ErrUnknownProduct),
		errors.Is(err, services.ErrUnknownField),
		errors.Is(err, services.ErrInvalidRowCount),
		errors.Is(err, services.ErrInvalidWorkbook),
		errors.Is(err, helpers.ErrEmptyAttachment):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrContainerRequired),
		errors.Is(err, services.ErrRowsRequired),
		errors.Is(err, services.ErrNothingToSubmit),
		errors.Is(err, erp.ErrRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, erp.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, services.ErrCleaningRunning):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// errorMessage prefers the ERP's own wording for refused calls.
func errorMessage(err error) string {
	var rejected *erp.RejectedError
	if errors.As(err, &rejected) {
		return rejected.Message
	}
	return err.Error()
}

func respondError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(map[string]interface{}{"error": errorMessage(err)})
}
