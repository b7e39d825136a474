package handlers

import (
	"Packlist/internal/dto"
	"Packlist/internal/models"
	"Packlist/internal/services"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStagingApp() (*fiber.App, *MockStagingService) {
	stagingService := new(MockStagingService)
	handler := NewStagingHandler(stagingService)
	app := fiber.New()
	app.Post("/api/pl/:token/containers", handler.StageContainer)
	app.Delete("/api/pl/:token/containers/:id", handler.RemoveStaged)
	return app, stagingService
}

func TestStagingHandler_StageContainerMultipart(t *testing.T) {
	app, stagingService := newStagingApp()
	staged := &models.StagedContainer{
		ID:      "c1",
		Files:   []models.Attachment{{Name: "bl.pdf", Type: "application/pdf", Data: "JVBERg=="}},
		Summary: models.StagedSummary{ContainerNo: "MSKU1", LinesCount: 2, FilesCount: 1},
	}
	stagingService.On("StageContainer", "tok-1",
		mock.MatchedBy(func(h *models.Header) bool { return h != nil && h.ContainerNo == "MSKU1" && h.TotalPackages == 3 }),
		mock.MatchedBy(func(files []models.Attachment) bool {
			return len(files) == 1 && files[0].Name == "bl.pdf" && files[0].Type == "application/pdf" && files[0].Data != ""
		}),
	).Return(staged, nil).Once()

	req := multipartRequest(t, http.MethodPost, "/api/pl/tok-1/containers",
		map[string]string{"header": `{"container_no":"MSKU1","total_packages":3}`},
		uploadPart{field: "files", filename: "bl.pdf", content: "%PDF-1.4"},
	)
	resp, err := app.Test(req)

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	var result dto.StagedContainerDTO
	body, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(body, &result))
	assert.Equal(t, "MSKU1", result.Summary.ContainerNo)
	assert.NotContains(t, string(body), "JVBERg==")
	stagingService.AssertExpectations(t)
}

func TestStagingHandler_StageContainerValidation(t *testing.T) {
	app, stagingService := newStagingApp()
	stagingService.On("StageContainer", "tok-1", (*models.Header)(nil), []models.Attachment(nil)).
		Return(nil, services.ErrContainerRequired).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/api/pl/tok-1/containers", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, services.ErrContainerRequired.Error(), decodeError(t, resp))
}

func TestStagingHandler_RemoveStaged(t *testing.T) {
	app, stagingService := newStagingApp()
	stagingService.On("RemoveStaged", "tok-1", "c1").Return(nil).Once()
	stagingService.On("RemoveStaged", "tok-1", "nope").Return(services.ErrContainerNotFound).Once()

	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, "/api/pl/tok-1/containers/c1", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodDelete, "/api/pl/tok-1/containers/nope", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
