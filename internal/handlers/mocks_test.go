package handlers

import (
	"Packlist/internal/erp"
	"Packlist/internal/models"
	"Packlist/internal/services"
	"context"
	"io"

	"github.com/stretchr/testify/mock"
	"github.com/xuri/excelize/v2"
)

type MockDraftService struct {
	mock.Mock
}

func (m *MockDraftService) Open(ctx context.Context, token string) (*models.Draft, error) {
	args := m.Called(ctx, token)
	if draft, ok := args.Get(0).(*models.Draft); ok {
		return draft, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDraftService) Get(token string) (*models.Draft, error) {
	args := m.Called(token)
	if draft, ok := args.Get(0).(*models.Draft); ok {
		return draft, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDraftService) Update(token string, mutate func(draft *models.Draft) error) (*models.Draft, error) {
	args := m.Called(token, mutate)
	if draft, ok := args.Get(0).(*models.Draft); ok {
		return draft, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDraftService) SaveHeader(token string, header models.Header) (*models.Draft, error) {
	args := m.Called(token, header)
	if draft, ok := args.Get(0).(*models.Draft); ok {
		return draft, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDraftService) Clear(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

func (m *MockDraftService) ClearSubmitted(token string, stagedIDs []string, gridSent bool) (bool, error) {
	args := m.Called(token, stagedIDs, gridSent)
	return args.Bool(0), args.Error(1)
}

type MockRowService struct {
	mock.Mock
}

func (m *MockRowService) CreateRows(token string, productID int, count int) ([]models.Row, error) {
	args := m.Called(token, productID, count)
	rows, _ := args.Get(0).([]models.Row)
	return rows, args.Error(1)
}

func (m *MockRowService) UpdateRow(token string, rowID int, field string, value string) (*models.Row, error) {
	args := m.Called(token, rowID, field, value)
	if row, ok := args.Get(0).(*models.Row); ok {
		return row, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRowService) DeleteRow(token string, rowID int) error {
	args := m.Called(token, rowID)
	return args.Error(0)
}

func (m *MockRowService) FillDown(token string, rowID int, field string) (int, error) {
	args := m.Called(token, rowID, field)
	return args.Int(0), args.Error(1)
}

func (m *MockRowService) Totals(draft *models.Draft) models.Totals {
	args := m.Called(draft)
	return args.Get(0).(models.Totals)
}

type MockStagingService struct {
	mock.Mock
}

func (m *MockStagingService) StageContainer(token string, header *models.Header, files []models.Attachment) (*models.StagedContainer, error) {
	args := m.Called(token, header, files)
	if staged, ok := args.Get(0).(*models.StagedContainer); ok {
		return staged, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStagingService) RemoveStaged(token string, containerID string) error {
	args := m.Called(token, containerID)
	return args.Error(0)
}

type MockSubmitService struct {
	mock.Mock
}

func (m *MockSubmitService) Submit(ctx context.Context, token string, files []models.Attachment) (*erp.SubmitParams, error) {
	args := m.Called(ctx, token, files)
	if params, ok := args.Get(0).(*erp.SubmitParams); ok {
		return params, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSheetService struct {
	mock.Mock
}

func (m *MockSheetService) Import(token string, workbook io.Reader) (*services.ImportReport, error) {
	args := m.Called(token, workbook)
	if report, ok := args.Get(0).(*services.ImportReport); ok {
		return report, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSheetService) ExportTemplate(token string) (*excelize.File, error) {
	args := m.Called(token)
	if f, ok := args.Get(0).(*excelize.File); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCleaner struct {
	mock.Mock
}

func (m *MockCleaner) ForceStartCleanCycle() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockCleaner) RunOnce() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockCleaner) IsCleaning() bool {
	args := m.Called()
	return args.Bool(0)
}
