package services

import (
	"Packlist/internal/erp"
	"Packlist/internal/models"
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type MockDraftRepository struct {
	mock.Mock
}

func (m *MockDraftRepository) Create(draft *models.Draft) error {
	args := m.Called(draft)
	return args.Error(0)
}

func (m *MockDraftRepository) FindByID(id uint) (*models.Draft, error) {
	args := m.Called(id)
	draft, ok := args.Get(0).(*models.Draft)
	if !ok {
		return nil, args.Error(1)
	}
	return draft, args.Error(1)
}

func (m *MockDraftRepository) FindAll() ([]models.Draft, error) {
	args := m.Called()
	return args.Get(0).([]models.Draft), args.Error(1)
}

func (m *MockDraftRepository) Update(draft *models.Draft) error {
	args := m.Called(draft)
	return args.Error(0)
}

func (m *MockDraftRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockDraftRepository) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDraftRepository) FindByToken(token string) (*models.Draft, error) {
	args := m.Called(token)
	draft, ok := args.Get(0).(*models.Draft)
	if !ok {
		return nil, args.Error(1)
	}
	return draft, args.Error(1)
}

func (m *MockDraftRepository) FindStale(before time.Time) ([]models.Draft, error) {
	args := m.Called(before)
	drafts, _ := args.Get(0).([]models.Draft)
	return drafts, args.Error(1)
}

func (m *MockDraftRepository) HardDelete(draft *models.Draft) error {
	args := m.Called(draft)
	return args.Error(0)
}

func (m *MockDraftRepository) DeleteByToken(token string) error {
	args := m.Called(token)
	return args.Error(0)
}

type MockERPClient struct {
	mock.Mock
}

func (m *MockERPClient) FetchPortalData(ctx context.Context, token string) (*erp.PortalData, error) {
	args := m.Called(ctx, token)
	data, ok := args.Get(0).(*erp.PortalData)
	if !ok {
		return nil, args.Error(1)
	}
	return data, args.Error(1)
}

func (m *MockERPClient) SubmitPackingList(ctx context.Context, params erp.SubmitParams) (*erp.SubmitResult, error) {
	args := m.Called(ctx, params)
	result, ok := args.Get(0).(*erp.SubmitResult)
	if !ok {
		return nil, args.Error(1)
	}
	return result, args.Error(1)
}

func newTestLogService() LogService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return LogService{Log: log}
}

func testProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Calacatta Oro", Code: "CAL", QtyOrdered: 120, UoM: "m²", UnitType: models.UnitPlate},
		{ID: 2, Name: "Porcelain 60x60", Code: "P60", QtyOrdered: 300, UoM: "m²", UnitType: models.UnitTile},
		{ID: 3, Name: "Vanity top", Code: "VT", QtyOrdered: 12, UoM: "Units", UnitType: models.UnitPiece},
	}
}

func testDraft() *models.Draft {
	return &models.Draft{
		Token:    "tok-1",
		Products: testProducts(),
		Header:   models.Header{InvoiceNumber: "INV-9", Incoterm: "FOB", ContainerType: "40HC"},
		NextID:   1,
	}
}
