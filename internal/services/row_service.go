package services

import (
	"Packlist/internal/helpers"
	"Packlist/internal/models"
	"fmt"

	"github.com/shopspring/decimal"
)

const maxRowsPerAdd = 50

type RowService interface {
	CreateRows(token string, productID int, count int) ([]models.Row, error)
	UpdateRow(token string, rowID int, field string, value string) (*models.Row, error)
	DeleteRow(token string, rowID int) error
	FillDown(token string, rowID int, field string) (int, error)
	Totals(draft *models.Draft) models.Totals
}

type rowServiceImpl struct {
	draftService DraftService
}

func NewRowService(draftService DraftService) RowService {
	return &rowServiceImpl{draftService: draftService}
}

func (s *rowServiceImpl) CreateRows(token string, productID int, count int) ([]models.Row, error) {
	if count < 1 || count > maxRowsPerAdd {
		return nil, ErrInvalidRowCount
	}
	var created []models.Row
	_, err := s.draftService.Update(token, func(draft *models.Draft) error {
		if draft.FindProduct(productID) == nil {
			return fmt.Errorf("%w: %d", ErrUnknownProduct, productID)
		}
		created = make([]models.Row, 0, count)
		for i := 0; i < count; i++ {
			created = append(created, createRow(draft, productID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *rowServiceImpl) UpdateRow(token string, rowID int, field string, value string) (*models.Row, error) {
	var updated models.Row
	_, err := s.draftService.Update(token, func(draft *models.Draft) error {
		row := draft.FindRow(rowID)
		if row == nil {
			return ErrRowNotFound
		}
		if err := setRowField(row, field, value); err != nil {
			return err
		}
		updated = *row
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *rowServiceImpl) DeleteRow(token string, rowID int) error {
	_, err := s.draftService.Update(token, func(draft *models.Draft) error {
		if draft.FindRow(rowID) == nil {
			return ErrRowNotFound
		}
		deleteRow(draft, rowID)
		return nil
	})
	return err
}

func (s *rowServiceImpl) FillDown(token string, rowID int, field string) (int, error) {
	var count int
	_, err := s.draftService.Update(token, func(draft *models.Draft) error {
		var err error
		count, err = fillDown(draft, rowID, field)
		if err != nil {
			return err
		}
		if count == 0 {
			return errNoChange
		}
		return nil
	})
	return count, err
}

func (s *rowServiceImpl) Totals(draft *models.Draft) models.Totals {
	return computeTotals(draft)
}

// createRow appends a row for productID. Block, thickness and bundle are
// inherited from the product's last row so consecutive plates of one block
// only need their dimensions typed.
func createRow(draft *models.Draft, productID int) models.Row {
	unit := draft.FindProduct(productID).Unit()
	row := models.Row{
		ID:        draft.NextID,
		ProductID: productID,
		UnitType:  unit,
	}
	for i := len(draft.Rows) - 1; i >= 0; i-- {
		if draft.Rows[i].ProductID == productID {
			row.Block = draft.Rows[i].Block
			row.Thickness = draft.Rows[i].Thickness
			row.Bundle = draft.Rows[i].Bundle
			break
		}
	}
	// Quantity of pieces lives in Height.
	if unit == models.UnitPiece {
		row.Width = 1
	}
	draft.NextID++
	draft.Rows = append(draft.Rows, row)
	return row
}

// resetRows leaves one empty row per product.
func resetRows(draft *models.Draft) {
	draft.Rows = make([]models.Row, 0, len(draft.Products))
	for _, product := range draft.Products {
		createRow(draft, product.ID)
	}
}

func deleteRow(draft *models.Draft, rowID int) {
	rows := draft.Rows[:0]
	for _, row := range draft.Rows {
		if row.ID != rowID {
			rows = append(rows, row)
		}
	}
	draft.Rows = rows
}

func rowTextField(row *models.Row, field string) *string {
	switch field {
	case "contenedor":
		return &row.Container
	case "bloque":
		return &row.Block
	case "numero_placa":
		return &row.PlateNumber
	case "atado":
		return &row.Bundle
	case "color":
		return &row.Notes
	case "ref_prov":
		return &row.SupplierRef
	case "pedimento":
		return &row.CustomsRef
	}
	return nil
}

func rowNumberField(row *models.Row, field string) *float64 {
	switch field {
	case "grosor":
		return &row.Thickness
	case "alto":
		return &row.Height
	case "ancho":
		return &row.Width
	}
	return nil
}

func setRowField(row *models.Row, field string, value string) error {
	if number := rowNumberField(row, field); number != nil {
		*number = helpers.ParseNumber(value)
		return nil
	}
	if text := rowTextField(row, field); text != nil {
		*text = value
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownField, field)
}

// fillDown copies field from the source row into every later row of the
// same product and reports how many rows changed.
func fillDown(draft *models.Draft, rowID int, field string) (int, error) {
	source := draft.FindRow(rowID)
	if source == nil {
		return 0, ErrRowNotFound
	}
	src := *source
	if rowNumberField(&src, field) == nil && rowTextField(&src, field) == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	count := 0
	started := false
	for i := range draft.Rows {
		row := &draft.Rows[i]
		if row.ID == rowID {
			started = true
			continue
		}
		if !started || row.ProductID != src.ProductID {
			continue
		}
		if number := rowNumberField(row, field); number != nil {
			*number = *rowNumberField(&src, field)
		} else {
			*rowTextField(row, field) = *rowTextField(&src, field)
		}
		count++
	}
	return count, nil
}

func validRows(rows []models.Row) []models.Row {
	valid := make([]models.Row, 0, len(rows))
	for _, row := range rows {
		if row.Valid() {
			valid = append(valid, row)
		}
	}
	return valid
}

func computeTotals(draft *models.Draft) models.Totals {
	area := decimal.Zero
	pieces := decimal.Zero
	items := 0
	valid := validRows(draft.Rows)
	for _, row := range valid {
		height := decimal.NewFromFloat(row.Height)
		if draft.FindProduct(row.ProductID).Unit() == models.UnitPiece {
			pieces = pieces.Add(height)
			continue
		}
		area = area.Add(height.Mul(decimal.NewFromFloat(row.Width)))
		items++
	}
	return models.Totals{
		Items:     items,
		Area:      area.Round(2).InexactFloat64(),
		Pieces:    pieces.InexactFloat64(),
		CanSubmit: len(draft.StagedContainers) > 0 || len(valid) > 0,
	}
}
