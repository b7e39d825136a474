package services

import (
	"Packlist/internal/helpers"
	"Packlist/internal/models"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	sheetFirstDataRow = 4
	defaultContainer  = "SN"
	maxSheetNameLen   = 31
)

var templateColumns = []string{
	"Grosor (cm)", "Alto (m)", "Ancho (m)", "Bloque", "Atado",
	"Tipo", "Pedimento", "Contenedor", "Ref. Proveedor",
}

type ImportReport struct {
	Imported int            `json:"imported"`
	Products map[string]int `json:"products"`
	Skipped  []string       `json:"skipped,omitempty"`
}

type SheetService interface {
	Import(token string, workbook io.Reader) (*ImportReport, error)
	ExportTemplate(token string) (*excelize.File, error)
}

type sheetServiceImpl struct {
	draftService DraftService
	logService   LogService
}

func NewSheetService(draftService DraftService, logService LogService) SheetService {
	return &sheetServiceImpl{draftService: draftService, logService: logService}
}

type sheetRows struct {
	sheet string
	label string
	rows  []models.Row
}

// Import reads a packing-list workbook, one sheet per product. The rows of
// every matched product replace the rows currently on screen for it.
func (s *sheetServiceImpl) Import(token string, workbook io.Reader) (*ImportReport, error) {
	f, err := excelize.OpenReader(workbook)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
	}
	defer f.Close()

	sheets, err := readSheets(f)
	if err != nil {
		return nil, err
	}

	report := &ImportReport{Products: map[string]int{}}
	_, err = s.draftService.Update(token, func(draft *models.Draft) error {
		for _, sheet := range sheets {
			product := matchProduct(draft.Products, sheet.label)
			if product == nil {
				report.Skipped = append(report.Skipped, fmt.Sprintf("%s: no product matches %q", sheet.sheet, sheet.label))
				continue
			}
			if len(sheet.rows) == 0 {
				report.Skipped = append(report.Skipped, fmt.Sprintf("%s: no rows from row %d", sheet.sheet, sheetFirstDataRow))
				continue
			}
			replaceProductRows(draft, product, sheet.rows)
			report.Products[product.Name] += len(sheet.rows)
			report.Imported += len(sheet.rows)
		}
		if report.Imported == 0 {
			return errNoChange
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logService.Log.WithFields(logrus.Fields{
		"token":    token,
		"imported": report.Imported,
		"skipped":  len(report.Skipped),
	}).Info("packing list workbook imported")
	return report, nil
}

func readSheets(f *excelize.File) ([]sheetRows, error) {
	var result []sheetRows
	for _, sheet := range f.GetSheetList() {
		label, err := f.GetCellValue(sheet, "B1")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
		}
		cells, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWorkbook, err)
		}
		parsed := sheetRows{sheet: sheet, label: strings.TrimSpace(label)}
		for i := sheetFirstDataRow - 1; i < len(cells); i++ {
			row, ok := parseSheetRow(cells[i])
			if ok {
				parsed.rows = append(parsed.rows, row)
			}
		}
		result = append(result, parsed)
	}
	return result, nil
}

// parseSheetRow maps columns A..I. Rows without a thickness are skipped.
func parseSheetRow(cells []string) (models.Row, bool) {
	cell := func(i int) string {
		if i < len(cells) {
			return strings.TrimSpace(cells[i])
		}
		return ""
	}
	if cell(0) == "" {
		return models.Row{}, false
	}
	container := cell(7)
	if container == "" {
		container = defaultContainer
	}
	return models.Row{
		Thickness:   helpers.ParseNumber(cell(0)),
		Height:      helpers.ParseNumber(cell(1)),
		Width:       helpers.ParseNumber(cell(2)),
		Block:       cell(3),
		Bundle:      cell(4),
		CustomsRef:  cell(6),
		Container:   container,
		SupplierRef: cell(8),
	}, true
}

// matchProduct resolves a "Name (CODE)" label by code first, then by name.
func matchProduct(products []models.Product, label string) *models.Product {
	name, code := splitProductLabel(label)
	if code != "" {
		for i := range products {
			if products[i].Code == code {
				return &products[i]
			}
		}
	}
	for i := range products {
		if products[i].Name == name {
			return &products[i]
		}
	}
	for i := range products {
		if name != "" && strings.EqualFold(products[i].Name, name) {
			return &products[i]
		}
	}
	return nil
}

func splitProductLabel(label string) (string, string) {
	open := strings.Index(label, "(")
	if open < 0 {
		return strings.TrimSpace(label), ""
	}
	name := strings.TrimSpace(label[:open])
	rest := label[open+1:]
	if end := strings.Index(rest, ")"); end >= 0 {
		rest = rest[:end]
	}
	return name, strings.TrimSpace(rest)
}

func productLabel(product models.Product) string {
	if product.Code == "" {
		return product.Name
	}
	return fmt.Sprintf("%s (%s)", product.Name, product.Code)
}

func replaceProductRows(draft *models.Draft, product *models.Product, imported []models.Row) {
	kept := make([]models.Row, 0, len(draft.Rows)+len(imported))
	for _, row := range draft.Rows {
		if row.ProductID != product.ID {
			kept = append(kept, row)
		}
	}
	unit := product.Unit()
	for _, row := range imported {
		row.ID = draft.NextID
		row.ProductID = product.ID
		row.UnitType = unit
		if unit == models.UnitPiece && row.Width == 0 {
			row.Width = 1
		}
		draft.NextID++
		kept = append(kept, row)
	}
	draft.Rows = kept
}

func (s *sheetServiceImpl) ExportTemplate(token string) (*excelize.File, error) {
	draft, err := s.draftService.Get(token)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	boldStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 1}},
	})
	if err != nil {
		return nil, err
	}

	used := map[string]bool{}
	for i, product := range draft.Products {
		sheet := uniqueSheetName(product, used)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, "A1", "Producto"); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, "B1", productLabel(product)); err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, "A2", fmt.Sprintf("%s %v %s", product.Unit(), product.QtyOrdered, product.UoM)); err != nil {
			return nil, err
		}
		for col, title := range templateColumns {
			name, _ := excelize.ColumnNumberToName(col + 1)
			cell := fmt.Sprintf("%s%d", name, sheetFirstDataRow-1)
			if err := f.SetCellValue(sheet, cell, title); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheet, cell, cell, boldStyle); err != nil {
				return nil, err
			}
		}
		if err := f.SetColWidth(sheet, "A", "I", 14); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func uniqueSheetName(product models.Product, used map[string]bool) string {
	base := product.Code
	if base == "" {
		base = product.Name
	}
	base = strings.NewReplacer(":", "", "\\", "", "/", "", "?", "", "*", "", "[", "", "]", "").Replace(base)
	if base == "" {
		base = fmt.Sprintf("Product %d", product.ID)
	}
	if runes := []rune(base); len(runes) > maxSheetNameLen-4 {
		base = string(runes[:maxSheetNameLen-4])
	}
	name := base
	for n := 2; used[strings.ToLower(name)]; n++ {
		name = fmt.Sprintf("%s %d", base, n)
	}
	used[strings.ToLower(name)] = true
	return name
}
