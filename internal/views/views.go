package views

import (
	"Packlist/internal/models"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
)

//go:embed templates/*.html
var templateFS embed.FS

type Column struct {
	Label string
	Field string
	Kind  string
	Step  string
}

type Cell struct {
	Column
	Value string
}

type RowView struct {
	ID    int
	Cells []Cell
}

type ProductSection struct {
	ID         int
	Name       string
	Code       string
	UnitType   string
	UnitLabel  string
	QtyOrdered string
	UoM        string
	Columns    []Column
	Rows       []RowView
}

type StagedView struct {
	ID          string
	ContainerNo string
	Type        string
	Weight      string
	Volume      string
	LinesCount  int
	FilesCount  int
}

type PageView struct {
	Token        string
	PurchaseName string
	PickingName  string
	CompanyName  string
	Header       models.Header
	Sections     []ProductSection
	Staged       []StagedView
	Items        int
	Area         string
	Pieces       string
	CanSubmit    bool
}

var (
	colBlock     = Column{Label: "Block", Field: "bloque", Kind: "text"}
	colBundle    = Column{Label: "Bundle", Field: "atado", Kind: "text"}
	colPlate     = Column{Label: "Plate No.", Field: "numero_placa", Kind: "text"}
	colThickness = Column{Label: "Thickness", Field: "grosor", Kind: "number", Step: "0.01"}
	colHeight    = Column{Label: "Height", Field: "alto", Kind: "number", Step: "0.01"}
	colWidth     = Column{Label: "Width", Field: "ancho", Kind: "number", Step: "0.01"}
	colArea      = Column{Label: "Area", Field: "area", Kind: "area"}
	colQuantity  = Column{Label: "Quantity", Field: "alto", Kind: "number", Step: "1"}
	colNotes     = Column{Label: "Notes", Field: "color", Kind: "text"}
)

var unitLabels = map[string]string{
	models.UnitPlate: "Plate",
	models.UnitTile:  "Tile",
	models.UnitPiece: "Piece",
}

// ColumnsFor lists the editable columns of a unit type. Pieces keep their
// quantity in the height field.
func ColumnsFor(unit string) []Column {
	switch unit {
	case models.UnitTile:
		return []Column{colHeight, colWidth, colArea, colNotes}
	case models.UnitPiece:
		return []Column{colQuantity, colNotes}
	default:
		return []Column{colBlock, colBundle, colPlate, colThickness, colHeight, colWidth, colArea, colNotes}
	}
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) RenderPage(w io.Writer, draft *models.Draft, totals models.Totals) error {
	return r.templates.ExecuteTemplate(w, "page.html", BuildPage(draft, totals))
}

// RenderRows writes only the product sections and the totals footer.
func (r *Renderer) RenderRows(w io.Writer, draft *models.Draft, totals models.Totals) error {
	return r.templates.ExecuteTemplate(w, "rows", BuildPage(draft, totals))
}

func BuildPage(draft *models.Draft, totals models.Totals) PageView {
	page := PageView{
		Token:        draft.Token,
		PurchaseName: draft.PurchaseName,
		PickingName:  draft.PickingName,
		CompanyName:  draft.CompanyName,
		Header:       draft.Header,
		Items:        totals.Items,
		Area:         fmt.Sprintf("%.2f", totals.Area),
		Pieces:       strconv.FormatFloat(totals.Pieces, 'f', -1, 64),
		CanSubmit:    totals.CanSubmit,
	}
	for i := range draft.Products {
		page.Sections = append(page.Sections, buildSection(&draft.Products[i], draft.Rows))
	}
	for _, staged := range draft.StagedContainers {
		page.Staged = append(page.Staged, StagedView{
			ID:          staged.ID,
			ContainerNo: staged.Summary.ContainerNo,
			Type:        orDash(staged.Summary.Type),
			Weight:      fmt.Sprintf("%.2f", staged.Summary.Weight),
			Volume:      fmt.Sprintf("%.2f", staged.Summary.Volume),
			LinesCount:  staged.Summary.LinesCount,
			FilesCount:  staged.Summary.FilesCount,
		})
	}
	return page
}

func buildSection(product *models.Product, rows []models.Row) ProductSection {
	unit := product.Unit()
	section := ProductSection{
		ID:         product.ID,
		Name:       product.Name,
		Code:       product.Code,
		UnitType:   unit,
		UnitLabel:  unitLabels[unit],
		QtyOrdered: formatNumber(product.QtyOrdered),
		UoM:        product.UoM,
		Columns:    ColumnsFor(unit),
	}
	for _, row := range rows {
		if row.ProductID != product.ID {
			continue
		}
		view := RowView{ID: row.ID}
		for _, col := range section.Columns {
			view.Cells = append(view.Cells, Cell{Column: col, Value: cellValue(row, col.Field)})
		}
		section.Rows = append(section.Rows, view)
	}
	return section
}

func cellValue(row models.Row, field string) string {
	switch field {
	case "bloque":
		return row.Block
	case "atado":
		return row.Bundle
	case "numero_placa":
		return row.PlateNumber
	case "color":
		return row.Notes
	case "grosor":
		return formatNumber(row.Thickness)
	case "alto":
		return formatNumber(row.Height)
	case "ancho":
		return formatNumber(row.Width)
	case "area":
		return fmt.Sprintf("%.2f", row.Height*row.Width)
	}
	return ""
}

// formatNumber leaves zero empty so untouched inputs show their placeholder.
func formatNumber(value float64) string {
	if value == 0 {
		return ""
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func orDash(value string) string {
	if value == "" {
		return "-"
	}
	return value
}
