package models

const (
	UnitPlate = "Placa"
	UnitTile  = "Formato"
	UnitPiece = "Pieza"
)

type Product struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Code       string  `json:"code"`
	QtyOrdered float64 `json:"qty_ordered"`
	UoM        string  `json:"uom"`
	UnitType   string  `json:"unit_type,omitempty"`
}

// Unit returns the product unit type, Placa when unset or unknown.
func (p *Product) Unit() string {
	if p == nil {
		return UnitPlate
	}
	switch p.UnitType {
	case UnitTile, UnitPiece:
		return p.UnitType
	}
	return UnitPlate
}
