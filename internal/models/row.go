package models

// Row is one packing-list line. JSON keys follow the ERP payload.
type Row struct {
	ID          int     `json:"id"`
	ProductID   int     `json:"product_id"`
	Container   string  `json:"contenedor"`
	Block       string  `json:"bloque"`
	PlateNumber string  `json:"numero_placa"`
	Bundle      string  `json:"atado"`
	Thickness   float64 `json:"grosor"`
	Height      float64 `json:"alto"`
	Width       float64 `json:"ancho"`
	Notes       string  `json:"color"`
	SupplierRef string  `json:"ref_prov"`
	CustomsRef  string  `json:"pedimento,omitempty"`
	UnitType    string  `json:"tipo"`
}

func (r Row) Valid() bool {
	return r.Height > 0 && r.Width > 0
}
