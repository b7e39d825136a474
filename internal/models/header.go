package models

type Header struct {
	InvoiceNumber  string `json:"invoice_number"`
	ShipmentDate   string `json:"shipment_date"`
	ProformaNumber string `json:"proforma_number"`
	BLNumber       string `json:"bl_number"`
	Origin         string `json:"origin"`
	Destination    string `json:"destination"`
	CountryOrigin  string `json:"country_origin"`
	Vessel         string `json:"vessel"`
	Incoterm       string `json:"incoterm"`
	PaymentTerms   string `json:"payment_terms"`
	Status         string `json:"status"`

	// Current container
	MerchandiseDesc string  `json:"merchandise_desc"`
	ContainerNo     string  `json:"container_no"`
	SealNo          string  `json:"seal_no"`
	ContainerType   string  `json:"container_type"`
	TotalPackages   int     `json:"total_packages"`
	GrossWeight     float64 `json:"gross_weight"`
	Volume          float64 `json:"volume"`
}

// ResetContainer clears the per-container cargo fields. Logistics,
// documentation and the container type carry over to the next container.
func (h Header) ResetContainer() Header {
	h.ContainerNo = ""
	h.SealNo = ""
	h.TotalPackages = 0
	h.GrossWeight = 0
	h.Volume = 0
	h.MerchandiseDesc = ""
	return h
}
