package dto

import "Packlist/internal/models"

type DraftGetDTO struct {
	Token            string               `json:"token"`
	PurchaseName     string               `json:"purchase_name"`
	PickingName      string               `json:"picking_name"`
	CompanyName      string               `json:"company_name"`
	Header           models.Header        `json:"header"`
	Products         []models.Product     `json:"products"`
	Rows             []models.Row         `json:"rows"`
	StagedContainers []StagedContainerDTO `json:"staged_containers"`
	NextID           int                  `json:"next_id"`
	Totals           models.Totals        `json:"totals"`
}

// StagedContainerDTO omits the file payloads a staged container carries.
type StagedContainerDTO struct {
	ID      string               `json:"id"`
	Header  models.Header        `json:"header"`
	Rows    []models.Row         `json:"rows"`
	Files   []AttachmentDTO      `json:"files"`
	Summary models.StagedSummary `json:"summary"`
}

type AttachmentDTO struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Checksum string `json:"checksum,omitempty"`
}
