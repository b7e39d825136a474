package mapper

import (
	"Packlist/internal/dto"
	"Packlist/internal/erp"
	"Packlist/internal/models"
)

func ToDraftGetDTO(draft *models.Draft, totals models.Totals) *dto.DraftGetDTO {
	staged := make([]dto.StagedContainerDTO, 0, len(draft.StagedContainers))
	for _, container := range draft.StagedContainers {
		staged = append(staged, ToStagedContainerDTO(container))
	}
	rows := draft.Rows
	if rows == nil {
		rows = []models.Row{}
	}
	products := draft.Products
	if products == nil {
		products = []models.Product{}
	}
	return &dto.DraftGetDTO{
		Token:            draft.Token,
		PurchaseName:     draft.PurchaseName,
		PickingName:      draft.PickingName,
		CompanyName:      draft.CompanyName,
		Header:           draft.Header,
		Products:         products,
		Rows:             rows,
		StagedContainers: staged,
		NextID:           draft.NextID,
		Totals:           totals,
	}
}

func ToStagedContainerDTO(container models.StagedContainer) dto.StagedContainerDTO {
	files := make([]dto.AttachmentDTO, 0, len(container.Files))
	for _, file := range container.Files {
		files = append(files, dto.AttachmentDTO{Name: file.Name, Type: file.Type, Checksum: file.Checksum})
	}
	return dto.StagedContainerDTO{
		ID:      container.ID,
		Header:  container.Header,
		Rows:    container.Rows,
		Files:   files,
		Summary: container.Summary,
	}
}

func ToSubmitResultDTO(params *erp.SubmitParams) dto.SubmitResultDTO {
	return dto.SubmitResultDTO{
		Success:    true,
		Rows:       len(params.Rows),
		Files:      len(params.Files),
		Containers: params.Header.ContainerNo,
	}
}
