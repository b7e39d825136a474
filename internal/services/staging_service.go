package services

import (
	"Packlist/internal/models"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type StagingService interface {
	StageContainer(token string, header *models.Header, files []models.Attachment) (*models.StagedContainer, error)
	RemoveStaged(token string, containerID string) error
}

type stagingServiceImpl struct {
	draftService DraftService
	logService   LogService
}

func NewStagingService(draftService DraftService, logService LogService) StagingService {
	return &stagingServiceImpl{draftService: draftService, logService: logService}
}

// StageContainer buffers the container on screen. A nil header stages the
// header already stored in the draft.
func (s *stagingServiceImpl) StageContainer(token string, header *models.Header, files []models.Attachment) (*models.StagedContainer, error) {
	var staged *models.StagedContainer
	_, err := s.draftService.Update(token, func(draft *models.Draft) error {
		if header != nil {
			draft.Header = *header
		}
		var err error
		staged, err = stageContainer(draft, files)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.logService.Log.WithFields(logrus.Fields{
		"token":     token,
		"container": staged.Summary.ContainerNo,
		"lines":     staged.Summary.LinesCount,
		"files":     staged.Summary.FilesCount,
	}).Info("container staged")
	return staged, nil
}

func (s *stagingServiceImpl) RemoveStaged(token string, containerID string) error {
	_, err := s.draftService.Update(token, func(draft *models.Draft) error {
		kept := make([]models.StagedContainer, 0, len(draft.StagedContainers))
		for _, container := range draft.StagedContainers {
			if container.ID != containerID {
				kept = append(kept, container)
			}
		}
		if len(kept) == len(draft.StagedContainers) {
			return ErrContainerNotFound
		}
		draft.StagedContainers = kept
		return nil
	})
	return err
}

func stageContainer(draft *models.Draft, files []models.Attachment) (*models.StagedContainer, error) {
	header := draft.Header
	if header.ContainerNo == "" {
		return nil, ErrContainerRequired
	}
	rows := validRows(draft.Rows)
	if len(rows) == 0 {
		return nil, ErrRowsRequired
	}
	for i := range rows {
		rows[i].Container = header.ContainerNo
	}
	if files == nil {
		files = []models.Attachment{}
	}

	staged := models.StagedContainer{
		ID:     uuid.NewString(),
		Header: header,
		Rows:   rows,
		Files:  files,
		Summary: models.StagedSummary{
			ContainerNo: header.ContainerNo,
			Type:        header.ContainerType,
			Weight:      header.GrossWeight,
			Volume:      header.Volume,
			LinesCount:  len(rows),
			FilesCount:  len(files),
		},
	}
	draft.StagedContainers = append(draft.StagedContainers, staged)

	resetRows(draft)
	draft.Header = header.ResetContainer()
	return &staged, nil
}
