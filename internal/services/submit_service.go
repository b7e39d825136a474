package services

import (
	"Packlist/internal/erp"
	"Packlist/internal/models"
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type SubmitService interface {
	Submit(ctx context.Context, token string, files []models.Attachment) (*erp.SubmitParams, error)
}

type submitServiceImpl struct {
	draftService DraftService
	erpClient    erp.Client
	logService   LogService
}

func NewSubmitService(draftService DraftService, erpClient erp.Client, logService LogService) SubmitService {
	return &submitServiceImpl{
		draftService: draftService,
		erpClient:    erpClient,
		logService:   logService,
	}
}

// Submit sends every staged container plus the container still on screen.
// The draft is only cleared once the ERP accepts the payload, and only of
// what was sent: the ERP call runs without the draft lock.
func (s *submitServiceImpl) Submit(ctx context.Context, token string, files []models.Attachment) (*erp.SubmitParams, error) {
	draft, err := s.draftService.Get(token)
	if err != nil {
		return nil, err
	}
	params, err := buildSubmission(draft, files)
	if err != nil {
		return nil, err
	}

	if _, err := s.erpClient.SubmitPackingList(ctx, params); err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"token": token,
			"rows":  len(params.Rows),
			"error": err.Error(),
		}).Error("packing list submission failed")
		return nil, err
	}

	stagedIDs := make([]string, 0, len(draft.StagedContainers))
	for _, container := range draft.StagedContainers {
		stagedIDs = append(stagedIDs, container.ID)
	}
	gridSent := len(validRows(draft.Rows)) > 0
	if _, err := s.draftService.ClearSubmitted(token, stagedIDs, gridSent); err != nil {
		s.logService.Log.WithFields(logrus.Fields{
			"token": token,
			"error": err.Error(),
		}).Error("submitted but could not clear draft")
	}
	s.logService.Log.WithFields(logrus.Fields{
		"token":      token,
		"rows":       len(params.Rows),
		"files":      len(params.Files),
		"containers": params.Header.ContainerNo,
	}).Info("packing list submitted")
	return &params, nil
}

func buildSubmission(draft *models.Draft, files []models.Attachment) (erp.SubmitParams, error) {
	current := draft.Header
	pending := validRows(draft.Rows)
	if len(pending) > 0 && current.ContainerNo == "" {
		return erp.SubmitParams{}, ErrContainerRequired
	}

	rows := make([]models.Row, 0)
	attachments := make([]models.Attachment, 0)
	headers := make([]models.Header, 0, len(draft.StagedContainers)+1)
	for _, container := range draft.StagedContainers {
		rows = append(rows, container.Rows...)
		for _, file := range container.Files {
			file.ContainerRef = container.Summary.ContainerNo
			attachments = append(attachments, file)
		}
		headers = append(headers, container.Header)
	}
	if len(pending) > 0 {
		for _, row := range pending {
			row.Container = current.ContainerNo
			rows = append(rows, row)
		}
		for _, file := range files {
			file.ContainerRef = current.ContainerNo
			attachments = append(attachments, file)
		}
		headers = append(headers, current)
	}
	if len(rows) == 0 {
		return erp.SubmitParams{}, ErrNothingToSubmit
	}

	return erp.SubmitParams{
		Token:  draft.Token,
		Rows:   rows,
		Header: consolidateHeader(current, headers),
		Files:  attachments,
	}, nil
}

// consolidateHeader keeps the global fields of base and aggregates the cargo
// fields of every container being sent.
func consolidateHeader(base models.Header, headers []models.Header) models.Header {
	packages := 0
	weight := decimal.Zero
	volume := decimal.Zero
	var containers, types, seals orderedSet
	for _, header := range headers {
		packages += header.TotalPackages
		weight = weight.Add(decimal.NewFromFloat(header.GrossWeight))
		volume = volume.Add(decimal.NewFromFloat(header.Volume))
		containers.add(header.ContainerNo)
		types.add(header.ContainerType)
		seals.add(header.SealNo)
	}

	base.ContainerNo = containers.join()
	base.ContainerType = types.join()
	base.SealNo = seals.join()
	base.TotalPackages = packages
	base.GrossWeight = weight.InexactFloat64()
	base.Volume = volume.InexactFloat64()
	return base
}

type orderedSet struct {
	values []string
	seen   map[string]struct{}
}

func (s *orderedSet) add(value string) {
	if value == "" {
		return
	}
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[value]; ok {
		return
	}
	s.seen[value] = struct{}{}
	s.values = append(s.values, value)
}

func (s *orderedSet) join() string {
	return strings.Join(s.values, ", ")
}
