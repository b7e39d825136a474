package services

import (
	"Packlist/internal/erp"
	"Packlist/internal/models"
	"Packlist/internal/repository"
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

type DraftService interface {
	Open(ctx context.Context, token string) (*models.Draft, error)
	Get(token string) (*models.Draft, error)
	Update(token string, mutate func(draft *models.Draft) error) (*models.Draft, error)
	SaveHeader(token string, header models.Header) (*models.Draft, error)
	Clear(token string) error
	ClearSubmitted(token string, stagedIDs []string, gridSent bool) (bool, error)
}

// tokenLock serialises updates of one draft. holders counts the goroutines
// holding or waiting for it; the entry is dropped when it reaches zero.
type tokenLock struct {
	sync.Mutex
	holders int
}

type draftServiceImpl struct {
	draftRepo  repository.DraftRepository
	erpClient  erp.Client
	logService LogService
	locksMu    sync.Mutex
	locks      map[string]*tokenLock
}

func NewDraftService(draftRepo repository.DraftRepository, erpClient erp.Client, logService LogService) DraftService {
	return &draftServiceImpl{
		draftRepo:  draftRepo,
		erpClient:  erpClient,
		logService: logService,
		locks:      make(map[string]*tokenLock),
	}
}

func (s *draftServiceImpl) lock(token string) func() {
	s.locksMu.Lock()
	l, ok := s.locks[token]
	if !ok {
		l = &tokenLock{}
		s.locks[token] = l
	}
	l.holders++
	s.locksMu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.locksMu.Lock()
		l.holders--
		if l.holders == 0 {
			delete(s.locks, token)
		}
		s.locksMu.Unlock()
	}
}

// Open merges the ERP view of the receipt with the stored draft. A stored
// draft keeps its header, rows and staged containers; only the product list
// and labels are refreshed. Without a draft the ERP rows are used, or one
// empty row per product.
func (s *draftServiceImpl) Open(ctx context.Context, token string) (*models.Draft, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrTokenRequired
	}
	unlock := s.lock(token)
	defer unlock()

	draft, err := s.draftRepo.FindByToken(token)
	if err != nil {
		return nil, err
	}

	data, err := s.erpClient.FetchPortalData(ctx, token)
	if err != nil {
		if draft != nil && !errors.Is(err, erp.ErrRejected) {
			s.logService.Log.WithFields(logrus.Fields{
				"token": token,
				"error": err.Error(),
			}).Warn("ERP unreachable, serving stored draft")
			return draft, nil
		}
		return nil, err
	}

	if draft != nil {
		applyPortalLabels(draft, data)
		draft.NextID = maxRowID(draft.Rows) + 1
		if err := s.draftRepo.Update(draft); err != nil {
			return nil, err
		}
		return draft, nil
	}

	draft = &models.Draft{Token: token, Header: data.Header, NextID: 1}
	applyPortalLabels(draft, data)
	if len(data.ExistingRows) > 0 {
		draft.Rows = make([]models.Row, 0, len(data.ExistingRows))
		for _, row := range data.ExistingRows {
			row.ID = draft.NextID
			draft.NextID++
			draft.Rows = append(draft.Rows, row)
		}
	} else {
		resetRows(draft)
	}
	if err := s.draftRepo.Create(draft); err != nil {
		return nil, err
	}
	s.logService.Log.WithFields(logrus.Fields{
		"token": token,
		"rows":  len(draft.Rows),
	}).Info("draft created")
	return draft, nil
}

func (s *draftServiceImpl) Get(token string) (*models.Draft, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrTokenRequired
	}
	draft, err := s.draftRepo.FindByToken(token)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, ErrDraftNotFound
	}
	return draft, nil
}

// Update loads the draft under the token lock, applies mutate and persists
// the result. A mutate error leaves the stored draft untouched.
func (s *draftServiceImpl) Update(token string, mutate func(draft *models.Draft) error) (*models.Draft, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrTokenRequired
	}
	unlock := s.lock(token)
	defer unlock()

	draft, err := s.Get(token)
	if err != nil {
		return nil, err
	}
	if err := mutate(draft); err != nil {
		if errors.Is(err, errNoChange) {
			return draft, nil
		}
		return nil, err
	}
	if err := s.draftRepo.Update(draft); err != nil {
		return nil, err
	}
	return draft, nil
}

func (s *draftServiceImpl) SaveHeader(token string, header models.Header) (*models.Draft, error) {
	return s.Update(token, func(draft *models.Draft) error {
		draft.Header = header
		return nil
	})
}

func (s *draftServiceImpl) Clear(token string) error {
	if strings.TrimSpace(token) == "" {
		return ErrTokenRequired
	}
	unlock := s.lock(token)
	defer unlock()
	return s.draftRepo.DeleteByToken(token)
}

// ClearSubmitted removes what an accepted submission carried. The draft is
// deleted unless containers were staged while the submission was in flight;
// those are kept, and the grid is reset when its rows were part of the
// submission. It reports whether the draft was deleted.
func (s *draftServiceImpl) ClearSubmitted(token string, stagedIDs []string, gridSent bool) (bool, error) {
	unlock := s.lock(token)
	defer unlock()

	draft, err := s.Get(token)
	if errors.Is(err, ErrDraftNotFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	sent := make(map[string]struct{}, len(stagedIDs))
	for _, id := range stagedIDs {
		sent[id] = struct{}{}
	}
	kept := make([]models.StagedContainer, 0)
	for _, container := range draft.StagedContainers {
		if _, ok := sent[container.ID]; !ok {
			kept = append(kept, container)
		}
	}
	if len(kept) == 0 {
		return true, s.draftRepo.DeleteByToken(token)
	}

	draft.StagedContainers = kept
	if gridSent {
		resetRows(draft)
		draft.Header = draft.Header.ResetContainer()
	}
	if err := s.draftRepo.Update(draft); err != nil {
		return false, err
	}
	s.logService.Log.WithFields(logrus.Fields{
		"token": token,
		"kept":  len(kept),
	}).Warn("containers staged during submission were kept")
	return false, nil
}

func applyPortalLabels(draft *models.Draft, data *erp.PortalData) {
	draft.Products = data.Products
	draft.PurchaseName = data.PurchaseName
	draft.PickingName = data.PickingName
	draft.CompanyName = data.CompanyName
}

func maxRowID(rows []models.Row) int {
	maxID := 0
	for _, row := range rows {
		if row.ID > maxID {
			maxID = row.ID
		}
	}
	return maxID
}
