package repository

import (
	"Packlist/internal/models"
	"errors"
	"gorm.io/gorm"
	"time"
)

type DraftRepository interface {
	GenericRepository[models.Draft]
	FindByToken(token string) (*models.Draft, error)
	FindStale(before time.Time) ([]models.Draft, error)
	DeleteByToken(token string) error
}

type DraftRepositoryImpl[T models.Draft] struct {
	GenericRepository[models.Draft]
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) DraftRepository {
	return &DraftRepositoryImpl[models.Draft]{
		GenericRepository: NewGenericRepository[models.Draft](db),
		db:                db,
	}
}

func (r *DraftRepositoryImpl[T]) FindByToken(token string) (*models.Draft, error) {
	var draft models.Draft
	err := r.db.Where("token = ?", token).First(&draft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &draft, nil
}

func (r *DraftRepositoryImpl[T]) FindStale(before time.Time) ([]models.Draft, error) {
	var drafts []models.Draft
	err := r.db.Where("updated_at < ?", before).Order("updated_at").Find(&drafts).Error
	if err != nil {
		return nil, err
	}
	return drafts, nil
}

// DeleteByToken bypasses the soft delete so the token can be reused.
func (r *DraftRepositoryImpl[T]) DeleteByToken(token string) error {
	return r.db.Unscoped().Where("token = ?", token).Delete(&models.Draft{}).Error
}
