package repository

import (
	"context"

	"github.com/pacelog/backend/internal/entity"
	"github.com/pacelog/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type BestEffortRepository interface {
	// CreateIfNotExists inserts the efforts that are not stored yet and
	// silently skips the ones that are. Stored rows are never updated.
	CreateIfNotExists(ctx context.Context, efforts []*entity.BestEffort) error

	GetAll(ctx context.Context) ([]entity.BestEffort, error)

	// GetPersonalBests returns, per bucket name, the row with the minimum
	// moving time. Ties break on the earliest start date, then the lowest id.
	GetPersonalBests(ctx context.Context) ([]entity.BestEffort, error)

	DeleteAll(ctx context.Context) error
}

type bestEffortRepository struct{}

func NewBestEffortRepository() *bestEffortRepository {
	return &bestEffortRepository{}
}

func (r *bestEffortRepository) CreateIfNotExists(ctx context.Context, efforts []*entity.BestEffort) error {
	if len(efforts) == 0 {
		return nil
	}

	return xcontext.DB(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoNothing: true,
		}).
		Create(efforts).Error
}

func (r *bestEffortRepository) GetAll(ctx context.Context) ([]entity.BestEffort, error) {
	var result []entity.BestEffort
	err := xcontext.DB(ctx).Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *bestEffortRepository) GetPersonalBests(ctx context.Context) ([]entity.BestEffort, error) {
	var efforts []entity.BestEffort
	err := xcontext.DB(ctx).
		Order("name ASC, moving_time_seconds ASC, start_date ASC, id ASC").
		Find(&efforts).Error
	if err != nil {
		return nil, err
	}

	var result []entity.BestEffort
	for i := range efforts {
		if i == 0 || efforts[i].Name != efforts[i-1].Name {
			result = append(result, efforts[i])
		}
	}

	return result, nil
}

func (r *bestEffortRepository) DeleteAll(ctx context.Context) error {
	return xcontext.DB(ctx).Where("1 = 1").Delete(&entity.BestEffort{}).Error
}
