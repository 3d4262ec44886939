package repository

import (
	"context"
	"errors"
	"time"

	"github.com/pacelog/backend/internal/entity"
	"github.com/pacelog/backend/pkg/xcontext"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityRepository interface {
	GetAll(ctx context.Context) ([]entity.Activity, error)
	GetByID(ctx context.Context, id int64) (*entity.Activity, error)

	// GetLatestStartDate returns the start date of the most recently started
	// stored activity, or nil when the store is empty. This is the
	// incremental sync cursor.
	GetLatestStartDate(ctx context.Context) (*time.Time, error)

	// Upsert inserts new activities and overwrites the mutable fields of
	// existing ones by id. Calories is excluded; the list payload never
	// carries it and an overwrite would wipe the enriched value.
	Upsert(ctx context.Context, activities []*entity.Activity) error

	// UpdateCalories backfills the calories of one activity from its detail
	// payload.
	UpdateCalories(ctx context.Context, id int64, calories float64) error

	// GetIDsWithoutBestEfforts returns the ids of activities that have no
	// associated best-effort row yet, oldest first.
	GetIDsWithoutBestEfforts(ctx context.Context) ([]int64, error)

	DeleteAll(ctx context.Context) error
}

type activityRepository struct{}

func NewActivityRepository() *activityRepository {
	return &activityRepository{}
}

func (r *activityRepository) GetAll(ctx context.Context) ([]entity.Activity, error) {
	var result []entity.Activity
	err := xcontext.DB(ctx).Order("start_date DESC").Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *activityRepository) GetByID(ctx context.Context, id int64) (*entity.Activity, error) {
	var result entity.Activity
	err := xcontext.DB(ctx).Take(&result, "id=?", id).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *activityRepository) GetLatestStartDate(ctx context.Context) (*time.Time, error) {
	var result entity.Activity
	err := xcontext.DB(ctx).Order("start_date DESC").Take(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &result.StartDate, nil
}

func (r *activityRepository) Upsert(ctx context.Context, activities []*entity.Activity) error {
	if len(activities) == 0 {
		return nil
	}

	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "type", "distance_meters",
				"moving_time_seconds", "elapsed_time_seconds", "elevation_gain",
				"start_date", "start_date_local",
				"average_speed", "max_speed",
				"average_heart_rate", "max_heart_rate",
				"location_city", "location_country",
			}),
		}).
		Create(activities).Error
}

func (r *activityRepository) UpdateCalories(ctx context.Context, id int64, calories float64) error {
	return xcontext.DB(ctx).Model(&entity.Activity{}).
		Where("id = ?", id).
		Update("calories", calories).Error
}

func (r *activityRepository) GetIDsWithoutBestEfforts(ctx context.Context) ([]int64, error) {
	var ids []int64
	err := xcontext.DB(ctx).Model(&entity.Activity{}).
		Where("id NOT IN (?)",
			xcontext.DB(ctx).Model(&entity.BestEffort{}).Select("activity_id")).
		Order("start_date ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *activityRepository) DeleteAll(ctx context.Context) error {
	return xcontext.DB(ctx).Where("1 = 1").Delete(&entity.Activity{}).Error
}
