package domain

import (
	"context"
	"math"

	"github.com/pacelog/backend/internal/model"
	"github.com/pacelog/backend/internal/repository"
	"github.com/pacelog/backend/pkg/errorx"
	"github.com/pacelog/backend/pkg/xcontext"
)

type StatisticDomain interface {
	GetStats(ctx context.Context, req *model.GetStatsRequest) (*model.GetStatsResponse, error)
	GetPersonalBests(ctx context.Context, req *model.GetPersonalBestsRequest) (*model.GetPersonalBestsResponse, error)
}

type statisticDomain struct {
	activityRepo   repository.ActivityRepository
	bestEffortRepo repository.BestEffortRepository
}

func NewStatisticDomain(
	activityRepo repository.ActivityRepository,
	bestEffortRepo repository.BestEffortRepository,
) StatisticDomain {
	return &statisticDomain{
		activityRepo:   activityRepo,
		bestEffortRepo: bestEffortRepo,
	}
}

func (d *statisticDomain) GetStats(
	ctx context.Context, req *model.GetStatsRequest,
) (*model.GetStatsResponse, error) {
	activities, err := d.activityRepo.GetAll(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get activities: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetStatsResponse{}
	if len(activities) == 0 {
		return resp, nil
	}

	var distanceMeters, elevationGain float64
	var movingSeconds int
	for i := range activities {
		distanceMeters += activities[i].DistanceMeters
		movingSeconds += activities[i].MovingTimeSeconds
		if activities[i].ElevationGain != nil {
			elevationGain += *activities[i].ElevationGain
		}
	}

	resp.TotalRuns = len(activities)
	resp.TotalDistanceKm = math.Round(distanceMeters/1000*10) / 10
	resp.TotalTimeMinutes = movingSeconds / 60
	resp.TotalElevationGain = int(math.Round(elevationGain))
	if resp.TotalDistanceKm > 0 {
		pace := float64(resp.TotalTimeMinutes) / resp.TotalDistanceKm
		resp.AveragePaceMinPerKm = math.Round(pace*100) / 100
	}

	// GetAll orders by start date descending, so the first element is the
	// most recently started run.
	resp.LastRunDate = activities[0].StartDateLocal

	return resp, nil
}

func (d *statisticDomain) GetPersonalBests(
	ctx context.Context, req *model.GetPersonalBestsRequest,
) (*model.GetPersonalBestsResponse, error) {
	efforts, err := d.bestEffortRepo.GetPersonalBests(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get personal bests: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetPersonalBestsResponse{}
	for i := range efforts {
		resp.PersonalBests = append(resp.PersonalBests, model.PersonalBest{
			Name:              efforts[i].Name,
			DistanceMeters:    efforts[i].DistanceMeters,
			MovingTimeSeconds: efforts[i].MovingTimeSeconds,
			AchievedAt:        efforts[i].StartDate,
			ActivityID:        efforts[i].ActivityID,
		})
	}

	return resp, nil
}
