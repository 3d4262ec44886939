package testutil

import (
	"context"
	"time"

	"github.com/pacelog/backend/internal/entity"
	"github.com/pacelog/backend/internal/repository"
)

func ptrFloat64(f float64) *float64 { return &f }

var (
	Token1 = &entity.OAuthToken{
		AthleteID:    4242,
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	Activity1 = &entity.Activity{
		ID:                 1001,
		AthleteID:          4242,
		Name:               "Morning Run",
		Type:               "Run",
		DistanceMeters:     5000,
		MovingTimeSeconds:  1500,
		ElapsedTimeSeconds: 1560,
		ElevationGain:      ptrFloat64(42),
		StartDate:          time.Date(2023, 5, 1, 6, 0, 0, 0, time.UTC),
		StartDateLocal:     time.Date(2023, 5, 1, 8, 0, 0, 0, time.UTC),
	}

	Activity2 = &entity.Activity{
		ID:                 1002,
		AthleteID:          4242,
		Name:               "Long Run",
		Type:               "Run",
		DistanceMeters:     10000,
		MovingTimeSeconds:  3300,
		ElapsedTimeSeconds: 3390,
		ElevationGain:      ptrFloat64(58),
		StartDate:          time.Date(2023, 5, 3, 6, 30, 0, 0, time.UTC),
		StartDateLocal:     time.Date(2023, 5, 3, 8, 30, 0, 0, time.UTC),
	}

	BestEffort1 = &entity.BestEffort{
		ID:                 9001,
		ActivityID:         1001,
		AthleteID:          4242,
		Name:               "5K",
		DistanceMeters:     5000,
		ElapsedTimeSeconds: 1510,
		MovingTimeSeconds:  1500,
		StartDate:          time.Date(2023, 5, 1, 6, 0, 0, 0, time.UTC),
	}

	BestEffort2 = &entity.BestEffort{
		ID:                 9002,
		ActivityID:         1002,
		AthleteID:          4242,
		Name:               "5K",
		DistanceMeters:     5000,
		ElapsedTimeSeconds: 1460,
		MovingTimeSeconds:  1450,
		StartDate:          time.Date(2023, 5, 3, 6, 30, 0, 0, time.UTC),
	}

	BestEffort3 = &entity.BestEffort{
		ID:                 9003,
		ActivityID:         1002,
		AthleteID:          4242,
		Name:               "10K",
		DistanceMeters:     10000,
		ElapsedTimeSeconds: 3390,
		MovingTimeSeconds:  3300,
		StartDate:          time.Date(2023, 5, 3, 6, 30, 0, 0, time.UTC),
	}
)

func CreateFixtureDb(ctx context.Context) {
	tokenRepo := repository.NewOAuthTokenRepository()
	if err := tokenRepo.Save(ctx, Token1); err != nil {
		panic(err)
	}

	activityRepo := repository.NewActivityRepository()
	err := activityRepo.Upsert(ctx, []*entity.Activity{Activity1, Activity2})
	if err != nil {
		panic(err)
	}

	bestEffortRepo := repository.NewBestEffortRepository()
	err = bestEffortRepo.CreateIfNotExists(ctx, []*entity.BestEffort{
		BestEffort1, BestEffort2, BestEffort3,
	})
	if err != nil {
		panic(err)
	}
}
