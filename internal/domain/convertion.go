package domain

import (
	"time"

	"github.com/pacelog/backend/internal/entity"
	"github.com/pacelog/backend/pkg/strava"
)

// runningTypes is the allow-list of remote activity types kept by the sync
// engine. Everything else is discarded without error.
var runningTypes = map[string]bool{
	"Run":        true,
	"TrailRun":   true,
	"VirtualRun": true,
}

func isRunningActivity(a *strava.SummaryActivity) bool {
	if a.SportType != "" {
		return runningTypes[a.SportType]
	}

	return runningTypes[a.Type]
}

func convertActivity(a *strava.SummaryActivity, athleteID int64, now time.Time) *entity.Activity {
	return &entity.Activity{
		ID:                 a.ID,
		AthleteID:          athleteID,
		Name:               a.Name,
		Type:               a.Type,
		DistanceMeters:     a.Distance,
		MovingTimeSeconds:  a.MovingTime,
		ElapsedTimeSeconds: a.ElapsedTime,
		ElevationGain:      a.TotalElevationGain,
		StartDate:          a.StartDate,
		StartDateLocal:     a.StartDateLocal,
		AverageSpeed:       a.AverageSpeed,
		MaxSpeed:           a.MaxSpeed,
		AverageHeartRate:   a.AverageHeartrate,
		MaxHeartRate:       a.MaxHeartrate,
		LocationCity:       a.LocationCity,
		LocationCountry:    a.LocationCountry,
		CreatedAt:          now,
	}
}

func convertBestEffort(e *strava.BestEffort, activityID, athleteID int64) *entity.BestEffort {
	return &entity.BestEffort{
		ID:                 e.ID,
		ActivityID:         activityID,
		AthleteID:          athleteID,
		Name:               e.Name,
		DistanceMeters:     e.Distance,
		ElapsedTimeSeconds: e.ElapsedTime,
		MovingTimeSeconds:  e.MovingTime,
		StartDate:          e.StartDate,
		PRRank:             e.PRRank,
	}
}
