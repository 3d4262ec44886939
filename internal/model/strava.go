package model

import "time"

type GetAuthorizationURLRequest struct {
	RedirectURI string `json:"redirect_uri"`
}

type GetAuthorizationURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

type ExchangeCodeRequest struct {
	Code string `json:"code"`
}

type ExchangeCodeResponse struct {
	AthleteID int64 `json:"athlete_id"`
}

type SyncRequest struct{}

type SyncResponse struct {
	// Synced is the number of running activities retained by this run after
	// type filtering.
	Synced int `json:"synced"`
}

type GetStatsRequest struct{}

type GetStatsResponse struct {
	TotalRuns           int       `json:"total_runs"`
	TotalDistanceKm     float64   `json:"total_distance_km"`
	TotalTimeMinutes    int       `json:"total_time_minutes"`
	TotalElevationGain  int       `json:"total_elevation_gain"`
	AveragePaceMinPerKm float64   `json:"average_pace_min_per_km"`
	LastRunDate         time.Time `json:"last_run_date"`
}

type PersonalBest struct {
	Name              string    `json:"name"`
	DistanceMeters    float64   `json:"distance_meters"`
	MovingTimeSeconds int       `json:"moving_time_seconds"`
	AchievedAt        time.Time `json:"achieved_at"`
	ActivityID        int64     `json:"activity_id"`
}

type GetPersonalBestsRequest struct{}

type GetPersonalBestsResponse struct {
	PersonalBests []PersonalBest `json:"personal_bests"`
}

type GetStatusRequest struct{}

type GetStatusResponse struct {
	Connected bool `json:"connected"`
}

type DisconnectRequest struct{}

type DisconnectResponse struct{}
