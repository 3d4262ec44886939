package testutil

import (
	"context"
	"errors"
	"time"

	"github.com/pacelog/backend/pkg/strava"
)

// MockStravaClient implements strava.Client with overridable func fields.
// Calls without an override fail, so a test only wires what it expects.
type MockStravaClient struct {
	AuthCodeURLFunc    func(state, redirectURI string) string
	ExchangeCodeFunc   func(ctx context.Context, code string) (*strava.TokenResponse, error)
	RefreshTokenFunc   func(ctx context.Context, refreshToken string) (*strava.TokenResponse, error)
	ListActivitiesFunc func(ctx context.Context, accessToken string, page, perPage int, after *time.Time) ([]strava.SummaryActivity, error)
	GetActivityFunc    func(ctx context.Context, accessToken string, activityID int64) (*strava.DetailedActivity, error)
}

func (c *MockStravaClient) AuthCodeURL(state, redirectURI string) string {
	if c.AuthCodeURLFunc != nil {
		return c.AuthCodeURLFunc(state, redirectURI)
	}

	return "https://www.strava.com/oauth/authorize?state=" + state
}

func (c *MockStravaClient) ExchangeCode(ctx context.Context, code string) (*strava.TokenResponse, error) {
	if c.ExchangeCodeFunc != nil {
		return c.ExchangeCodeFunc(ctx, code)
	}

	return nil, errors.New("not implemented")
}

func (c *MockStravaClient) RefreshToken(ctx context.Context, refreshToken string) (*strava.TokenResponse, error) {
	if c.RefreshTokenFunc != nil {
		return c.RefreshTokenFunc(ctx, refreshToken)
	}

	return nil, errors.New("not implemented")
}

func (c *MockStravaClient) ListActivities(
	ctx context.Context, accessToken string, page, perPage int, after *time.Time,
) ([]strava.SummaryActivity, error) {
	if c.ListActivitiesFunc != nil {
		return c.ListActivitiesFunc(ctx, accessToken, page, perPage, after)
	}

	return nil, errors.New("not implemented")
}

func (c *MockStravaClient) GetActivity(
	ctx context.Context, accessToken string, activityID int64,
) (*strava.DetailedActivity, error) {
	if c.GetActivityFunc != nil {
		return c.GetActivityFunc(ctx, accessToken, activityID)
	}

	return nil, errors.New("not implemented")
}
