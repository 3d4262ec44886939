package strava

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/oauth2"

	"github.com/pacelog/backend/config"
	"github.com/pacelog/backend/pkg/api"
)

// Client wraps the parts of the Strava v3 API this service consumes: the
// OAuth token grants, the paginated activity list, and the single-activity
// detail endpoint.
type Client interface {
	AuthCodeURL(state, redirectURI string) string
	ExchangeCode(ctx context.Context, code string) (*TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error)
	ListActivities(ctx context.Context, accessToken string, page, perPage int, after *time.Time) ([]SummaryActivity, error)
	GetActivity(ctx context.Context, accessToken string, activityID int64) (*DetailedActivity, error)
}

type defaultClient struct {
	clientID     string
	clientSecret string
	baseURL      string
	generator    api.Generator
}

func NewClient(cfg config.StravaConfigs) *defaultClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = BaseURL
	}

	return &defaultClient{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		baseURL:      baseURL,
		generator:    api.NewGenerator(baseURL),
	}
}

func (c *defaultClient) AuthCodeURL(state, redirectURI string) string {
	oauth2Cfg := oauth2.Config{
		ClientID:    c.clientID,
		RedirectURL: redirectURI,
		Scopes:      []string{Scope},
		Endpoint: oauth2.Endpoint{
			AuthURL:  c.baseURL + "/oauth/authorize",
			TokenURL: c.baseURL + "/oauth/token",
		},
	}

	return oauth2Cfg.AuthCodeURL(state, oauth2.SetAuthURLParam("approval_prompt", "auto"))
}

func (c *defaultClient) ExchangeCode(ctx context.Context, code string) (*TokenResponse, error) {
	return c.tokenGrant(ctx, api.Parameter{
		"client_id":     c.clientID,
		"client_secret": c.clientSecret,
		"grant_type":    "authorization_code",
		"code":          code,
	})
}

func (c *defaultClient) RefreshToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	return c.tokenGrant(ctx, api.Parameter{
		"client_id":     c.clientID,
		"client_secret": c.clientSecret,
		"grant_type":    "refresh_token",
		"refresh_token": refreshToken,
	})
}

func (c *defaultClient) tokenGrant(ctx context.Context, params api.Parameter) (*TokenResponse, error) {
	resp, err := c.generator.New("/oauth/token").Body(params).POST(ctx)
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return nil, fmt.Errorf("token grant failed with status %d", resp.Code)
	}

	var token TokenResponse
	if err := resp.Decode(&token); err != nil {
		return nil, err
	}

	if token.AccessToken == "" {
		return nil, fmt.Errorf("token grant returned an empty access token")
	}

	return &token, nil
}

func (c *defaultClient) ListActivities(
	ctx context.Context, accessToken string, page, perPage int, after *time.Time,
) ([]SummaryActivity, error) {
	query := api.Parameter{
		"page":     strconv.Itoa(page),
		"per_page": strconv.Itoa(perPage),
	}
	if after != nil {
		query["after"] = strconv.FormatInt(after.Unix(), 10)
	}

	resp, err := c.generator.New("/api/v3/athlete/activities").
		Query(query).
		GET(ctx, api.OAuth2("Bearer", accessToken))
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return nil, fmt.Errorf("activity list failed with status %d", resp.Code)
	}

	var activities []SummaryActivity
	if err := resp.Decode(&activities); err != nil {
		return nil, err
	}

	return activities, nil
}

func (c *defaultClient) GetActivity(
	ctx context.Context, accessToken string, activityID int64,
) (*DetailedActivity, error) {
	resp, err := c.generator.New("/api/v3/activities/%d", activityID).
		Query(api.Parameter{"include_all_efforts": "true"}).
		GET(ctx, api.OAuth2("Bearer", accessToken))
	if err != nil {
		return nil, err
	}

	if !resp.OK() {
		return nil, fmt.Errorf("activity detail failed with status %d", resp.Code)
	}

	var activity DetailedActivity
	if err := resp.Decode(&activity); err != nil {
		return nil, err
	}

	return &activity, nil
}
