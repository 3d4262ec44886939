package strava_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pacelog/backend/config"
	"github.com/pacelog/backend/pkg/strava"
	"github.com/pacelog/backend/pkg/testutil"
)

func newTestClient(serverURL string) strava.Client {
	return strava.NewClient(config.StravaConfigs{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		BaseURL:      serverURL,
	})
}

func Test_defaultClient_AuthCodeURL(t *testing.T) {
	client := newTestClient("https://www.strava.com")
	u := client.AuthCodeURL("some-state", "https://pacelog.example/callback")

	require.True(t, strings.HasPrefix(u, "https://www.strava.com/oauth/authorize?"))
	require.Contains(t, u, "client_id=client-id")
	require.Contains(t, u, "state=some-state")
	require.Contains(t, u, "approval_prompt=auto")
	require.Contains(t, u, "scope=read%2Cactivity%3Aread_all")
}

func Test_defaultClient_ExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/oauth/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		require.Equal(t, "the-code", r.PostForm.Get("code"))
		require.Equal(t, "client-secret", r.PostForm.Get("client_secret"))

		w.Write([]byte(`{
			"access_token": "access-token",
			"refresh_token": "refresh-token",
			"expires_at": 1893456000,
			"athlete": {"id": 4242}
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	token, err := client.ExchangeCode(testutil.MockContext(), "the-code")
	require.NoError(t, err)
	require.Equal(t, "access-token", token.AccessToken)
	require.Equal(t, "refresh-token", token.RefreshToken)
	require.Equal(t, int64(4242), token.Athlete.ID)
	require.Equal(t, int64(1893456000), token.ExpiresAt)
}

func Test_defaultClient_RefreshToken_BadResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message": "Bad Request"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.RefreshToken(testutil.MockContext(), "stale-refresh")
	require.Error(t, err)
}

func Test_defaultClient_ListActivities(t *testing.T) {
	after := time.Date(2023, 5, 1, 6, 0, 0, 0, time.UTC)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/athlete/activities", r.URL.Path)
		require.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))
		require.Equal(t, "2", r.URL.Query().Get("page"))
		require.Equal(t, "100", r.URL.Query().Get("per_page"))
		require.Equal(t, "1682920800", r.URL.Query().Get("after"))

		w.Write([]byte(`[
			{"id": 1001, "name": "Morning Run", "sport_type": "Run", "distance": 5000.0,
			 "moving_time": 1500, "start_date": "2023-05-01T06:00:00Z"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	items, err := client.ListActivities(testutil.MockContext(), "access-token", 2, 100, &after)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int64(1001), items[0].ID)
	require.Equal(t, "Run", items[0].SportType)
	require.Nil(t, items[0].AverageHeartrate)
}

func Test_defaultClient_GetActivity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v3/activities/1001", r.URL.Path)
		require.Equal(t, "true", r.URL.Query().Get("include_all_efforts"))

		w.Write([]byte(`{
			"id": 1001, "name": "Morning Run", "sport_type": "Run",
			"best_efforts": [
				{"id": 9001, "name": "5K", "distance": 5000.0, "moving_time": 1500,
				 "elapsed_time": 1510, "start_date": "2023-05-01T06:00:00Z", "pr_rank": 1}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	activity, err := client.GetActivity(testutil.MockContext(), "access-token", 1001)
	require.NoError(t, err)
	require.Len(t, activity.BestEfforts, 1)
	require.Equal(t, "5K", activity.BestEfforts[0].Name)
	require.NotNil(t, activity.BestEfforts[0].PRRank)
	require.Equal(t, 1, *activity.BestEfforts[0].PRRank)
}
