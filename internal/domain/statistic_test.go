package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pacelog/backend/internal/model"
	"github.com/pacelog/backend/internal/repository"
	"github.com/pacelog/backend/pkg/testutil"
)

func newTestStatisticDomain() StatisticDomain {
	return NewStatisticDomain(
		repository.NewActivityRepository(),
		repository.NewBestEffortRepository(),
	)
}

func Test_statisticDomain_GetStats_Empty(t *testing.T) {
	ctx := testutil.MockContext()
	domain := newTestStatisticDomain()

	resp, err := domain.GetStats(ctx, &model.GetStatsRequest{})
	require.NoError(t, err)
	require.Equal(t, &model.GetStatsResponse{}, resp)
}

func Test_statisticDomain_GetStats(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestStatisticDomain()

	resp, err := domain.GetStats(ctx, &model.GetStatsRequest{})
	require.NoError(t, err)
	require.Equal(t, 2, resp.TotalRuns)
	require.Equal(t, 15.0, resp.TotalDistanceKm)
	require.Equal(t, 80, resp.TotalTimeMinutes)
	require.Equal(t, 100, resp.TotalElevationGain)
	require.Equal(t, 5.33, resp.AveragePaceMinPerKm)
	require.True(t, resp.LastRunDate.Equal(testutil.Activity2.StartDateLocal))
}

func Test_statisticDomain_GetPersonalBests(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)
	domain := newTestStatisticDomain()

	resp, err := domain.GetPersonalBests(ctx, &model.GetPersonalBestsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.PersonalBests, 2)

	// Names sort lexically, so 10K comes first.
	require.Equal(t, "10K", resp.PersonalBests[0].Name)
	require.Equal(t, 3300, resp.PersonalBests[0].MovingTimeSeconds)
	require.Equal(t, testutil.Activity2.ID, resp.PersonalBests[0].ActivityID)

	require.Equal(t, "5K", resp.PersonalBests[1].Name)
	require.Equal(t, 1450, resp.PersonalBests[1].MovingTimeSeconds)
	require.True(t, resp.PersonalBests[1].AchievedAt.Equal(testutil.BestEffort2.StartDate))
}
