package repository_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pacelog/backend/internal/entity"
	"github.com/pacelog/backend/internal/repository"
	"github.com/pacelog/backend/pkg/testutil"
)

func Test_bestEffortRepository_CreateIfNotExists_NeverUpdates(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := repository.NewBestEffortRepository()

	// Re-inserting an existing id with a different moving time must leave
	// the stored row untouched.
	changed := *testutil.BestEffort1
	changed.MovingTimeSeconds = 1
	require.NoError(t, repo.CreateIfNotExists(ctx, []*entity.BestEffort{&changed}))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for _, e := range all {
		if e.ID == testutil.BestEffort1.ID {
			require.Equal(t, testutil.BestEffort1.MovingTimeSeconds, e.MovingTimeSeconds)
		}
	}
}

func Test_bestEffortRepository_GetPersonalBests(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := repository.NewBestEffortRepository()
	bests, err := repo.GetPersonalBests(ctx)
	require.NoError(t, err)
	require.Len(t, bests, 2)

	byName := map[string]entity.BestEffort{}
	for _, b := range bests {
		byName[b.Name] = b
	}

	// The 5K bucket holds {1500, 1450}; the minimum wins even though the
	// slower one is older.
	require.Equal(t, 1450, byName["5K"].MovingTimeSeconds)
	require.Equal(t, 3300, byName["10K"].MovingTimeSeconds)
}

func Test_bestEffortRepository_GetPersonalBests_TieBreak(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := repository.NewBestEffortRepository()

	// Same bucket, same moving time, earlier start date. The earlier effort
	// must win the tie.
	tied := &entity.BestEffort{
		ID:                9000,
		ActivityID:        1001,
		AthleteID:         4242,
		Name:              "5K",
		DistanceMeters:    5000,
		MovingTimeSeconds: 1450,
		StartDate:         time.Date(2023, 4, 1, 6, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.CreateIfNotExists(ctx, []*entity.BestEffort{tied}))

	bests, err := repo.GetPersonalBests(ctx)
	require.NoError(t, err)
	for _, b := range bests {
		if b.Name == "5K" {
			require.Equal(t, int64(9000), b.ID)
		}
	}
}

func Test_bestEffortRepository_DeleteAll(t *testing.T) {
	ctx := testutil.MockContext()
	testutil.CreateFixtureDb(ctx)

	repo := repository.NewBestEffortRepository()
	require.NoError(t, repo.DeleteAll(ctx))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}
