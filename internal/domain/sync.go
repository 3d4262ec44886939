package domain

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/pacelog/backend/internal/entity"
	"github.com/pacelog/backend/internal/model"
	"github.com/pacelog/backend/internal/repository"
	"github.com/pacelog/backend/pkg/errorx"
	"github.com/pacelog/backend/pkg/ratelimit"
	"github.com/pacelog/backend/pkg/strava"
	"github.com/pacelog/backend/pkg/xcontext"
	"github.com/puzpuzpuz/xsync"
	"gorm.io/gorm"
)

const defaultPageSize = 100

type SyncDomain interface {
	Sync(ctx context.Context, req *model.SyncRequest) (*model.SyncResponse, error)
}

type syncDomain struct {
	oauthTokenRepo repository.OAuthTokenRepository
	activityRepo   repository.ActivityRepository
	bestEffortRepo repository.BestEffortRepository
	stravaClient   strava.Client
	tokenManager   *tokenManager
	enrichGate     ratelimit.Gate

	// syncMutexes serializes sync runs per athlete so that two overlapping
	// invocations cannot race on the cursor or refresh the token twice.
	syncMutexes *xsync.MapOf[string, *sync.Mutex]
}

func NewSyncDomain(
	oauthTokenRepo repository.OAuthTokenRepository,
	activityRepo repository.ActivityRepository,
	bestEffortRepo repository.BestEffortRepository,
	stravaClient strava.Client,
	enrichGate ratelimit.Gate,
) SyncDomain {
	return &syncDomain{
		oauthTokenRepo: oauthTokenRepo,
		activityRepo:   activityRepo,
		bestEffortRepo: bestEffortRepo,
		stravaClient:   stravaClient,
		tokenManager:   newTokenManager(oauthTokenRepo, stravaClient),
		enrichGate:     enrichGate,
		syncMutexes:    xsync.NewMapOf[*sync.Mutex](),
	}
}

func (d *syncDomain) Sync(ctx context.Context, req *model.SyncRequest) (*model.SyncResponse, error) {
	stored, err := d.oauthTokenRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotConnected, "Not connected to Strava")
		}

		xcontext.Logger(ctx).Errorf("Cannot get the oauth token: %v", err)
		return nil, errorx.Unknown
	}

	// The lock must cover token acquisition. Refresh grants consume the
	// refresh token, so an overlapping run refreshing in parallel would
	// persist a credential minted from an already-spent grant.
	mutex, _ := d.syncMutexes.LoadOrStore(strconv.FormatInt(stored.AthleteID, 10), &sync.Mutex{})
	mutex.Lock()
	defer mutex.Unlock()

	token, err := d.tokenManager.validToken(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := d.activityRepo.GetLatestStartDate(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot determine the sync cursor: %v", err)
		return nil, errorx.Unknown
	}

	pageSize := xcontext.Configs(ctx).Sync.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	synced := 0
	now := time.Now()
	for page := 1; ; page++ {
		items, err := d.stravaClient.ListActivities(ctx, token.AccessToken, page, pageSize, cursor)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot fetch activity page %d: %v", page, err)
			return nil, errorx.New(errorx.BadResponse, "Cannot fetch activities from Strava")
		}

		var batch []*entity.Activity
		for i := range items {
			if !isRunningActivity(&items[i]) {
				continue
			}

			batch = append(batch, convertActivity(&items[i], token.AthleteID, now))
		}

		// Each page is committed before the next fetch. A failure later in
		// the run leaves earlier pages durable and the run resumable.
		if err := d.activityRepo.Upsert(ctx, batch); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot upsert activity page %d: %v", page, err)
			return nil, errorx.Unknown
		}

		synced += len(batch)
		if len(items) < pageSize {
			break
		}
	}

	d.enrich(ctx, token.AccessToken, token.AthleteID)

	return &model.SyncResponse{Synced: synced}, nil
}

// enrich backfills best-effort rows for activities that have none. Per-item
// failures are logged and skipped; the item stays eligible for the next pass.
func (d *syncDomain) enrich(ctx context.Context, accessToken string, athleteID int64) {
	ids, err := d.activityRepo.GetIDsWithoutBestEfforts(ctx)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot list activities without best efforts: %v", err)
		return
	}

	for _, id := range ids {
		if err := d.enrichGate.Wait(ctx); err != nil {
			xcontext.Logger(ctx).Warnf("Enrichment pass interrupted: %v", err)
			return
		}

		detail, err := d.stravaClient.GetActivity(ctx, accessToken, id)
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot fetch detail of activity %d: %v", id, err)
			continue
		}

		if detail.Calories != nil {
			if err := d.activityRepo.UpdateCalories(ctx, id, *detail.Calories); err != nil {
				xcontext.Logger(ctx).Warnf("Cannot update calories of activity %d: %v", id, err)
			}
		}

		if len(detail.BestEfforts) == 0 {
			continue
		}

		efforts := make([]*entity.BestEffort, 0, len(detail.BestEfforts))
		for i := range detail.BestEfforts {
			efforts = append(efforts, convertBestEffort(&detail.BestEfforts[i], id, athleteID))
		}

		if err := d.bestEffortRepo.CreateIfNotExists(ctx, efforts); err != nil {
			xcontext.Logger(ctx).Warnf("Cannot save best efforts of activity %d: %v", id, err)
		}
	}
}
