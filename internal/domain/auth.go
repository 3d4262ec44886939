package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pacelog/backend/internal/entity"
	"github.com/pacelog/backend/internal/model"
	"github.com/pacelog/backend/internal/repository"
	"github.com/pacelog/backend/pkg/errorx"
	"github.com/pacelog/backend/pkg/strava"
	"github.com/pacelog/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type AuthDomain interface {
	GetAuthorizationURL(ctx context.Context, req *model.GetAuthorizationURLRequest) (*model.GetAuthorizationURLResponse, error)
	ExchangeCode(ctx context.Context, req *model.ExchangeCodeRequest) (*model.ExchangeCodeResponse, error)
	GetStatus(ctx context.Context, req *model.GetStatusRequest) (*model.GetStatusResponse, error)
	Disconnect(ctx context.Context, req *model.DisconnectRequest) (*model.DisconnectResponse, error)
}

type authDomain struct {
	oauthTokenRepo repository.OAuthTokenRepository
	activityRepo   repository.ActivityRepository
	bestEffortRepo repository.BestEffortRepository
	stravaClient   strava.Client
}

func NewAuthDomain(
	oauthTokenRepo repository.OAuthTokenRepository,
	activityRepo repository.ActivityRepository,
	bestEffortRepo repository.BestEffortRepository,
	stravaClient strava.Client,
) AuthDomain {
	return &authDomain{
		oauthTokenRepo: oauthTokenRepo,
		activityRepo:   activityRepo,
		bestEffortRepo: bestEffortRepo,
		stravaClient:   stravaClient,
	}
}

func (d *authDomain) GetAuthorizationURL(
	ctx context.Context, req *model.GetAuthorizationURLRequest,
) (*model.GetAuthorizationURLResponse, error) {
	if req.RedirectURI == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty redirect uri")
	}

	state := uuid.NewString()
	return &model.GetAuthorizationURLResponse{
		URL:   d.stravaClient.AuthCodeURL(state, req.RedirectURI),
		State: state,
	}, nil
}

func (d *authDomain) ExchangeCode(
	ctx context.Context, req *model.ExchangeCodeRequest,
) (*model.ExchangeCodeResponse, error) {
	if req.Code == "" {
		return nil, errorx.New(errorx.BadRequest, "Not allow an empty authorization code")
	}

	token, err := d.stravaClient.ExchangeCode(ctx, req.Code)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot exchange the authorization code: %v", err)
		return nil, errorx.New(errorx.Unauthenticated, "Cannot exchange the authorization code")
	}

	// The connection holds at most one token row. Clear any previous
	// connection before storing the new one.
	if err := d.oauthTokenRepo.Delete(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot clear the previous token: %v", err)
		return nil, errorx.Unknown
	}

	now := time.Now()
	err = d.oauthTokenRepo.Save(ctx, &entity.OAuthToken{
		AthleteID:    token.Athlete.ID,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		ExpiresAt:    token.Expiry(now),
		UpdatedAt:    now,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save the oauth token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.ExchangeCodeResponse{AthleteID: token.Athlete.ID}, nil
}

func (d *authDomain) GetStatus(
	ctx context.Context, req *model.GetStatusRequest,
) (*model.GetStatusResponse, error) {
	_, err := d.oauthTokenRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &model.GetStatusResponse{Connected: false}, nil
		}

		xcontext.Logger(ctx).Errorf("Cannot get the oauth token: %v", err)
		return nil, errorx.Unknown
	}

	return &model.GetStatusResponse{Connected: true}, nil
}

func (d *authDomain) Disconnect(
	ctx context.Context, req *model.DisconnectRequest,
) (*model.DisconnectResponse, error) {
	if err := d.bestEffortRepo.DeleteAll(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete best efforts: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.oauthTokenRepo.Delete(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete the oauth token: %v", err)
		return nil, errorx.Unknown
	}

	if err := d.activityRepo.DeleteAll(ctx); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete activities: %v", err)
		return nil, errorx.Unknown
	}

	return &model.DisconnectResponse{}, nil
}
