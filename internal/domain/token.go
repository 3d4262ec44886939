package domain

import (
	"context"
	"errors"
	"time"

	"github.com/pacelog/backend/internal/entity"
	"github.com/pacelog/backend/internal/repository"
	"github.com/pacelog/backend/pkg/errorx"
	"github.com/pacelog/backend/pkg/strava"
	"github.com/pacelog/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// refreshLeeway is how long before expiry a token is refreshed proactively.
const refreshLeeway = 5 * time.Minute

// tokenManager owns the OAuth credential lifecycle. It is shared by the auth
// and sync domains; all state lives in the token repository.
type tokenManager struct {
	oauthTokenRepo repository.OAuthTokenRepository
	stravaClient   strava.Client

	now func() time.Time
}

func newTokenManager(
	oauthTokenRepo repository.OAuthTokenRepository,
	stravaClient strava.Client,
) *tokenManager {
	return &tokenManager{
		oauthTokenRepo: oauthTokenRepo,
		stravaClient:   stravaClient,
		now:            time.Now,
	}
}

// validToken returns a token that is good for at least refreshLeeway. When
// the stored one expires sooner it performs a refresh grant and persists the
// result first. A failed refresh leaves the stale row untouched so that a
// later call can retry.
func (m *tokenManager) validToken(ctx context.Context) (*entity.OAuthToken, error) {
	token, err := m.oauthTokenRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotConnected, "Not connected to Strava")
		}

		xcontext.Logger(ctx).Errorf("Cannot get the oauth token: %v", err)
		return nil, errorx.Unknown
	}

	if token.ExpiresAt.After(m.now().Add(refreshLeeway)) {
		return token, nil
	}

	refreshed, err := m.stravaClient.RefreshToken(ctx, token.RefreshToken)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot refresh the oauth token: %v", err)
		return nil, errorx.New(errorx.RefreshFailed, "Cannot refresh the Strava token")
	}

	// Strava rotates the refresh token on every grant, but guard against an
	// empty field so a stored token is never wiped.
	refreshToken := refreshed.RefreshToken
	if refreshToken == "" {
		refreshToken = token.RefreshToken
	}

	now := m.now()
	newToken := &entity.OAuthToken{
		AthleteID:    token.AthleteID,
		AccessToken:  refreshed.AccessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    refreshed.Expiry(now),
		UpdatedAt:    now,
	}

	if err := m.oauthTokenRepo.Save(ctx, newToken); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save the refreshed token: %v", err)
		return nil, errorx.Unknown
	}

	return newToken, nil
}
