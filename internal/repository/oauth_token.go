package repository

import (
	"context"

	"github.com/pacelog/backend/internal/entity"
	"github.com/pacelog/backend/pkg/xcontext"
	"gorm.io/gorm/clause"
)

type OAuthTokenRepository interface {
	// Get returns the token row. There is at most one; gorm.ErrRecordNotFound
	// means the athlete is not connected.
	Get(ctx context.Context) (*entity.OAuthToken, error)

	// Save inserts the token or replaces the existing row of the same
	// athlete.
	Save(ctx context.Context, token *entity.OAuthToken) error

	Delete(ctx context.Context) error
}

type oauthTokenRepository struct{}

func NewOAuthTokenRepository() *oauthTokenRepository {
	return &oauthTokenRepository{}
}

func (r *oauthTokenRepository) Get(ctx context.Context) (*entity.OAuthToken, error) {
	var result entity.OAuthToken
	err := xcontext.DB(ctx).Take(&result).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *oauthTokenRepository) Save(ctx context.Context, token *entity.OAuthToken) error {
	return xcontext.DB(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "athlete_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"access_token", "refresh_token", "expires_at", "updated_at",
			}),
		}).
		Create(token).Error
}

func (r *oauthTokenRepository) Delete(ctx context.Context) error {
	return xcontext.DB(ctx).Where("1 = 1").Delete(&entity.OAuthToken{}).Error
}
