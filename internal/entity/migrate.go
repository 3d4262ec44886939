package entity

import (
	"context"

	"github.com/pacelog/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&OAuthToken{},
		&Activity{},
		&BestEffort{},
	)
}
