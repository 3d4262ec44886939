package testutil

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pacelog/backend/config"
	"github.com/pacelog/backend/internal/entity"
	"github.com/pacelog/backend/pkg/logger"
	"github.com/pacelog/backend/pkg/xcontext"
)

func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env:      "testing",
		LogLevel: "error",
		Strava: config.StravaConfigs{
			ClientID:       "client-id",
			ClientSecret:   "client-secret",
			RequestTimeout: time.Second,
		},
		Sync: config.SyncConfigs{
			PageSize: 100,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.ParseLevel(cfg.LogLevel)))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}
