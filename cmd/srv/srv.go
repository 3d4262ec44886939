package main

import (
	"context"
	"net/http"

	"github.com/urfave/cli/v2"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pacelog/backend/config"
	"github.com/pacelog/backend/internal/domain"
	"github.com/pacelog/backend/internal/entity"
	"github.com/pacelog/backend/internal/repository"
	"github.com/pacelog/backend/pkg/logger"
	"github.com/pacelog/backend/pkg/ratelimit"
	"github.com/pacelog/backend/pkg/strava"
	"github.com/pacelog/backend/pkg/xcontext"
)

type srv struct {
	app *cli.App

	configs config.Configs
	logger  logger.Logger
	db      *gorm.DB

	oauthTokenRepo repository.OAuthTokenRepository
	activityRepo   repository.ActivityRepository
	bestEffortRepo repository.BestEffortRepository

	stravaClient strava.Client

	authDomain      domain.AuthDomain
	syncDomain      domain.SyncDomain
	statisticDomain domain.StatisticDomain

	server *http.Server
}

func (s *srv) load(cliCtx *cli.Context) error {
	if err := s.loadConfig(cliCtx.String("config")); err != nil {
		return err
	}

	s.logger = logger.NewLogger(logger.ParseLevel(s.configs.LogLevel))

	if err := s.loadDatabase(); err != nil {
		return err
	}

	s.loadRepos()
	s.loadDomains()

	return nil
}

func (s *srv) loadDatabase() error {
	var err error
	switch s.configs.Database.Driver {
	case "sqlite":
		s.db, err = gorm.Open(sqlite.Open(s.configs.Database.SQLitePath), &gorm.Config{})
	default:
		s.db, err = gorm.Open(mysql.Open(s.configs.Database.ConnectionString()), &gorm.Config{})
	}
	if err != nil {
		return err
	}

	return entity.MigrateTable(s.newContext(context.Background()))
}

func (s *srv) loadRepos() {
	s.oauthTokenRepo = repository.NewOAuthTokenRepository()
	s.activityRepo = repository.NewActivityRepository()
	s.bestEffortRepo = repository.NewBestEffortRepository()
}

func (s *srv) loadDomains() {
	s.stravaClient = strava.NewClient(s.configs.Strava)

	s.authDomain = domain.NewAuthDomain(
		s.oauthTokenRepo, s.activityRepo, s.bestEffortRepo, s.stravaClient)
	s.syncDomain = domain.NewSyncDomain(
		s.oauthTokenRepo, s.activityRepo, s.bestEffortRepo, s.stravaClient,
		ratelimit.NewMinInterval(s.configs.Sync.EnrichMinInterval))
	s.statisticDomain = domain.NewStatisticDomain(s.activityRepo, s.bestEffortRepo)
}

// newContext carries everything the repositories and domains read from the
// request context.
func (s *srv) newContext(ctx context.Context) context.Context {
	ctx = xcontext.WithConfigs(ctx, s.configs)
	ctx = xcontext.WithLogger(ctx, s.logger)
	ctx = xcontext.WithDB(ctx, s.db)
	ctx = xcontext.WithHTTPClient(ctx, &http.Client{Timeout: s.configs.Strava.RequestTimeout})
	return ctx
}
