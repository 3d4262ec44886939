package main

import (
	"context"
	"net/http"

	"github.com/rs/cors"
	"github.com/urfave/cli/v2"

	"github.com/pacelog/backend/api"
	"github.com/pacelog/backend/internal/model"
)

func (s *srv) startApi(cliCtx *cli.Context) error {
	if err := s.load(cliCtx); err != nil {
		return err
	}

	mux := http.NewServeMux()
	baseCtx := func(r *http.Request) context.Context {
		return s.newContext(r.Context())
	}

	endpoints := []interface{ Register(*http.ServeMux, api.ContextFunc) }{
		&api.Endpoint[model.GetAuthorizationURLRequest, model.GetAuthorizationURLResponse]{
			Method: http.MethodGet,
			Path:   "/strava/authorize",
			Handle: s.authDomain.GetAuthorizationURL,
		},
		&api.Endpoint[model.ExchangeCodeRequest, model.ExchangeCodeResponse]{
			Method: http.MethodPost,
			Path:   "/strava/callback",
			Handle: s.authDomain.ExchangeCode,
		},
		&api.Endpoint[model.SyncRequest, model.SyncResponse]{
			Method: http.MethodPost,
			Path:   "/strava/sync",
			Handle: s.syncDomain.Sync,
		},
		&api.Endpoint[model.GetStatsRequest, model.GetStatsResponse]{
			Method: http.MethodGet,
			Path:   "/strava/stats",
			Handle: s.statisticDomain.GetStats,
		},
		&api.Endpoint[model.GetPersonalBestsRequest, model.GetPersonalBestsResponse]{
			Method: http.MethodGet,
			Path:   "/strava/personal-bests",
			Handle: s.statisticDomain.GetPersonalBests,
		},
		&api.Endpoint[model.GetStatusRequest, model.GetStatusResponse]{
			Method: http.MethodGet,
			Path:   "/strava/status",
			Handle: s.authDomain.GetStatus,
		},
		&api.Endpoint[model.DisconnectRequest, model.DisconnectResponse]{
			Method: http.MethodPost,
			Path:   "/strava/disconnect",
			Handle: s.authDomain.Disconnect,
		},
	}

	for _, e := range endpoints {
		e.Register(mux, baseCtx)
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: s.configs.ApiServer.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	}).Handler(mux)

	s.logger.Infof("Starting api server on %s", s.configs.ApiServer.Address())
	s.server = &http.Server{
		Addr:    s.configs.ApiServer.Address(),
		Handler: handler,
	}

	return s.server.ListenAndServe()
}
