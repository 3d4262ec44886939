package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/pacelog/backend/internal/model"
)

func (s *srv) startSync(cliCtx *cli.Context) error {
	if err := s.load(cliCtx); err != nil {
		return err
	}

	ctx := s.newContext(context.Background())
	resp, err := s.syncDomain.Sync(ctx, &model.SyncRequest{})
	if err != nil {
		return err
	}

	s.logger.Infof("Sync finished, %d activities retained", resp.Synced)
	return nil
}
