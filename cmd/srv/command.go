package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Name = "pacelog"
	app.Usage = "Running-activity ingestion service"
	app.Action = cli.ShowAppHelp
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:  "config",
			Usage: "Path of the configuration file",
			Value: "config.toml",
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      s.startApi,
			Name:        "api",
			Usage:       "Start the api server",
			Category:    "Api",
			Description: `Serves the connect, sync, stats, and personal-best endpoints.`,
		},
		{
			Action:      s.startSync,
			Name:        "sync",
			Usage:       "Run one sync pass and exit",
			Category:    "Worker",
			Description: `Fetches new activities since the stored cursor and backfills best efforts.`,
		},
	}

	s.app = app
}
