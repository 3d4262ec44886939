package main

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/pacelog/backend/config"
)

func (s *srv) loadConfig(path string) error {
	configs := config.Configs{
		Env:      "local",
		LogLevel: "info",
		Database: config.DatabaseConfigs{
			Driver:     "sqlite",
			SQLitePath: "pacelog.db",
		},
		ApiServer: config.ServerConfigs{
			Host: "localhost",
			Port: "8080",
		},
		Strava: config.StravaConfigs{
			RequestTimeout: 30 * time.Second,
		},
		Sync: config.SyncConfigs{
			PageSize:          100,
			EnrichMinInterval: 100 * time.Millisecond,
		},
	}

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &configs); err != nil {
			return err
		}
	}

	// Secrets come from the environment, never the config file.
	if v := os.Getenv("STRAVA_CLIENT_ID"); v != "" {
		configs.Strava.ClientID = v
	}
	if v := os.Getenv("STRAVA_CLIENT_SECRET"); v != "" {
		configs.Strava.ClientSecret = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		configs.Database.Password = v
	}

	s.configs = configs
	return nil
}
