package config

import (
	"fmt"
	"time"
)

type Configs struct {
	Env      string
	LogLevel string

	Database  DatabaseConfigs
	ApiServer ServerConfigs
	Strava    StravaConfigs
	Sync      SyncConfigs
}

type DatabaseConfigs struct {
	// Driver is either "mysql" or "sqlite".
	Driver   string
	Host     string
	Port     string
	Database string
	User     string
	Password string

	// SQLitePath is the database file used when Driver is "sqlite".
	SQLitePath string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string

	AllowedOrigins []string
}

func (s *ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type StravaConfigs struct {
	ClientID     string
	ClientSecret string

	// BaseURL overrides the production Strava host. Tests point it at a
	// local server; empty means the real API.
	BaseURL string

	// RequestTimeout bounds every single call to the Strava API.
	RequestTimeout time.Duration
}

type SyncConfigs struct {
	// PageSize is the per_page parameter of the activity-list endpoint.
	PageSize int

	// EnrichMinInterval is the minimum spacing between two detail calls
	// during the enrichment pass.
	EnrichMinInterval time.Duration
}
