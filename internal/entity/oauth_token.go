package entity

import "time"

// OAuthToken is the single credential row of the connected athlete. It is
// created by the code exchange, replaced in place on every refresh, and
// removed on disconnect.
type OAuthToken struct {
	AthleteID    int64 `gorm:"primaryKey;autoIncrement:false"`
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	UpdatedAt    time.Time
}

func (OAuthToken) TableName() string {
	return "oauth_tokens"
}
