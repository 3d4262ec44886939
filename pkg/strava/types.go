package strava

import "time"

const (
	BaseURL = "https://www.strava.com"

	// Scope grants read access to the athlete profile and the full
	// activity history, nothing else.
	Scope = "read,activity:read_all"
)

// TokenResponse is the payload of both the authorization-code and the
// refresh-token grant.
type TokenResponse struct {
	AccessToken  string  `json:"access_token"`
	RefreshToken string  `json:"refresh_token"`
	ExpiresAt    int64   `json:"expires_at"`
	ExpiresIn    int     `json:"expires_in"`
	Athlete      Athlete `json:"athlete"`
}

// Expiry converts the epoch fields into a time.Time, preferring the absolute
// expires_at over the relative expires_in.
func (t *TokenResponse) Expiry(now time.Time) time.Time {
	if t.ExpiresAt != 0 {
		return time.Unix(t.ExpiresAt, 0)
	}

	return now.Add(time.Duration(t.ExpiresIn) * time.Second)
}

type Athlete struct {
	ID int64 `json:"id"`
}

// SummaryActivity is one item of the paginated activity-list endpoint.
// Optional fields are pointers so that an absent value never reads as zero.
type SummaryActivity struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Type               string    `json:"type"`
	SportType          string    `json:"sport_type"`
	Distance           float64   `json:"distance"`
	MovingTime         int       `json:"moving_time"`
	ElapsedTime        int       `json:"elapsed_time"`
	TotalElevationGain *float64  `json:"total_elevation_gain"`
	StartDate          time.Time `json:"start_date"`
	StartDateLocal     time.Time `json:"start_date_local"`
	AverageSpeed       *float64  `json:"average_speed"`
	MaxSpeed           *float64  `json:"max_speed"`
	AverageHeartrate   *float64  `json:"average_heartrate"`
	MaxHeartrate       *float64  `json:"max_heartrate"`
	LocationCity       *string   `json:"location_city"`
	LocationCountry    *string   `json:"location_country"`
	Athlete            Athlete   `json:"athlete"`
}

// DetailedActivity is the payload of the single-activity endpoint. It embeds
// the best-effort list which the summary endpoint never carries.
type DetailedActivity struct {
	SummaryActivity

	Calories    *float64     `json:"calories"`
	BestEfforts []BestEffort `json:"best_efforts"`
}

// BestEffort is one distance-bucket record embedded in a detailed activity.
type BestEffort struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Distance    float64   `json:"distance"`
	MovingTime  int       `json:"moving_time"`
	ElapsedTime int       `json:"elapsed_time"`
	StartDate   time.Time `json:"start_date"`
	PRRank      *int      `json:"pr_rank"`
}
