package entity

import "time"

// Activity is one synced run. The primary key is the remote activity id,
// stable across syncs and never generated locally.
type Activity struct {
	ID                 int64 `gorm:"primaryKey;autoIncrement:false"`
	AthleteID          int64 `gorm:"index"`
	Name               string
	Type               string
	DistanceMeters     float64
	MovingTimeSeconds  int
	ElapsedTimeSeconds int
	ElevationGain      *float64

	// StartDate is the UTC instant the run started; StartDateLocal carries
	// the athlete's wall clock at that moment. Both come from the remote
	// payload.
	StartDate      time.Time `gorm:"index"`
	StartDateLocal time.Time

	AverageSpeed     *float64
	MaxSpeed         *float64
	AverageHeartRate *float64
	MaxHeartRate     *float64
	Calories         *float64
	LocationCity     *string
	LocationCountry  *string

	CreatedAt time.Time
}

func (Activity) TableName() string {
	return "activities"
}
