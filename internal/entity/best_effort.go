package entity

import "time"

// BestEffort is one distance-bucket record extracted from a detailed
// activity. Rows are inserted once and never updated afterwards; a record is
// a historical fact.
type BestEffort struct {
	ID         int64    `gorm:"primaryKey;autoIncrement:false"`
	ActivityID int64    `gorm:"index"`
	Activity   Activity `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
	AthleteID  int64

	// Name is the distance bucket, e.g. "5K", "10K", "Half-Marathon".
	Name string `gorm:"index"`

	DistanceMeters     float64
	ElapsedTimeSeconds int
	MovingTimeSeconds  int
	StartDate          time.Time
	PRRank             *int
}

func (BestEffort) TableName() string {
	return "best_efforts"
}
