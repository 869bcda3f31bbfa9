package models

import "time"

// GroupActivityRecord is one row of the daily activity log: one group, one day.
// The (group_name, activity_date) pair is not unique; re-imports produce duplicates
// and every row counts as its own event.
type GroupActivityRecord struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	GroupName       string    `json:"group_name" gorm:"index" binding:"required"`
	ActivityDate    string    `json:"activity_date" gorm:"index" binding:"required,datetime=2006-01-02"`
	ParticipantsRaw *string   `json:"participants_raw"`
	Sentiment       string    `json:"sentiment"`
	Summary         string    `json:"summary"`
	Insights        *string   `json:"insights"`
	ComplaintText   *string   `json:"complaint_text"`
	CreatedAt       time.Time `json:"created_at"`
}

func (GroupActivityRecord) TableName() string {
	return "group_activity"
}

// GroupSnapshot is the latest known state of a single group.
type GroupSnapshot struct {
	GroupName    string  `json:"group_name"`
	ActivityDate string  `json:"activity_date"`
	Sentiment    string  `json:"sentiment"`
	Summary      string  `json:"summary"`
	Insights     *string `json:"insights"`
}
