package model

import "time"

// Period is the aggregation window of a ranking.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// Valid reports whether p is a known ranking period.
func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}

	return false
}

// RankingEntry is a participation score of one student over one period.
type RankingEntry struct {
	UserID           string    `json:"user_id"`
	Period           Period    `json:"period"`
	AttendancePoints int       `json:"attendance_points"`
	MessagePoints    int       `json:"message_points"`
	TotalPoints      int       `json:"total_points"`
	PeriodStart      time.Time `json:"period_start"`
	PeriodEnd        time.Time `json:"period_end"`
	LastUpdated      time.Time `json:"last_updated"`
}
