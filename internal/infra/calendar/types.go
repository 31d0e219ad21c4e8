package calendar

import "time"

type busyIntervalResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type busyIntervalsResponse struct {
	UserID    string                 `json:"user_id"`
	Day       string                 `json:"day"`
	Intervals []busyIntervalResponse `json:"intervals"`
	Count     int                    `json:"count"`
}
