package entity

import "time"

// DefaultWindowDays is the trailing window used when a request names none.
const DefaultWindowDays = 30

// Day truncates t to midnight UTC of its calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WindowStart returns today-days at midnight UTC; rows with date >= WindowStart are in the window.
func WindowStart(now time.Time, days int) time.Time {
	return Day(now).AddDate(0, 0, -days)
}
