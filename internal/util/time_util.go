package util

import (
	"time"
)

// EndOfYear is the last instant of December 31 in UTC. A trade dated on or
// before it is reflected in that year's closing value.
func EndOfYear(year int) time.Time {
	return time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC)
}

// NewDate builds a UTC midnight date, keeping trade date comparisons free of
// time zone drift.
func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
