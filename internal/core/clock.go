package core

import "time"

// Layouts for the human-readable strings captured on each activity record.
// DateLayout produces the calendar-day string ("Mon Jan 02 2006") that the
// "today" filter compares by exact string equality, and TimeLayout the clock
// string shown next to each record. ClockLayout is the long form used for the
// dashboard's current-time display.
const (
	DateLayout  = "Mon Jan 02 2006"
	TimeLayout  = "03:04 PM"
	ClockLayout = "Monday, January 2, 2006, 03:04 PM"
)

// Clock abstracts the current time so the aggregation pipeline and the
// submission path can be driven deterministically in tests.
type Clock interface {
	Now() time.Time
}

// systemClock reads the real wall clock in local time, matching the
// submission-time capture semantics of the records themselves.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }

// DayString formats t as the calendar-day string stored on activity records.
func DayString(t time.Time) string { return t.Format(DateLayout) }
