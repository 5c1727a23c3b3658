package core

import (
	"sort"

	"pulsetrack-backend-go/internal/models"
)

// NoActivitiesPlaceholder is shown in place of the activity list when no
// records match the current day.
const NoActivitiesPlaceholder = "No activities logged today. Start by adding your first activity!"

// Summary is the output of the aggregation pipeline: the full ordered list,
// the slice of it belonging to the given day, and the derived statistics.
type Summary struct {
	OrderedAll      []models.Activity
	Today           []models.Activity
	ActivitiesToday int
	TotalActivities int
	ActiveDays      int
}

// Aggregate runs the activity aggregation pipeline over one decoded snapshot.
//
// It is a pure function of its inputs: records are copied, sorted by
// timestamp descending (stable, so server-assigned timestamp ties keep their
// input order), filtered to the records whose Date equals today by exact
// string comparison, and reduced to three statistics. The day string is
// compared as captured at submission time, not recomputed from the server
// timestamp. An empty snapshot is not an error; it yields empty slices and
// zero statistics.
func Aggregate(records []models.Activity, today string) Summary {
	ordered := make([]models.Activity, len(records))
	copy(ordered, records)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.After(ordered[j].Timestamp)
	})

	todayView := make([]models.Activity, 0, len(ordered))
	days := make(map[string]struct{}, len(ordered))
	for _, a := range ordered {
		days[a.Date] = struct{}{}
		if a.Date == today {
			todayView = append(todayView, a)
		}
	}

	return Summary{
		OrderedAll:      ordered,
		Today:           todayView,
		ActivitiesToday: len(todayView),
		TotalActivities: len(ordered),
		ActiveDays:      len(days),
	}
}

// Placeholder returns the message to display instead of the activity list,
// or "" when there is something to show.
func (s Summary) Placeholder() string {
	if len(s.Today) == 0 {
		return NoActivitiesPlaceholder
	}
	return ""
}
