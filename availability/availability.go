// ABOUTME: Occupied-date computation from calendar event intervals
// ABOUTME: Expands [start, end) date spans into a deduplicated sorted date list
package availability

import (
	"sort"
	"time"

	"github.com/example/cabana-booking/models"
)

// DateFormat is the wire format for occupied dates.
const DateFormat = "2006-01-02"

// OccupiedDates expands each event interval into its covered calendar dates
// and returns the union, sorted ascending. Start dates are inclusive, end
// dates exclusive. The walk advances by whole calendar days rather than
// 24-hour increments so DST transitions cannot shift a date boundary.
func OccupiedDates(events []models.EventInterval) []string {
	seen := make(map[string]struct{})
	dates := make([]string, 0)

	for _, ev := range events {
		start := truncateToDate(ev.Start)
		end := truncateToDate(ev.End)

		for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
			key := d.Format(DateFormat)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			dates = append(dates, key)
		}
	}

	sort.Strings(dates)
	return dates
}

// truncateToDate drops the time-of-day component, keeping the location so
// day arithmetic stays in the event's own calendar.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
