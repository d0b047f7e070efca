// ABOUTME: Event payload to interval conversion
// ABOUTME: Normalizes all-day and timed events onto civil-date spans
package gcal

import (
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/example/cabana-booking/models"
)

const dateLayout = "2006-01-02"

// EventInterval extracts the occupied [start, end) date span of an event.
// All-day events carry their dates directly; timed events are truncated to
// their calendar date component. A timed event contained within a single
// day, or an event of either kind with no end at all, still occupies its
// start date, so the end is pushed to the next date. Cancelled events and
// events without a start are skipped.
func EventInterval(event *calendar.Event) (models.EventInterval, bool) {
	if event == nil || event.Start == nil || event.Status == "cancelled" {
		return models.EventInterval{}, false
	}

	start, ok := eventDate(event.Start)
	if !ok {
		return models.EventInterval{}, false
	}

	end, hasEnd := eventDate(event.End)
	if !hasEnd || (event.Start.DateTime != "" && !end.After(start)) {
		end = start.AddDate(0, 0, 1)
	}

	return models.EventInterval{Start: start, End: end}, true
}

// eventDate resolves the calendar date of an event boundary, preferring the
// all-day Date field over DateTime.
func eventDate(edt *calendar.EventDateTime) (time.Time, bool) {
	if edt == nil {
		return time.Time{}, false
	}

	if edt.Date != "" {
		t, err := time.Parse(dateLayout, edt.Date)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}

	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return time.Time{}, false
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), true
	}

	return time.Time{}, false
}
