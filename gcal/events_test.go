// ABOUTME: Tests for event-to-interval conversion and error classification
// ABOUTME: Covers all-day vs timed events, skips, and API status mapping
package gcal

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
)

func TestEventInterval_AllDayEvent(t *testing.T) {
	event := &calendar.Event{
		Start: &calendar.EventDateTime{Date: "2024-06-01"},
		End:   &calendar.EventDateTime{Date: "2024-06-04"},
	}

	interval, ok := EventInterval(event)

	require.True(t, ok)
	assert.Equal(t, "2024-06-01", interval.Start.Format(dateLayout))
	assert.Equal(t, "2024-06-04", interval.End.Format(dateLayout))
}

func TestEventInterval_TimedEventTruncatesToDates(t *testing.T) {
	event := &calendar.Event{
		Start: &calendar.EventDateTime{DateTime: "2024-06-01T15:30:00-06:00"},
		End:   &calendar.EventDateTime{DateTime: "2024-06-03T11:00:00-06:00"},
	}

	interval, ok := EventInterval(event)

	require.True(t, ok)
	assert.Equal(t, "2024-06-01", interval.Start.Format(dateLayout))
	assert.Equal(t, "2024-06-03", interval.End.Format(dateLayout))
}

func TestEventInterval_SameDayTimedEventOccupiesItsDay(t *testing.T) {
	event := &calendar.Event{
		Start: &calendar.EventDateTime{DateTime: "2024-06-01T15:00:00Z"},
		End:   &calendar.EventDateTime{DateTime: "2024-06-01T18:00:00Z"},
	}

	interval, ok := EventInterval(event)

	require.True(t, ok)
	assert.Equal(t, "2024-06-01", interval.Start.Format(dateLayout))
	assert.Equal(t, "2024-06-02", interval.End.Format(dateLayout))
	assert.Equal(t, 24*time.Hour, interval.End.Sub(interval.Start))
}

func TestEventInterval_SkipsCancelledAndMissingStart(t *testing.T) {
	cases := []struct {
		name  string
		event *calendar.Event
	}{
		{"nil event", nil},
		{"missing start", &calendar.Event{}},
		{"cancelled", &calendar.Event{
			Status: "cancelled",
			Start:  &calendar.EventDateTime{Date: "2024-06-01"},
			End:    &calendar.EventDateTime{Date: "2024-06-02"},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := EventInterval(tc.event)
			assert.False(t, ok)
		})
	}
}

func TestEventInterval_MissingEndOccupiesStartDay(t *testing.T) {
	cases := []struct {
		name  string
		start *calendar.EventDateTime
	}{
		{"all-day", &calendar.EventDateTime{Date: "2024-06-01"}},
		{"timed", &calendar.EventDateTime{DateTime: "2024-06-01T15:00:00Z"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			interval, ok := EventInterval(&calendar.Event{Start: tc.start})

			require.True(t, ok)
			assert.Equal(t, "2024-06-01", interval.Start.Format(dateLayout))
			assert.Equal(t, "2024-06-02", interval.End.Format(dateLayout))
		})
	}
}

func TestEventInterval_ExplicitZeroLengthAllDayStaysEmpty(t *testing.T) {
	event := &calendar.Event{
		Start: &calendar.EventDateTime{Date: "2024-06-01"},
		End:   &calendar.EventDateTime{Date: "2024-06-01"},
	}

	interval, ok := EventInterval(event)

	require.True(t, ok)
	assert.True(t, interval.End.Equal(interval.Start))
}

func TestClassify_PermissionCodes(t *testing.T) {
	for _, code := range []int{401, 403} {
		err := classify("listing events", &googleapi.Error{Code: code})
		assert.ErrorIs(t, err, ErrPermission, "code %d", code)
	}
}

func TestClassify_NotFound(t *testing.T) {
	err := classify("getting calendar", &googleapi.Error{Code: 404})

	assert.ErrorIs(t, err, ErrCalendarNotFound)
}

func TestClassify_OtherErrorsStayRemote(t *testing.T) {
	cases := []error{
		&googleapi.Error{Code: 500},
		fmt.Errorf("connection reset"),
	}

	for _, cause := range cases {
		err := classify("listing events", cause)
		assert.False(t, errors.Is(err, ErrPermission))
		assert.False(t, errors.Is(err, ErrCalendarNotFound))
		assert.Error(t, err)
	}
}

func TestClassify_WrapsUnderlyingError(t *testing.T) {
	cause := &googleapi.Error{Code: 500, Message: "backend error"}

	err := classify("listing events", cause)

	var apiErr *googleapi.Error
	assert.ErrorAs(t, err, &apiErr)
}
