// ABOUTME: Google Calendar client adapter for the booking backend
// ABOUTME: Owns service-account auth, scope selection, and error classification
package gcal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/example/cabana-booking/models"
)

// Error kinds surfaced to the HTTP layer for status-code and message mapping.
var (
	// ErrPermission covers credential failures and insufficient calendar
	// permissions (401/403 from the API, or unloadable credential files).
	ErrPermission = errors.New("calendar permission denied")

	// ErrCalendarNotFound means the configured calendar ID does not exist
	// or is not visible to the service account.
	ErrCalendarNotFound = errors.New("calendar not found")
)

// maxResults is the Google Calendar API maximum page size.
const maxResults = 250

// Client is the calendar operations surface used by the HTTP handlers.
// A test double implementing it lets the handlers run without network access.
type Client interface {
	// ListEvents returns the occupied intervals of events between timeMin
	// and timeMax, along with the raw event count.
	ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]models.EventInterval, int, error)

	// CalendarInfo fetches metadata of the configured calendar.
	CalendarInfo(ctx context.Context) (*models.CalendarInfo, error)

	// InsertEvent creates an event and returns its identifiers.
	InsertEvent(ctx context.Context, event *calendar.Event) (*models.CreatedEvent, error)
}

// GoogleClient talks to the Google Calendar API as a service account.
// Credentials are established per call with the minimum scope for that
// operation; no token material is cached across calls.
type GoogleClient struct {
	credentialsFile string
	calendarID      string
}

// NewGoogleClient creates a client for a fixed calendar using the given
// service-account credentials file.
func NewGoogleClient(credentialsFile, calendarID string) *GoogleClient {
	return &GoogleClient{
		credentialsFile: credentialsFile,
		calendarID:      calendarID,
	}
}

// service builds a Calendar API service authorized with a single scope.
func (c *GoogleClient) service(ctx context.Context, scope string) (*calendar.Service, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(c.credentialsFile),
		option.WithScopes(scope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: creating calendar service: %v", ErrPermission, err)
	}
	return svc, nil
}

func (c *GoogleClient) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]models.EventInterval, int, error) {
	svc, err := c.service(ctx, calendar.CalendarReadonlyScope)
	if err != nil {
		return nil, 0, err
	}

	var intervals []models.EventInterval
	total := 0
	pageToken := ""

	for {
		call := svc.Events.List(c.calendarID).
			TimeMin(timeMin.Format(time.RFC3339)).
			TimeMax(timeMax.Format(time.RFC3339)).
			MaxResults(maxResults).
			SingleEvents(true).
			OrderBy("startTime")
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		events, err := call.Context(ctx).Do()
		if err != nil {
			return nil, 0, classify("listing events", err)
		}

		total += len(events.Items)
		for _, item := range events.Items {
			interval, ok := EventInterval(item)
			if !ok {
				continue
			}
			intervals = append(intervals, interval)
		}

		pageToken = events.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return intervals, total, nil
}

func (c *GoogleClient) CalendarInfo(ctx context.Context) (*models.CalendarInfo, error) {
	svc, err := c.service(ctx, calendar.CalendarReadonlyScope)
	if err != nil {
		return nil, err
	}

	cal, err := svc.Calendars.Get(c.calendarID).Context(ctx).Do()
	if err != nil {
		return nil, classify("getting calendar", err)
	}

	return &models.CalendarInfo{
		ID:         cal.Id,
		Summary:    cal.Summary,
		TimeZone:   cal.TimeZone,
		AccessRole: "reader",
	}, nil
}

func (c *GoogleClient) InsertEvent(ctx context.Context, event *calendar.Event) (*models.CreatedEvent, error) {
	svc, err := c.service(ctx, calendar.CalendarEventsScope)
	if err != nil {
		return nil, err
	}

	created, err := svc.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, classify("inserting event", err)
	}

	return &models.CreatedEvent{
		ID:       created.Id,
		HTMLLink: created.HtmlLink,
	}, nil
}

// classify maps API status codes onto the adapter's error kinds so handlers
// can pick status codes and hint messages with errors.Is.
func classify(op string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s: %v", ErrPermission, op, err)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s: %v", ErrCalendarNotFound, op, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
