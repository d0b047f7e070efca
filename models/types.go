// ABOUTME: Data models shared across the booking backend
// ABOUTME: Defines event intervals, calendar metadata, and reservation requests
package models

import "time"

// EventInterval is a calendar-date span occupied by an existing event.
// Start is inclusive, End is exclusive, per the all-day-event convention
// of the calendar service. Both carry no time-of-day component.
type EventInterval struct {
	Start time.Time
	End   time.Time
}

// CalendarInfo is the metadata of the configured calendar.
type CalendarInfo struct {
	ID         string `json:"id"`
	Summary    string `json:"summary"`
	TimeZone   string `json:"timeZone"`
	AccessRole string `json:"access"`
}

// CreatedEvent identifies an event after a successful insert.
type CreatedEvent struct {
	ID       string `json:"eventId"`
	HTMLLink string `json:"eventLink"`
}

// ReservationRequest is the /agendar request body.
type ReservationRequest struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Guests       int    `json:"guests"`
	Message      string `json:"message,omitempty"`
}
