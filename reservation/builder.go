// ABOUTME: Reservation request validation and calendar event payload construction
// ABOUTME: Generates human-readable reservation codes for confirmed bookings
package reservation

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/example/cabana-booking/models"
)

// ErrMissingFields is returned when a required reservation field is absent.
var ErrMissingFields = errors.New("missing required reservation fields")

const (
	codePrefix  = "CB"
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeLength  = 6

	// ColorID for confirmed reservations. Every created reservation is
	// confirmed at creation time; there is no pending state.
	confirmedColorID = "10"

	noMessagePlaceholder = "Sin mensaje adicional"
)

// Validate checks that every required field of the request is present.
// It performs no semantic validation: dates are not checked for order or
// for being in the past, and the guest count is not range-checked.
func Validate(req *models.ReservationRequest) error {
	if req.CheckInDate == "" || req.CheckOutDate == "" ||
		req.Name == "" || req.Email == "" || req.Phone == "" ||
		req.Guests == 0 {
		return ErrMissingFields
	}
	return nil
}

// BuildEvent constructs the all-day calendar event payload for a validated
// request. The check-out date becomes the exclusive end date per the
// calendar service's all-day-event convention.
func BuildEvent(req *models.ReservationRequest) *calendar.Event {
	message := req.Message
	if message == "" {
		message = noMessagePlaceholder
	}

	description := fmt.Sprintf(
		"Reserva confirmada\n\n"+
			"Nombre: %s\n"+
			"Email: %s\n"+
			"Teléfono: %s\n"+
			"Huéspedes: %d\n"+
			"Check-in: %s\n"+
			"Check-out: %s\n\n"+
			"Mensaje: %s",
		req.Name, req.Email, req.Phone, req.Guests,
		req.CheckInDate, req.CheckOutDate, message,
	)

	return &calendar.Event{
		Summary:     fmt.Sprintf("Reserva - %s", req.Name),
		Description: description,
		Start:       &calendar.EventDateTime{Date: req.CheckInDate},
		End:         &calendar.EventDateTime{Date: req.CheckOutDate},
		ColorId:     confirmedColorID,
	}
}

// NewCode generates a reservation code of the form CB-<year>-<6 uppercase
// alphanumerics>. The code is cosmetic: it is returned to the caller but
// never stored, so uniqueness is only probabilistic.
func NewCode() string {
	// 252 is the largest multiple of len(codeCharset) below 256; bytes at
	// or above it are rejected to keep the character distribution uniform.
	const limit = 256 - 256%len(codeCharset)

	buf := make([]byte, 0, codeLength)
	raw := make([]byte, 1)
	for len(buf) < codeLength {
		if _, err := rand.Read(raw); err != nil {
			// crypto/rand never fails on supported platforms
			panic(fmt.Sprintf("reading random bytes: %v", err))
		}
		if int(raw[0]) >= limit {
			continue
		}
		buf = append(buf, codeCharset[int(raw[0])%len(codeCharset)])
	}
	return fmt.Sprintf("%s-%d-%s", codePrefix, time.Now().Year(), buf)
}
