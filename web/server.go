// ABOUTME: HTTP surface for availability and reservation endpoints
// ABOUTME: Composes the calendar adapter, availability calc, and builder
package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/example/cabana-booking/availability"
	"github.com/example/cabana-booking/config"
	"github.com/example/cabana-booking/gcal"
	"github.com/example/cabana-booking/models"
	"github.com/example/cabana-booking/reservation"
)

const serviceName = "cabana-booking"

// defaultWindow is how far ahead availability looks when the caller does
// not override the time window.
const defaultWindow = 90 * 24 * time.Hour

// Server wires the calendar adapter into the HTTP endpoints.
type Server struct {
	logger   *logrus.Logger
	calendar gcal.Client
	cfg      *config.Config
}

func NewServer(logger *logrus.Logger, calendar gcal.Client, cfg *config.Config) *Server {
	return &Server{
		logger:   logger,
		calendar: calendar,
		cfg:      cfg,
	}
}

// Router builds the route table with the recovery and request-log
// middleware installed.
func (s *Server) Router() *mux.Router {
	router := mux.NewRouter()
	router.Use(s.recoverMiddleware, s.requestLogMiddleware)

	router.HandleFunc("/", s.handleRoot).Methods(http.MethodGet)
	router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	router.HandleFunc("/disponibilidad", s.handleAvailability).Methods(http.MethodGet)
	router.HandleFunc("/agendar", s.handleReserve).Methods(http.MethodPost)
	router.HandleFunc("/test-calendar", s.handleTestCalendar).Methods(http.MethodGet)

	// mux handles unmatched paths and method mismatches outside the route
	// middleware, so both need the chain applied explicitly to keep the
	// JSON error contract.
	router.NotFoundHandler = s.withMiddleware(http.HandlerFunc(s.handleNotFound))
	router.MethodNotAllowedHandler = s.withMiddleware(http.HandlerFunc(s.handleNotFound))

	return router
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"message":   "API de reservas de cabañas",
		"timestamp": time.Now().Format(time.RFC3339),
		"endpoints": map[string]string{
			"GET /health":         "Estado del servicio",
			"GET /disponibilidad": "Fechas ocupadas de los próximos 90 días",
			"POST /agendar":       "Crear una reserva",
			"GET /test-calendar":  "Verificar acceso al calendario",
		},
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   serviceName,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.callContext(r)
	defer cancel()

	now := time.Now()
	intervals, total, err := s.calendar.ListEvents(ctx, now, now.Add(defaultWindow))
	if err != nil {
		s.logger.WithError(err).Error("listing calendar events failed")
		s.writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   err.Error(),
			"message": "No se pudo consultar la disponibilidad",
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":        true,
		"fechasOcupadas": availability.OccupiedDates(intervals),
		"totalEventos":   total,
		"calendarId":     s.cfg.CalendarID,
	})
}

func (s *Server) handleReserve(w http.ResponseWriter, r *http.Request) {
	var req models.ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "invalid_body",
			"message": "El cuerpo de la solicitud no es JSON válido",
		})
		return
	}

	if err := reservation.Validate(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "missing_fields",
			"message": "Faltan campos requeridos para la reserva",
		})
		return
	}

	ctx, cancel := s.callContext(r)
	defer cancel()

	created, err := s.calendar.InsertEvent(ctx, reservation.BuildEvent(&req))
	if err != nil {
		s.logger.WithError(err).WithField("email", req.Email).Error("inserting reservation event failed")
		s.writeReserveError(w, err)
		return
	}

	code := reservation.NewCode()
	s.logger.WithFields(logrus.Fields{
		"eventId":         created.ID,
		"reservationCode": code,
	}).Info("reservation created")

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"eventId":         created.ID,
		"reservationCode": code,
		"message":         "Reserva confirmada",
		"eventLink":       created.HTMLLink,
	})
}

// writeReserveError maps adapter error kinds onto friendlier messages while
// keeping the raw error text for diagnostics.
func (s *Server) writeReserveError(w http.ResponseWriter, err error) {
	code := "remote_error"
	message := "No se pudo crear la reserva"

	switch {
	case errors.Is(err, gcal.ErrPermission):
		code = "permission_denied"
		message = "La cuenta de servicio no tiene permisos de escritura sobre el calendario"
	case errors.Is(err, gcal.ErrCalendarNotFound):
		code = "calendar_not_found"
		message = "El calendario configurado no existe o no es visible"
	}

	s.writeJSON(w, http.StatusInternalServerError, map[string]any{
		"success": false,
		"error":   err.Error(),
		"message": message,
		"details": map[string]string{
			"code":       code,
			"calendarId": s.cfg.CalendarID,
		},
	})
}

func (s *Server) handleTestCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := s.callContext(r)
	defer cancel()

	info, err := s.calendar.CalendarInfo(ctx)
	if err != nil {
		s.logger.WithError(err).Error("calendar metadata check failed")
		s.writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   err.Error(),
			"message": "No se pudo acceder al calendario",
		})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"calendar": info,
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusNotFound, map[string]any{
		"success": false,
		"message": "Ruta no encontrada",
	})
}

// callContext bounds an external calendar call with the configured timeout.
func (s *Server) callContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.cfg.HTTPTimeout)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("writing response failed")
	}
}
