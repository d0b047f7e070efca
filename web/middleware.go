// ABOUTME: HTTP middleware for the booking backend
// ABOUTME: Panic recovery boundary plus request-ID tagging and logging
package web

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-Id"

// recoverMiddleware is the catch-all error boundary: any panic below it
// becomes a generic 500 payload instead of tearing down the connection.
func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.WithFields(logrus.Fields{
					"panic": rec,
					"path":  r.URL.Path,
				}).Error("recovered from panic in handler")
				s.writeJSON(w, http.StatusInternalServerError, map[string]any{
					"success": false,
					"message": "Error interno del servidor",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// requestLogMiddleware tags each request with an ID and logs it.
func (s *Server) requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		s.logger.WithFields(logrus.Fields{
			"requestId": requestID,
			"method":    r.Method,
			"path":      r.URL.Path,
		}).Info("request received")

		next.ServeHTTP(w, r)
	})
}

// withMiddleware applies the standard middleware chain to handlers that
// mux does not route through Use, such as the not-found handler.
func (s *Server) withMiddleware(h http.Handler) http.Handler {
	return s.recoverMiddleware(s.requestLogMiddleware(h))
}
