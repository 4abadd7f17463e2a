package server

import (
	"net/http"
	"strings"
	"time"

	"pgnest/internal/utils"

	"github.com/sirupsen/logrus"
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Service) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      rw.statusCode,
			"duration_ms": time.Since(started).Milliseconds(),
		}).Info("http request")
	})
}

func (s *Service) StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if path != "/" && strings.HasSuffix(path, "/") {
			newPath := strings.TrimSuffix(path, "/")
			newURL := *r.URL
			newURL.Path = newPath

			http.Redirect(w, r, newURL.String(), http.StatusMovedPermanently)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// TenantSession guarantees every request carries a session cookie.
// The dashboard serves a single demo tenant, so a missing or broken
// cookie gets a fresh session rather than a login redirect.
func (s *Service) TenantSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(s.config.CookieName)
		if err == nil {
			var sessionID string
			if err := s.cookie.Decode(s.config.CookieName, cookie.Value, &sessionID); err == nil {
				next.ServeHTTP(w, r)
				return
			}
			s.logger.Debug("replacing undecodable session cookie")
		}

		sessionID := utils.NanoID()
		encoded, err := s.cookie.Encode(s.config.CookieName, sessionID)
		if err != nil {
			s.logger.WithError(err).Warn("failed to encode session cookie")
			next.ServeHTTP(w, r)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     s.config.CookieName,
			Value:    encoded,
			Path:     "/",
			MaxAge:   s.config.SessionMaxAgeSec,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		next.ServeHTTP(w, r)
	})
}
