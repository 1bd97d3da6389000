package httpapi

import (
	"log/slog"
	"net/http"
	"time"
)

// statusWriter remembers the status code a handler wrote; handlers that never
// call WriteHeader implicitly send 200.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

// requestLogger logs one line per request after the handler finishes.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		slog.Info("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"took_ms", time.Since(start).Milliseconds(),
		)
	})
}
