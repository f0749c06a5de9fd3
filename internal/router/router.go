package router

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/mealflow/takeout-admin/internal/auth"
	"github.com/mealflow/takeout-admin/internal/employee"
	"github.com/mealflow/takeout-admin/pkg/result"
	"github.com/mealflow/takeout-admin/pkg/utilities"
)

// loggingResponseWriter wraps http.ResponseWriter to capture status and size.
type loggingResponseWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.status = code
	lrw.ResponseWriter.WriteHeader(code)
}

func (lrw *loggingResponseWriter) Write(b []byte) (int, error) {
	if lrw.status == 0 {
		lrw.status = http.StatusOK
	}
	n, err := lrw.ResponseWriter.Write(b)
	lrw.size += n
	return n, err
}

// RequestIDMiddleware assigns a KSUID request id when the client did not
// send one, and echoes it on the response.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get("X-Request-Id")
			if rid == "" {
				rid = utilities.NewKSUID()
				r.Header.Set("X-Request-Id", rid)
			}
			w.Header().Set("X-Request-Id", rid)
			next.ServeHTTP(w, r)
		})
	}
}

// LoggingMiddleware returns a middleware that logs requests at debug level using the provided sugared logger.
func LoggingMiddleware(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			lrw := &loggingResponseWriter{ResponseWriter: w}
			next.ServeHTTP(lrw, r)
			dur := time.Since(start)
			status := lrw.status
			if status == 0 {
				status = http.StatusOK
			}
			logger.Debugw("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"remote", r.RemoteAddr,
				"status", status,
				"duration_ms", float64(dur.Microseconds())/1000.0,
				"size", lrw.size,
				"request_id", r.Header.Get("X-Request-Id"),
			)
		})
	}
}

// SecurityHeadersMiddleware returns a middleware that sets common HTTP security headers.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "no-referrer-when-downgrade")
			if w.Header().Get("Content-Security-Policy") == "" {
				w.Header().Set("Content-Security-Policy", "default-src 'self'; object-src 'none'; base-uri 'self';")
			}
			if r.TLS != nil {
				w.Header().Set("Strict-Transport-Security", "max-age=2592000; includeSubDomains")
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RegisterRoutes mounts HTTP handlers using the standard library's http.ServeMux.
// Login and the health probe are open; every other /admin route sits behind
// the token middleware that populates the actor id.
func RegisterRoutes(logger *zap.SugaredLogger, emp *employee.Handler, issuer *auth.TokenIssuer) http.Handler {
	mux := http.NewServeMux()

	// health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// registered without a method so wrong-method requests get 405 here
	// instead of falling through to the protected /admin/ catch-all
	mux.HandleFunc("/admin/employee/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			result.FailStatus(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		emp.Login(w, r)
	})

	protected := http.NewServeMux()
	protected.HandleFunc("POST /admin/employee/logout", emp.Logout)
	protected.HandleFunc("POST /admin/employee", emp.Create)
	protected.HandleFunc("GET /admin/employee/page", emp.Page)
	protected.HandleFunc("POST /admin/employee/status/{status}", emp.SetStatus)
	protected.HandleFunc("GET /admin/employee/{id}", emp.GetByID)
	protected.HandleFunc("PUT /admin/employee", emp.Update)
	mux.Handle("/admin/", auth.Middleware(issuer, logger)(protected))

	handler := RequestIDMiddleware()(LoggingMiddleware(logger)(SecurityHeadersMiddleware()(mux)))
	return handler
}
