package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"gitea.com/go-chi/session"

	"github.com/blogem/canvass-dashboard/userctx"
)

const redacted = "[REDACTED]"

// AuditLogger middleware logs all POST/PUT/DELETE requests
func AuditLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only log mutation operations
			if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
				logger.Info("audit",
					"user", auditUser(r),
					"method", r.Method,
					"path", r.URL.Path,
					"query", r.URL.RawQuery,
					"ip", getIPAddress(r),
					"user_agent", r.UserAgent(),
					"form", captureFormData(r),
				)
			}

			next.ServeHTTP(w, r)
		})
	}
}

func auditUser(r *http.Request) string {
	if u := userctx.GetUsername(r.Context()); u != "" {
		return u
	}
	if sess := session.GetSession(r); sess != nil {
		if u, ok := sess.Get(SessionUsername).(string); ok && u != "" {
			return u
		}
	}
	// Login attempts run before a session exists.
	if r.URL.Path == "/login" {
		if err := r.ParseForm(); err == nil && r.PostForm.Get("username") != "" {
			return r.PostForm.Get("username")
		}
	}
	return "anonymous"
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	// Check X-Real-IP header
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}

	// Fall back to RemoteAddr
	ip := r.RemoteAddr
	// Remove port if present
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}

// captureFormData returns the posted form as a log group, with password
// fields masked.
func captureFormData(r *http.Request) slog.Value {
	if err := r.ParseForm(); err != nil {
		return slog.StringValue("")
	}

	attrs := make([]slog.Attr, 0, len(r.PostForm))
	for key, values := range r.PostForm {
		value := strings.Join(values, ",")
		if isSecretField(key) {
			value = redacted
		}
		attrs = append(attrs, slog.String(key, value))
	}
	return slog.GroupValue(attrs...)
}

func isSecretField(key string) bool {
	key = strings.ToLower(key)
	return strings.Contains(key, "password") || strings.Contains(key, "sifre") || strings.Contains(key, "secret")
}
