package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pdlamini/portfolio/models"
	"github.com/pdlamini/portfolio/repositories"
	"github.com/pdlamini/portfolio/userctx"
)

const redacted = "[REDACTED]"

// sensitiveFields never reach the audit log in clear text.
// The contact message body is redacted too; name and email are kept.
var sensitiveFields = map[string]bool{
	"password": true,
	"message":  true,
}

// AuditLogger middleware records every POST/PUT/DELETE request
func AuditLogger(auditRepo repositories.AuditRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only log mutation operations
			if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
				entry := &models.AuditLogEntry{
					UserEmail: userctx.GetUserEmail(r.Context()),
					Method:    r.Method,
					Path:      r.URL.Path,
					UserAgent: r.UserAgent(),
					IPAddress: getIPAddress(r),
					FormData:  captureFormData(r),
				}

				// A failed audit write never blocks the request itself
				if err := auditRepo.Create(r.Context(), entry); err != nil {
					logger.Error("failed to create audit log entry",
						zap.String("path", entry.Path),
						zap.Error(err),
					)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getIPAddress returns the client host. chi's RealIP middleware has already
// rewritten RemoteAddr from X-Real-IP or X-Forwarded-For.
func getIPAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// captureFormData captures form data as JSON string with sensitive fields redacted
func captureFormData(r *http.Request) string {
	if err := r.ParseForm(); err != nil {
		return ""
	}

	formMap := make(map[string]interface{})
	for key, values := range r.PostForm {
		if sensitiveFields[strings.ToLower(key)] {
			formMap[key] = redacted
			continue
		}
		if len(values) == 1 {
			formMap[key] = values[0]
		} else {
			formMap[key] = values
		}
	}

	jsonData, err := json.Marshal(formMap)
	if err != nil {
		return ""
	}

	return string(jsonData)
}
