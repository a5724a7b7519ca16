package middleware

import (
	"log/slog"
	"net/http"

	"github.com/accelor-hrms/hrms-backend-go/internal/pkg/logger"
	"github.com/go-chi/httplog/v3"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses the client's X-Request-ID or generates a UUID, echoes it
// back, and attaches it to the context and the request log line.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := r.Header.Get(RequestIDHeader)
		if rid == "" {
			rid = uuid.New().String()
		}

		w.Header().Set(RequestIDHeader, rid)

		ctx := logger.WithRequestID(r.Context(), rid)
		httplog.SetAttrs(ctx, slog.String("request.id", rid))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
