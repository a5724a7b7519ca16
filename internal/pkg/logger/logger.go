// Package logger builds the process slog.Logger and carries per-request
// attributes through the context.
package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/go-chi/httplog/v3"
)

type requestIDKey struct{}

// WithRequestID stores the request id for ContextHandler to pick up.
func WithRequestID(ctx context.Context, rid string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, rid)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	rid, _ := ctx.Value(requestIDKey{}).(string)
	return rid
}

// ContextHandler adds the request id to every record logged with a context.
type ContextHandler struct {
	slog.Handler
}

func (h ContextHandler) Handle(ctx context.Context, record slog.Record) error {
	if rid := RequestID(ctx); rid != "" {
		record.AddAttrs(slog.String("request.id", rid))
	}
	return h.Handler.Handle(ctx, record)
}

func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{h.Handler.WithAttrs(attrs)}
}

func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{h.Handler.WithGroup(name)}
}

// New returns a JSON logger in ECS field naming, tagged with app and env.
func New(w io.Writer, level slog.Level, app, env string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(false)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})
	return slog.New(ContextHandler{handler}).With(
		slog.String("app", app),
		slog.String("env", env),
	)
}
