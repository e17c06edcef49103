package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"warden/pkg/requestcontext"
)

// New returns a JSON slog logger writing to stdout.
func New(level string, addSource bool) *slog.Logger {
	return NewWithWriter(os.Stdout, level, addSource)
}

// NewWithWriter is New with an explicit sink, for tests.
func NewWithWriter(w io.Writer, level string, addSource bool) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: addSource,
	})
	return slog.New(contextHandler{h})
}

// ParseLevel maps LOG_LEVEL values to slog levels; unknown values mean info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// PriorityCritical marks records that must be escalated, e.g. an approval
// that reached the platform but could not be persisted.
func PriorityCritical() slog.Attr {
	return slog.String("priority", "critical")
}

// contextHandler adds correlation IDs carried in the context to every record.
type contextHandler struct {
	slog.Handler
}

func (h contextHandler) Handle(ctx context.Context, r slog.Record) error {
	if scanID := requestcontext.ScanID(ctx); scanID != "" {
		r.AddAttrs(slog.String("scan_id", scanID))
	}
	if updateID := requestcontext.UpdateID(ctx); updateID != 0 {
		r.AddAttrs(slog.Int64("update_id", updateID))
	}
	return h.Handler.Handle(ctx, r)
}

func (h contextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return contextHandler{h.Handler.WithAttrs(attrs)}
}

func (h contextHandler) WithGroup(name string) slog.Handler {
	return contextHandler{h.Handler.WithGroup(name)}
}
