package logbus

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Handler is a slog.Handler that mirrors every record to a Hub as a
// rendered text line, feeding the live log view in the browser.
type Handler struct {
	hub   *Hub
	level slog.Level
	attrs []slog.Attr
}

// NewHandler creates a Handler publishing records at or above level.
func NewHandler(hub *Hub, level slog.Level) *Handler {
	return &Handler{
		hub:   hub,
		level: level,
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) Handle(_ context.Context, rec slog.Record) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] %s",
		rec.Time.Format("2006-01-02 15:04:05"),
		rec.Level,
		rec.Message,
	)
	for _, a := range h.attrs {
		writeAttr(&b, a)
	}
	rec.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, a)
		return true
	})

	h.hub.Publish(b.String())
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &Handler{
		hub:   h.hub,
		level: h.level,
		attrs: merged,
	}
}

// WithGroup is accepted but groups are not rendered in the line format.
func (h *Handler) WithGroup(name string) slog.Handler {
	return h
}

func writeAttr(b *strings.Builder, a slog.Attr) {
	fmt.Fprintf(b, " %s=%v", a.Key, a.Value.Resolve())
}
