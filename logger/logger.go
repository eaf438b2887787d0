// Package logger hands kun/log to components that take a *slog.Logger.
package logger

import (
	"context"
	"log/slog"
	"strings"

	"github.com/yaoapp/kun/log"
)

// Handler bridges slog records to kun/log
type Handler struct {
	attrs  []slog.Attr
	groups []string
}

// New create a slog logger writing through kun/log
func New() *slog.Logger {
	return slog.New(&Handler{})
}

// Enabled implements slog.Handler
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	kunLevel := log.GetLevel()
	switch {
	case level < slog.LevelDebug:
		return kunLevel >= log.TraceLevel
	case level < slog.LevelInfo:
		return kunLevel >= log.DebugLevel
	case level < slog.LevelWarn:
		return kunLevel >= log.InfoLevel
	case level < slog.LevelError:
		return kunLevel >= log.WarnLevel
	default:
		return kunLevel >= log.ErrorLevel
	}
}

// Handle implements slog.Handler
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	fields := log.F{}
	for _, attr := range h.attrs {
		fields[attr.Key] = attr.Value.Any()
	}

	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}
	r.Attrs(func(attr slog.Attr) bool {
		fields[prefix+attr.Key] = attr.Value.Any()
		return true
	})

	entry := log.With(fields)
	switch {
	case r.Level < slog.LevelInfo:
		entry.Debug("%s", r.Message)
	case r.Level < slog.LevelWarn:
		entry.Info("%s", r.Message)
	case r.Level < slog.LevelError:
		entry.Warn("%s", r.Message)
	default:
		entry.Error("%s", r.Message)
	}
	return nil
}

// WithAttrs implements slog.Handler
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	prefix := ""
	if len(h.groups) > 0 {
		prefix = strings.Join(h.groups, ".") + "."
	}

	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, attr := range attrs {
		merged = append(merged, slog.Attr{Key: prefix + attr.Key, Value: attr.Value})
	}
	return &Handler{attrs: merged, groups: h.groups}
}

// WithGroup implements slog.Handler
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	groups := make([]string, 0, len(h.groups)+1)
	groups = append(groups, h.groups...)
	return &Handler{attrs: h.attrs, groups: append(groups, name)}
}
