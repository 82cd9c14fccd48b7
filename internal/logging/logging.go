// Package logging builds the slog loggers used across the checklist.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

type Options struct {
	// Writer receives log output. Nil discards everything.
	Writer io.Writer
	JSON   bool
	Level  string
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

func New(opts Options) *slog.Logger {
	if opts.Writer == nil {
		return slog.New(slog.DiscardHandler)
	}
	hopts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	if opts.JSON {
		return slog.New(slog.NewJSONHandler(opts.Writer, hopts))
	}
	return slog.New(NewPrettyHandler(opts.Writer, hopts))
}

// OpenFile opens path for appending. The caller closes the returned file.
func OpenFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// PrettyHandler writes one human-readable line per record, colored when the
// writer is a terminal.
type PrettyHandler struct {
	mu    *sync.Mutex
	out   *termenv.Output
	level slog.Leveler
	// attrs are formatted when added, qualified by the group open at that
	// time.
	attrs []string
	group string
}

func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &PrettyHandler{
		mu:    &sync.Mutex{},
		out:   termenv.NewOutput(w),
		level: level,
	}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

//nolint:gocritic // slog.Handler requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var color termenv.Color
	switch {
	case r.Level >= slog.LevelError:
		color = h.out.Color("9")
	case r.Level >= slog.LevelWarn:
		color = h.out.Color("11")
	default:
		color = h.out.Color("8")
	}

	parts := slices.Clone(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		parts = appendAttr(parts, h.group, a)
		return true
	})

	line := fmt.Sprintf("%-5s %s", r.Level.String(), r.Message)
	if !r.Time.IsZero() {
		line = r.Time.Format("15:04:05.000") + " " + line
	}
	if len(parts) > 0 {
		line += " " + strings.Join(parts, " ")
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.out, h.out.String(line).Foreground(color).String())
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.attrs = slices.Clone(h.attrs)
	for _, a := range attrs {
		next.attrs = appendAttr(next.attrs, h.group, a)
	}
	return &next
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.group = qualify(h.group, name)
	return &next
}

// appendAttr formats a as key=value pairs. Empty attrs and empty groups
// produce nothing; a group with an empty key is inlined.
func appendAttr(parts []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return parts
	}
	if a.Value.Kind() == slog.KindGroup {
		sub := prefix
		if a.Key != "" {
			sub = qualify(prefix, a.Key)
		}
		for _, ga := range a.Value.Group() {
			parts = appendAttr(parts, sub, ga)
		}
		return parts
	}
	return append(parts, qualify(prefix, a.Key)+"="+a.Value.String())
}

func qualify(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
