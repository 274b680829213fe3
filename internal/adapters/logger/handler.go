package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/overlay/internal/ui/output"
	"go.trai.ch/overlay/internal/ui/style"
)

// ConsoleHandler prints one colored line per record for interactive runs.
// Warnings and errors get an icon; attributes follow as key=value pairs.
type ConsoleHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []string
	prefix string
}

// NewConsoleHandler writes to w, or stderr when w is nil.
// Records below opts.Level are dropped; the default level is Info.
func NewConsoleHandler(w io.Writer, opts *slog.HandlerOptions) *ConsoleHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &ConsoleHandler{out: output.New(w), level: level}
}

func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

//nolint:gocritic // slog.Handler passes the record by value
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	parts := make([]string, 0, 2+len(h.attrs)+r.NumAttrs())
	if icon != "" {
		parts = append(parts, icon)
	}
	parts = append(parts, r.Message)
	parts = append(parts, h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		parts = append(parts, h.pair(attr))
		return true
	})

	line := h.out.String(strings.Join(parts, " ")).Foreground(color).String()
	_, err := h.out.WriteString(line + "\n")
	return err
}

// WithAttrs pre-renders attrs under the current group.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = make([]string, len(h.attrs), len(h.attrs)+len(attrs))
	copy(clone.attrs, h.attrs)
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, h.pair(attr))
	}
	return &clone
}

// WithGroup nests later attribute keys below name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func (h *ConsoleHandler) pair(attr slog.Attr) string {
	return h.prefix + attr.Key + "=" + attr.Value.String()
}

func levelStyle(level slog.Level) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning, termenv.RGBColor(string(style.Yellow))
	default:
		return "", termenv.RGBColor(string(style.Slate))
	}
}
