package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/overlay/internal/adapters/logger"
	"go.trai.ch/overlay/internal/ui/style"
)

func newConsole(t *testing.T, level slog.Level) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	return slog.New(logger.NewConsoleHandler(buf, &slog.HandlerOptions{Level: level})), buf
}

func TestConsoleHandler_Levels(t *testing.T) {
	lg, buf := newConsole(t, slog.LevelInfo)

	lg.Debug("hidden")
	lg.Info("compiled")
	lg.Warn("slow", "ms", 120)
	lg.Error("failed")

	assert.Equal(t,
		"compiled\n"+
			style.Warning+" slow ms=120\n"+
			style.Cross+" failed\n",
		buf.String(),
	)
}

func TestConsoleHandler_AttrsAndGroups(t *testing.T) {
	lg, buf := newConsole(t, slog.LevelInfo)

	lg.With("site", "/srv/site").
		WithGroup("cache").
		With("dir", "media/overlay/compiled").
		WithGroup("entry").
		Info("hit", "id", "abc")

	assert.Equal(t,
		"hit site=/srv/site cache.dir=media/overlay/compiled cache.entry.id=abc\n",
		buf.String(),
	)
}

func TestConsoleHandler_WithAttrsDoesNotShareState(t *testing.T) {
	lg, buf := newConsole(t, slog.LevelInfo)

	base := lg.With("a", 1)
	base.With("b", 2).Info("first")
	base.With("c", 3).Info("second")

	assert.Equal(t, "first a=1 b=2\nsecond a=1 c=3\n", buf.String())
}
