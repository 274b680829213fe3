package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/overlay/cmd/overlay/commands"
	"go.trai.ch/overlay/internal/app"
	"go.trai.ch/overlay/internal/build"
	"go.trai.ch/overlay/internal/core/domain"
)

type call struct {
	name     string
	paths    []domain.FancyPath
	partials []string
	opts     app.Options
	ropts    app.ResolveOptions
	copts    app.CompileOptions
}

type mockApp struct {
	calls []call
	err   error
}

func (m *mockApp) Resolve(_ context.Context, paths []domain.FancyPath, opts app.Options, ropts app.ResolveOptions) error {
	m.calls = append(m.calls, call{name: "resolve", paths: paths, opts: opts, ropts: ropts})
	return m.err
}

func (m *mockApp) Compile(_ context.Context, paths []domain.FancyPath, opts app.Options, copts app.CompileOptions) error {
	m.calls = append(m.calls, call{name: "compile", paths: paths, opts: opts, copts: copts})
	return m.err
}

func (m *mockApp) Watch(_ context.Context, paths []domain.FancyPath, opts app.Options, copts app.CompileOptions) error {
	m.calls = append(m.calls, call{name: "watch", paths: paths, opts: opts, copts: copts})
	return m.err
}

func (m *mockApp) Route(_ context.Context, partials []string, opts app.Options) error {
	m.calls = append(m.calls, call{name: "route", partials: partials, opts: opts})
	return m.err
}

func (m *mockApp) Prune(_ context.Context, opts app.Options) error {
	m.calls = append(m.calls, call{name: "prune", opts: opts})
	return m.err
}

func (m *mockApp) Clean(_ context.Context, opts app.Options) error {
	m.calls = append(m.calls, call{name: "clean", opts: opts})
	return m.err
}

func execute(t *testing.T, mock *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(mock)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Resolve(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "resolve", "--local", "--template", "beez3", "--admin",
		"media://com_foo/css/site.css", "site://images/logo.png")
	require.NoError(t, err)

	require.Len(t, mock.calls, 1)
	got := mock.calls[0]
	assert.Equal(t, "resolve", got.name)
	assert.Equal(t, []domain.FancyPath{"media://com_foo/css/site.css", "site://images/logo.png"}, got.paths)
	assert.True(t, got.ropts.Local)
	assert.False(t, got.ropts.Register)
	assert.Equal(t, "beez3", got.opts.Overrides.Template)
	require.NotNil(t, got.opts.Overrides.Admin)
	assert.True(t, *got.opts.Overrides.Admin)
	assert.Equal(t, "auto", got.opts.LogFormat)
}

func TestCommands_Resolve_ExclusiveFlags(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "resolve", "--local", "--register", "media://a.css")
	require.Error(t, err)
	assert.Empty(t, mock.calls)
}

func TestCommands_AdminUnsetKeepsConfig(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "resolve", "media://a.css")
	require.NoError(t, err)
	assert.Nil(t, mock.calls[0].opts.Overrides.Admin)
}

func TestCommands_Compile(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantKind domain.FallbackKind
		wantJobs int
	}{
		{
			name:     "no fallback",
			args:     []string{"compile", "media://a.less"},
			wantKind: domain.FallbackNone,
		},
		{
			name:     "single fallback",
			args:     []string{"compile", "media://a.less", "-f", "media://a.css"},
			wantKind: domain.FallbackSingle,
		},
		{
			name:     "fallback list and jobs",
			args:     []string{"compile", "media://a.less", "media://b.less", "-f", "media://a.css", "--fallback", "media://b.css", "-j", "3"},
			wantKind: domain.FallbackMany,
			wantJobs: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockApp{}
			_, err := execute(t, mock, tt.args...)
			require.NoError(t, err)

			require.Len(t, mock.calls, 1)
			assert.Equal(t, "compile", mock.calls[0].name)
			assert.Equal(t, tt.wantKind, mock.calls[0].copts.Fallback.Kind())
			assert.Equal(t, tt.wantJobs, mock.calls[0].copts.Jobs)
		})
	}
}

func TestCommands_Watch(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "watch", "--root", "/srv/site", "media://a.less", "-f", "media://a.css")
	require.NoError(t, err)

	require.Len(t, mock.calls, 1)
	assert.Equal(t, "watch", mock.calls[0].name)
	assert.Equal(t, "/srv/site", mock.calls[0].opts.Overrides.Root)
	assert.Equal(t, []domain.FancyPath{"media://a.css"}, mock.calls[0].copts.Fallback.Paths())
}

func TestCommands_Route(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "route", "--request", "index.php?option=com_foo", "--log-format", "json", "--trace", "task=save")
	require.NoError(t, err)

	require.Len(t, mock.calls, 1)
	got := mock.calls[0]
	assert.Equal(t, []string{"task=save"}, got.partials)
	assert.Equal(t, "index.php?option=com_foo", got.opts.Overrides.Request)
	assert.Equal(t, "json", got.opts.LogFormat)
	assert.True(t, got.opts.Trace)
}

func TestCommands_PruneAndClean(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "prune")
	require.NoError(t, err)
	_, err = execute(t, mock, "clean")
	require.NoError(t, err)

	require.Len(t, mock.calls, 2)
	assert.Equal(t, "prune", mock.calls[0].name)
	assert.Equal(t, "clean", mock.calls[1].name)

	_, err = execute(t, mock, "clean", "extra")
	require.Error(t, err)
}

func TestCommands_ShowsUsageWithoutArgs(t *testing.T) {
	for _, name := range []string{"resolve", "compile", "watch", "route"} {
		t.Run(name, func(t *testing.T) {
			mock := &mockApp{}
			out, err := execute(t, mock, name)
			require.NoError(t, err)
			assert.Contains(t, out, "Usage:")
			assert.Empty(t, mock.calls)
		})
	}
}

func TestCommands_ReturnsAppError(t *testing.T) {
	mock := &mockApp{err: errors.New("simulated error")}
	_, err := execute(t, mock, "compile", "media://a.less")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated error")
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "overlay version "+build.Version)
}
