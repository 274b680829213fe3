package compiler_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/overlay/internal/adapters/compiler"
	"go.trai.ch/overlay/internal/core/domain"
	"go.trai.ch/overlay/internal/core/ports"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func compile(t *testing.T, source string, opts ports.CompileOptions) (string, error) {
	t.Helper()
	dest := filepath.Join(t.TempDir(), "out.css")
	err := compiler.New().Compile(context.Background(), source, dest, opts)
	if err != nil {
		return "", err
	}
	//nolint:gosec // Test output path
	data, readErr := os.ReadFile(dest)
	require.NoError(t, readErr)
	return string(data), nil
}

func TestCompiler_InlinesAndMinifies(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "vars.less"), "h1 {\n  margin: 0;\n}\n")
	writeFile(t, filepath.Join(dir, "site.less"), "@import \"vars\";\nbody {\n  color: red;\n}\n")

	out, err := compile(t, filepath.Join(dir, "site.less"), ports.CompileOptions{Minify: true})
	require.NoError(t, err)
	assert.Equal(t, "h1{margin:0}body{color:red}", out)
}

func TestCompiler_WithoutMinify(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "site.less"), "body { color: red; }\n")

	out, err := compile(t, filepath.Join(dir, "site.less"), ports.CompileOptions{})
	require.NoError(t, err)
	assert.Equal(t, "body { color: red; }\n", out)
}

func TestCompiler_ImportPathsInOrder(t *testing.T) {
	root := t.TempDir()
	override := filepath.Join(root, "override")
	standard := filepath.Join(root, "standard")
	writeFile(t, filepath.Join(override, "theme.less"), ".from-override{}")
	writeFile(t, filepath.Join(standard, "theme.less"), ".from-standard{}")
	writeFile(t, filepath.Join(root, "src", "site.less"), "@import 'theme.less';")

	out, err := compile(t, filepath.Join(root, "src", "site.less"), ports.CompileOptions{
		ImportPaths: []string{override, standard},
	})
	require.NoError(t, err)
	assert.Contains(t, out, ".from-override")
	assert.NotContains(t, out, ".from-standard")
}

func TestCompiler_SiblingImportWinsOverImportPaths(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "theme.less"), ".sibling{}")
	writeFile(t, filepath.Join(root, "other", "theme.less"), ".other{}")
	writeFile(t, filepath.Join(root, "src", "site.less"), "@import url(\"theme\");")

	out, err := compile(t, filepath.Join(root, "src", "site.less"), ports.CompileOptions{
		ImportPaths: []string{filepath.Join(root, "other")},
	})
	require.NoError(t, err)
	assert.Equal(t, ".sibling{}", out)
}

func TestCompiler_KeepsRemoteAndPlainCSSImports(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "site.less"),
		"@import url(https://fonts.example/x.css);\n@import \"plain.css\";\nbody{}")

	out, err := compile(t, filepath.Join(dir, "site.less"), ports.CompileOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, "@import url(https://fonts.example/x.css);")
	assert.Contains(t, out, "@import \"plain.css\";")
}

func TestCompiler_WrapsMediaQueries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "print.less"), "body{color:black}")
	writeFile(t, filepath.Join(dir, "site.less"), "@import \"print\" print;")

	out, err := compile(t, filepath.Join(dir, "site.less"), ports.CompileOptions{})
	require.NoError(t, err)
	assert.Equal(t, "@media print{body{color:black}}", out)
}

func TestCompiler_Errors(t *testing.T) {
	t.Run("import cycle", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.less"), "@import \"b\";")
		writeFile(t, filepath.Join(dir, "b.less"), "@import \"a\";")

		_, err := compile(t, filepath.Join(dir, "a.less"), ports.CompileOptions{})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrImportCycle.Error())
	})

	t.Run("missing import", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.less"), "@import \"missing\";")

		_, err := compile(t, filepath.Join(dir, "a.less"), ports.CompileOptions{})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrImportNotFound.Error())
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := compile(t, filepath.Join(t.TempDir(), "nope.less"), ports.CompileOptions{})
		require.Error(t, err)
	})

	t.Run("unwritable destination", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.less"), "a{}")
		dest := filepath.Join(dir, "missing", "out.css")

		err := compiler.New().Compile(context.Background(), filepath.Join(dir, "a.less"), dest, ports.CompileOptions{})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrCacheWriteFailed.Error())
	})

	t.Run("canceled context", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.less"), "a{}")
		dest := filepath.Join(dir, "out.css")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := compiler.New().Compile(ctx, filepath.Join(dir, "a.less"), dest, ports.CompileOptions{})
		require.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, dest)
	})
}

func TestCompiler_FailureLeavesDestinationUntouched(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.less"), "@import \"missing\";")
	dest := filepath.Join(dir, "out.css")
	writeFile(t, dest, "previous")

	err := compiler.New().Compile(context.Background(), filepath.Join(dir, "a.less"), dest, ports.CompileOptions{})
	require.Error(t, err)

	//nolint:gosec // Test output path
	data, readErr := os.ReadFile(dest)
	require.NoError(t, readErr)
	assert.Equal(t, "previous", string(data))
}
