// Package compiler implements the stylesheet compiler: it inlines local
// @import statements and minifies the result.
package compiler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/parse/v2"
	lexcss "github.com/tdewolff/parse/v2/css"
	"go.trai.ch/overlay/internal/core/domain"
	"go.trai.ch/overlay/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	mediaType  = "text/css"
	importRule = "@import"
	sourceExt  = ".less"
)

// Compiler implements ports.Compiler.
type Compiler struct {
	minifier *minify.M
}

// New creates a new Compiler.
func New() *Compiler {
	m := minify.New()
	m.AddFunc(mediaType, css.Minify)
	return &Compiler{minifier: m}
}

// Compile inlines the imports of source, optionally minifies it and writes dest atomically.
func (c *Compiler) Compile(ctx context.Context, source, dest string, opts ports.CompileOptions) error {
	b := &bundler{
		ctx:         ctx,
		importPaths: opts.ImportPaths,
		active:      make(map[string]bool),
	}

	var out bytes.Buffer
	if err := b.inline(&out, source); err != nil {
		return err
	}

	data := out.Bytes()
	if opts.Minify {
		minified, err := c.minifier.Bytes(mediaType, data)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrMinifyFailed.Error()), "source", source)
		}
		data = minified
	}

	return writeAtomic(dest, data)
}

// bundler resolves @import statements depth first.
type bundler struct {
	ctx         context.Context
	importPaths []string
	active      map[string]bool
}

func (b *bundler) inline(out *bytes.Buffer, file string) error {
	if err := b.ctx.Err(); err != nil {
		return err
	}

	abs, err := filepath.Abs(file)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrImportNotFound.Error()), "path", file)
	}
	if b.active[abs] {
		return zerr.With(domain.ErrImportCycle, "path", abs)
	}
	b.active[abs] = true
	defer delete(b.active, abs)

	//nolint:gosec // Path comes from the resolved site layout
	src, err := os.ReadFile(abs)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "path", abs)
	}

	lexer := lexcss.NewLexer(parse.NewInputBytes(src))
	for {
		tt, data := lexer.Next()
		switch {
		case tt == lexcss.ErrorToken:
			return lexErr(lexer.Err(), abs)
		case tt == lexcss.AtKeywordToken && strings.EqualFold(string(data), importRule):
			if err := b.importRule(out, lexer, filepath.Dir(abs)); err != nil {
				return zerr.With(err, "imported_from", abs)
			}
		default:
			out.Write(data)
		}
	}
}

// importRule consumes an @import statement up to its semicolon and either
// inlines the target or copies the statement unchanged.
func (b *bundler) importRule(out *bytes.Buffer, lexer *lexcss.Lexer, dir string) error {
	var (
		raw    bytes.Buffer
		target string
		media  strings.Builder
	)
	raw.WriteString(importRule)

	for {
		tt, data := lexer.Next()
		if tt == lexcss.ErrorToken {
			out.Write(raw.Bytes())
			return nil
		}
		raw.Write(data)

		if tt == lexcss.SemicolonToken {
			break
		}

		switch {
		case target == "" && tt == lexcss.StringToken:
			target = unquote(string(data))
		case target == "" && tt == lexcss.URLToken:
			target = unquote(strings.TrimSuffix(strings.TrimPrefix(string(data), "url("), ")"))
		default:
			media.Write(data)
		}
	}

	if !isLocal(target) {
		out.Write(raw.Bytes())
		return nil
	}

	path, ok := b.find(dir, target)
	if !ok {
		return zerr.With(domain.ErrImportNotFound, "import", target)
	}

	query := strings.TrimSpace(media.String())
	if query != "" {
		out.WriteString("@media " + query + "{")
	}
	if err := b.inline(out, path); err != nil {
		return err
	}
	if query != "" {
		out.WriteString("}")
	}
	return nil
}

// find looks for an import next to the importing file, then on the import paths.
// Targets without an extension are tried with .less first.
func (b *bundler) find(dir, target string) (string, bool) {
	names := []string{target}
	if filepath.Ext(target) == "" {
		names = []string{target + sourceExt, target}
	}

	for _, base := range append([]string{dir}, b.importPaths...) {
		for _, name := range names {
			candidate := filepath.Join(base, filepath.FromSlash(name))
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}
	}
	return "", false
}

// isLocal reports whether an import target should be inlined.
// Remote URLs and plain .css imports are left to the browser.
func isLocal(target string) bool {
	switch {
	case target == "":
		return false
	case strings.Contains(target, "://"), strings.HasPrefix(target, "//"):
		return false
	case strings.EqualFold(filepath.Ext(target), domain.CompiledExt):
		return false
	default:
		return true
	}
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func lexErr(err error, path string) error {
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "path", path)
}

func writeAtomic(dest string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".compile-*"+domain.CompiledExt)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", dest)
	}
	tmpName := tmp.Name()

	_, err = tmp.Write(data)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Chmod(tmpName, domain.FilePerm)
	}
	if err == nil {
		err = os.Rename(tmpName, dest)
	}
	if err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", dest)
	}
	return nil
}
