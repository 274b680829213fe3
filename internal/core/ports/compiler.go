package ports

import "context"

// CompileOptions controls how a stylesheet source is compiled.
type CompileOptions struct {
	// Minify produces compressed output.
	Minify bool
	// ImportPaths are searched in order for relative imports that cannot be
	// found next to the importing file.
	ImportPaths []string
}

// Compiler turns a stylesheet source into CSS.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile reads source and writes the compiled CSS to dest.
	// It returns an error on any syntax or I/O failure; dest is left untouched in that case.
	Compile(ctx context.Context, source, dest string, opts CompileOptions) error
}
