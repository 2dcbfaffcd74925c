// Package bundler turns a hook entry point into one self-contained artifact.
//
// The ESBuild implementation runs esbuild in-process: the entry point's
// dependency graph is resolved and inlined, binary payloads such as WASM
// modules are embedded through inline loaders, and the result is minified.
// The artifact bytes are returned to the caller rather than written, so the
// engine decides how and where they land.
package bundler

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
)

var (
	// ErrInvalidOption indicates a bundler option could not be parsed.
	ErrInvalidOption = errors.New("invalid bundler option")

	// ErrBuildFailed indicates esbuild reported errors for an entry point.
	ErrBuildFailed = errors.New("bundle failed")
)

// Bundler bundles a single entry point.
type Bundler interface {
	// Bundle resolves entry and everything it imports into one artifact
	// destined for outfile. Nothing is written to disk.
	Bundle(ctx context.Context, entry, outfile string) (*Result, error)
}

// Result is a bundled artifact.
type Result struct {
	// Contents is the artifact bytes
	Contents []byte

	// ExternalImports lists imports the bundler left unresolved, sorted
	ExternalImports []string

	// Warnings holds formatted bundler warnings
	Warnings []string
}

// BuildError carries esbuild's formatted diagnostics for one entry point.
type BuildError struct {
	Entry    string
	Messages []string
}

func (e *BuildError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d error(s)", filepath.Base(e.Entry), len(e.Messages))
	for _, msg := range e.Messages {
		b.WriteString("\n")
		b.WriteString(strings.TrimRight(msg, "\n"))
	}
	return b.String()
}

func (e *BuildError) Unwrap() error {
	return ErrBuildFailed
}

// ESBuild implements Bundler with github.com/evanw/esbuild.
type ESBuild struct {
	opts Options
}

// NewESBuild creates an ESBuild bundler that applies opts to every entry.
func NewESBuild(opts Options) *ESBuild {
	return &ESBuild{opts: opts}
}

// Options returns the options applied to every entry.
func (b *ESBuild) Options() Options {
	return b.opts
}

// Bundle runs esbuild for entry. esbuild cannot be interrupted, so ctx is
// only checked before the build starts.
func (b *ESBuild) Bundle(ctx context.Context, entry, outfile string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entry, err := filepath.Abs(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve entry point: %w", err)
	}
	outfile, err = filepath.Abs(outfile)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve outfile: %w", err)
	}

	result := api.Build(b.opts.buildOptions(entry, outfile, filepath.Dir(entry)))

	if len(result.Errors) > 0 {
		return nil, &BuildError{
			Entry: entry,
			Messages: api.FormatMessages(result.Errors, api.FormatMessagesOptions{
				Kind: api.ErrorMessage,
			}),
		}
	}

	contents, err := pickOutput(result.OutputFiles, outfile)
	if err != nil {
		return nil, err
	}

	externals, err := ExternalImports(result.Metafile)
	if err != nil {
		return nil, err
	}

	return &Result{
		Contents:        contents,
		ExternalImports: externals,
		Warnings: api.FormatMessages(result.Warnings, api.FormatMessagesOptions{
			Kind: api.WarningMessage,
		}),
	}, nil
}

// pickOutput returns the contents of the output file written to outfile.
// Inline loaders guarantee a single output; anything else is a sidecar.
func pickOutput(files []api.OutputFile, outfile string) ([]byte, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("esbuild returned no output files")
	}

	var contents []byte
	found := false
	var sidecars []string
	for _, f := range files {
		if f.Path == outfile {
			contents = f.Contents
			found = true
			continue
		}
		sidecars = append(sidecars, filepath.Base(f.Path))
	}

	if !found {
		return nil, fmt.Errorf("esbuild did not produce %s", outfile)
	}
	if len(sidecars) > 0 {
		return nil, fmt.Errorf("esbuild produced sidecar files: %s", strings.Join(sidecars, ", "))
	}
	return contents, nil
}
