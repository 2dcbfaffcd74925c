package bundler

import (
	"context"
)

// FakeBundler implements Bundler with canned results for testing.
type FakeBundler struct {
	results map[string]*Result
	errs    map[string]error

	// Calls records every entry passed to Bundle, in order
	Calls []string
}

// NewFakeBundler creates a new FakeBundler.
func NewFakeBundler() *FakeBundler {
	return &FakeBundler{
		results: make(map[string]*Result),
		errs:    make(map[string]error),
	}
}

// SetResult sets the result returned for entry.
func (b *FakeBundler) SetResult(entry string, result *Result) {
	b.results[entry] = result
}

// SetError makes Bundle fail for entry.
func (b *FakeBundler) SetError(entry string, err error) {
	b.errs[entry] = err
}

// Bundle returns the configured result for entry, or the entry path itself
// as contents when none is set.
func (b *FakeBundler) Bundle(ctx context.Context, entry, outfile string) (*Result, error) {
	b.Calls = append(b.Calls, entry)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := b.errs[entry]; ok {
		return nil, err
	}
	if result, ok := b.results[entry]; ok {
		return result, nil
	}
	return &Result{Contents: []byte("bundled:" + entry), ExternalImports: []string{}}, nil
}
