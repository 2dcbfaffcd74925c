package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danieljhkim/hookbuild/internal/bundler"
	"github.com/danieljhkim/hookbuild/internal/clock"
	"github.com/danieljhkim/hookbuild/internal/config"
	"github.com/danieljhkim/hookbuild/internal/engine"
	"github.com/danieljhkim/hookbuild/internal/fsops"
	"github.com/danieljhkim/hookbuild/internal/hash"
)

// project is the resolved configuration for one invocation.
type project struct {
	paths    *config.Paths
	manifest *config.Manifest
	options  bundler.Options
}

// loadProject resolves paths from the global flags and loads the manifest.
func loadProject() (*project, error) {
	paths, err := config.DefaultPaths(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to get config paths: %w", err)
	}
	if manifestPath != "" {
		paths.Manifest = manifestPath
	}

	manifest, err := config.LoadManifest(paths.Manifest)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrValidation, err)
	}

	opts, err := bundler.NewOptions(manifest.Bundler)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrValidation, err)
	}

	return &project{
		paths:    paths.WithManifest(manifest),
		manifest: manifest,
		options:  opts,
	}, nil
}

// request builds the engine request for the project.
func (p *project) request(dryRun bool) *engine.BuildRequest {
	return &engine.BuildRequest{
		Paths:  p.paths,
		Bundle: p.manifest.Bundle,
		Copy:   p.manifest.Copy,
		DryRun: dryRun,
	}
}

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(p *project, reporter engine.Reporter) *engine.Engine {
	return engine.New(
		fsops.NewRealFS(),
		bundler.NewESBuild(p.options),
		hash.NewSHA256Hasher(),
		clock.RealClock{},
		reporter,
	)
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
