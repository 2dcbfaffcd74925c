package bundler

import (
	"errors"
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/hookbuild/internal/config"
)

func TestNewOptions_Defaults(t *testing.T) {
	opts, err := NewOptions(config.DefaultManifest().Bundler)
	require.NoError(t, err)

	assert.Equal(t, api.PlatformNode, opts.Platform)
	assert.Equal(t, []api.Engine{{Name: api.EngineNode, Version: "18"}}, opts.Engines)
	assert.Equal(t, api.FormatCommonJS, opts.Format)
	assert.Equal(t, map[string]api.Loader{".wasm": api.LoaderBinary}, opts.Loaders)
	assert.Empty(t, opts.External)
	assert.True(t, opts.Minify)
	assert.True(t, opts.KeepNames)
	assert.Equal(t, map[string]string{"process.env.NODE_ENV": `"production"`}, opts.Define)
}

func TestNewOptions_Targets(t *testing.T) {
	tests := []struct {
		target      string
		wantEngines []api.Engine
		wantTarget  api.Target
	}{
		{target: "node18", wantEngines: []api.Engine{{Name: api.EngineNode, Version: "18"}}, wantTarget: api.ESNext},
		{target: "node20.11", wantEngines: []api.Engine{{Name: api.EngineNode, Version: "20.11"}}, wantTarget: api.ESNext},
		{target: "ES2020", wantTarget: api.ES2020},
		{target: "esnext", wantTarget: api.ESNext},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			cfg := config.DefaultManifest().Bundler
			cfg.Target = tt.target

			opts, err := NewOptions(cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEngines, opts.Engines)
			assert.Equal(t, tt.wantTarget, opts.Target)
		})
	}
}

func TestNewOptions_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.BundlerConfig)
	}{
		{name: "unknown platform", mutate: func(c *config.BundlerConfig) { c.Platform = "deno" }},
		{name: "unknown format", mutate: func(c *config.BundlerConfig) { c.Format = "umd" }},
		{name: "unknown target", mutate: func(c *config.BundlerConfig) { c.Target = "node" }},
		{name: "file loader emits sidecars", mutate: func(c *config.BundlerConfig) { c.Loaders = map[string]string{".wasm": "file"} }},
		{name: "extension without dot", mutate: func(c *config.BundlerConfig) { c.Loaders = map[string]string{"wasm": "binary"} }},
		{name: "empty define key", mutate: func(c *config.BundlerConfig) { c.Define = map[string]string{"": "1"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultManifest().Bundler
			tt.mutate(&cfg)

			_, err := NewOptions(cfg)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidOption))
		})
	}
}

func TestOptions_Describe(t *testing.T) {
	opts, err := NewOptions(config.DefaultManifest().Bundler)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"platform: node",
		"format: cjs",
		"minify: true",
		"keep names: true",
		"engine: node 18",
		"loader .wasm: binary",
		`define process.env.NODE_ENV="production"`,
	}, opts.Describe())
}
