package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifest(t *testing.T) {
	m := DefaultManifest()

	assert.Equal(t, []string{"gsd-intel-index.js"}, m.Bundle)
	assert.Equal(t, []string{
		"gsd-intel-session.js",
		"gsd-intel-prune.js",
		"gsd-check-update.js",
		"gsd-statusline.js",
	}, m.Copy)
	assert.Equal(t, "node", m.Bundler.Platform)
	assert.Equal(t, "node18", m.Bundler.Target)
	assert.Equal(t, "cjs", m.Bundler.Format)
	assert.Equal(t, "binary", m.Bundler.Loaders[".wasm"])
	assert.Empty(t, m.Bundler.External)
	assert.True(t, m.Bundler.Minify)
	assert.True(t, m.Bundler.KeepNames)
	assert.Equal(t, `"production"`, m.Bundler.Define["process.env.NODE_ENV"])
}

func TestDefaultManifest_ReturnsIndependentCopies(t *testing.T) {
	a := DefaultManifest()
	a.Bundle[0] = "changed.js"
	a.Bundler.Define["x"] = "1"

	b := DefaultManifest()
	assert.Equal(t, "gsd-intel-index.js", b.Bundle[0])
	assert.NotContains(t, b.Bundler.Define, "x")
}

func TestLoadManifest_MissingFileYieldsDefaults(t *testing.T) {
	m, err := LoadManifest(filepath.Join(t.TempDir(), ManifestFile))
	require.NoError(t, err)
	assert.Equal(t, DefaultManifest(), m)
}

func TestLoadManifest_OverridesFields(t *testing.T) {
	src := `
hooks_dir = "src/hooks"
bundle    = ["a.js"]
copy      = ["b.js", "c.js"]

bundler {
  target     = "node20"
  keep_names = false
  define = {
    "process.env.NODE_ENV" = "\"development\""
  }
}
`
	path := filepath.Join(t.TempDir(), ManifestFile)
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))

	m, err := LoadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, "src/hooks", m.HooksDir)
	assert.Equal(t, DefaultDistDir, m.DistDir, "omitted attributes keep defaults")
	assert.Equal(t, []string{"a.js"}, m.Bundle)
	assert.Equal(t, []string{"b.js", "c.js"}, m.Copy)
	assert.Equal(t, "node20", m.Bundler.Target)
	assert.Equal(t, "cjs", m.Bundler.Format)
	assert.False(t, m.Bundler.KeepNames)
	assert.True(t, m.Bundler.Minify)
	assert.Equal(t, map[string]string{"process.env.NODE_ENV": `"development"`}, m.Bundler.Define)
	assert.Equal(t, "binary", m.Bundler.Loaders[".wasm"])
}

func TestParseManifest_DefineLiterals(t *testing.T) {
	src := `
bundler {
  define = {
    "process.env.NODE_ENV" = "\"production\""
    DEBUG                  = false
    MAX_FILES              = 500
    RATIO                  = 0.5
  }
}
`
	m, err := ParseManifest("inline.hcl", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"process.env.NODE_ENV": `"production"`,
		"DEBUG":                "false",
		"MAX_FILES":            "500",
		"RATIO":                "0.5",
	}, m.Bundler.Define)
}

func TestParseManifest_BundlerBlockWithoutDefine(t *testing.T) {
	m, err := ParseManifest("inline.hcl", []byte("bundler {\n  minify = false\n}\n"))
	require.NoError(t, err)

	assert.False(t, m.Bundler.Minify)
	assert.Equal(t, DefaultManifest().Bundler.Define, m.Bundler.Define)
}

func TestParseManifest_EmptyListsAreKept(t *testing.T) {
	m, err := ParseManifest("inline.hcl", []byte(`copy = []`))
	require.NoError(t, err)

	assert.Empty(t, m.Copy)
	assert.Equal(t, DefaultBundle, m.Bundle)
}

func TestParseManifest_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "syntax error", src: `bundle = [`},
		{name: "unknown attribute", src: `outdir = "x"`},
		{name: "wrong type", src: `bundle = "a.js"`},
		{name: "duplicate bundler block", src: "bundler {}\nbundler {}\n"},
		{name: "define is not a map", src: "bundler {\n  define = [\"x\"]\n}\n"},
		{name: "define value is a list", src: "bundler {\n  define = { DEBUG = [1] }\n}\n"},
		{name: "define value is null", src: "bundler {\n  define = { DEBUG = null }\n}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest("bad.hcl", []byte(tt.src))
			assert.Error(t, err)
		})
	}
}
