package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Defaults used when no manifest is present or a manifest omits a field.
const (
	DefaultHooksDir = "hooks"
	DefaultDistDir  = "hooks/dist"

	DefaultPlatform = "node"
	DefaultTarget   = "node18"
	DefaultFormat   = "cjs"
)

// DefaultBundle lists the hooks that carry npm dependencies.
var DefaultBundle = []string{
	"gsd-intel-index.js",
}

// DefaultCopy lists the hooks that are plain Node.js and only need copying.
var DefaultCopy = []string{
	"gsd-intel-session.js",
	"gsd-intel-prune.js",
	"gsd-check-update.js",
	"gsd-statusline.js",
}

// Manifest describes what to build.
type Manifest struct {
	// HooksDir is the hook source directory, relative to the root
	HooksDir string `json:"hooks_dir"`

	// DistDir is the artifact directory, relative to the root
	DistDir string `json:"dist_dir"`

	// Bundle is the ordered list of hooks to bundle
	Bundle []string `json:"bundle"`

	// Copy is the ordered list of hooks to copy verbatim
	Copy []string `json:"copy"`

	// Bundler holds the options shared by every bundled hook
	Bundler BundlerConfig `json:"bundler"`
}

// BundlerConfig is the bundler configuration as written in the manifest.
// String values are parsed into bundler options by the bundler package.
type BundlerConfig struct {
	Platform  string            `json:"platform"`
	Target    string            `json:"target"`
	Format    string            `json:"format"`
	Loaders   map[string]string `json:"loaders"`
	External  []string          `json:"external"`
	Minify    bool              `json:"minify"`
	KeepNames bool              `json:"keep_names"`
	Define    map[string]string `json:"define"`
}

// DefaultManifest returns the built-in manifest.
func DefaultManifest() *Manifest {
	return &Manifest{
		HooksDir: DefaultHooksDir,
		DistDir:  DefaultDistDir,
		Bundle:   append([]string(nil), DefaultBundle...),
		Copy:     append([]string(nil), DefaultCopy...),
		Bundler: BundlerConfig{
			Platform: DefaultPlatform,
			Target:   DefaultTarget,
			Format:   DefaultFormat,
			// sql.js ships a WASM binary that must be inlined
			Loaders: map[string]string{
				".wasm": "binary",
			},
			External:  []string{},
			Minify:    true,
			KeepNames: true,
			Define: map[string]string{
				"process.env.NODE_ENV": `"production"`,
			},
		},
	}
}

// manifestFile mirrors the HCL layout. Pointer fields distinguish an
// omitted attribute from an explicit zero value.
type manifestFile struct {
	HooksDir *string       `hcl:"hooks_dir,optional"`
	DistDir  *string       `hcl:"dist_dir,optional"`
	Bundle   *[]string     `hcl:"bundle,optional"`
	Copy     *[]string     `hcl:"copy,optional"`
	Bundler  *bundlerBlock `hcl:"bundler,block"`
}

type bundlerBlock struct {
	Platform  *string            `hcl:"platform,optional"`
	Target    *string            `hcl:"target,optional"`
	Format    *string            `hcl:"format,optional"`
	Loaders   *map[string]string `hcl:"loaders,optional"`
	External  *[]string          `hcl:"external,optional"`
	Minify    *bool              `hcl:"minify,optional"`
	KeepNames *bool              `hcl:"keep_names,optional"`
	// Define is decoded as a raw value so numbers and bools can be written
	// unquoted. Strings are taken as JS expressions verbatim.
	Define cty.Value `hcl:"define,optional"`
}

// LoadManifest reads the HCL manifest at path and layers it over the
// defaults. A missing file yields the defaults unchanged.
func LoadManifest(path string) (*Manifest, error) {
	m := DefaultManifest()

	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return m, nil
		}
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	if err := m.decode(path, src); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseManifest parses manifest source held in memory. filename is only
// used in diagnostics.
func ParseManifest(filename string, src []byte) (*Manifest, error) {
	m := DefaultManifest()
	if err := m.decode(filename, src); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Manifest) decode(filename string, src []byte) error {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse manifest %s: %s", filename, diags.Error())
	}

	var raw manifestFile
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode manifest %s: %s", filename, diags.Error())
	}

	if err := m.apply(&raw); err != nil {
		return fmt.Errorf("invalid manifest %s: %w", filename, err)
	}
	return nil
}

func (m *Manifest) apply(raw *manifestFile) error {
	setString(&m.HooksDir, raw.HooksDir)
	setString(&m.DistDir, raw.DistDir)
	if raw.Bundle != nil {
		m.Bundle = *raw.Bundle
	}
	if raw.Copy != nil {
		m.Copy = *raw.Copy
	}

	b := raw.Bundler
	if b == nil {
		return nil
	}
	setString(&m.Bundler.Platform, b.Platform)
	setString(&m.Bundler.Target, b.Target)
	setString(&m.Bundler.Format, b.Format)
	if b.Loaders != nil {
		m.Bundler.Loaders = *b.Loaders
	}
	if b.External != nil {
		m.Bundler.External = *b.External
	}
	if b.Minify != nil {
		m.Bundler.Minify = *b.Minify
	}
	if b.KeepNames != nil {
		m.Bundler.KeepNames = *b.KeepNames
	}
	if !b.Define.IsNull() {
		define, err := defineValues(b.Define)
		if err != nil {
			return err
		}
		m.Bundler.Define = define
	}
	return nil
}

// defineValues converts the define attribute into replacement expressions.
func defineValues(v cty.Value) (map[string]string, error) {
	if !v.IsWhollyKnown() || !(v.Type().IsObjectType() || v.Type().IsMapType()) {
		return nil, fmt.Errorf("bundler.define must be a map, got %s", v.Type().FriendlyName())
	}

	out := make(map[string]string, v.LengthInt())
	for it := v.ElementIterator(); it.Next(); {
		k, ev := it.Element()
		key := k.AsString()
		if ev.IsNull() {
			return nil, fmt.Errorf("bundler.define %q: value is null", key)
		}

		switch ev.Type() {
		case cty.String:
			out[key] = ev.AsString()
		case cty.Bool:
			out[key] = strconv.FormatBool(ev.True())
		case cty.Number:
			out[key] = ev.AsBigFloat().Text('f', -1)
		default:
			return nil, fmt.Errorf("bundler.define %q: unsupported type %s", key, ev.Type().FriendlyName())
		}
	}
	return out, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
