package bundler

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/danieljhkim/hookbuild/internal/config"
)

// Options is the fixed configuration applied to every bundled hook.
type Options struct {
	Platform  api.Platform
	Engines   []api.Engine
	Target    api.Target
	Format    api.Format
	Loaders   map[string]api.Loader
	External  []string
	Minify    bool
	KeepNames bool
	Define    map[string]string
}

var nodeTargetPattern = regexp.MustCompile(`^node(\d+(\.\d+){0,2})$`)

var platforms = map[string]api.Platform{
	"node":    api.PlatformNode,
	"browser": api.PlatformBrowser,
	"neutral": api.PlatformNeutral,
}

var formats = map[string]api.Format{
	"cjs":  api.FormatCommonJS,
	"esm":  api.FormatESModule,
	"iife": api.FormatIIFE,
}

var esTargets = map[string]api.Target{
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"esnext": api.ESNext,
}

// Only loaders that embed the payload in the bundle are allowed. "file" and
// "copy" would emit sidecar files next to the artifact.
var inlineLoaders = map[string]api.Loader{
	"binary":  api.LoaderBinary,
	"base64":  api.LoaderBase64,
	"dataurl": api.LoaderDataURL,
	"text":    api.LoaderText,
	"json":    api.LoaderJSON,
	"js":      api.LoaderJS,
	"empty":   api.LoaderEmpty,
}

// NewOptions converts manifest bundler settings into esbuild options.
func NewOptions(cfg config.BundlerConfig) (Options, error) {
	opts := Options{
		Target:    api.ESNext,
		Loaders:   make(map[string]api.Loader, len(cfg.Loaders)),
		External:  append([]string{}, cfg.External...),
		Minify:    cfg.Minify,
		KeepNames: cfg.KeepNames,
		Define:    make(map[string]string, len(cfg.Define)),
	}

	platform, ok := platforms[cfg.Platform]
	if !ok {
		return Options{}, fmt.Errorf("%w: unknown platform %q", ErrInvalidOption, cfg.Platform)
	}
	opts.Platform = platform

	format, ok := formats[cfg.Format]
	if !ok {
		return Options{}, fmt.Errorf("%w: unknown format %q (want cjs, esm or iife)", ErrInvalidOption, cfg.Format)
	}
	opts.Format = format

	target := strings.ToLower(cfg.Target)
	if m := nodeTargetPattern.FindStringSubmatch(target); m != nil {
		opts.Engines = []api.Engine{{Name: api.EngineNode, Version: m[1]}}
	} else if t, ok := esTargets[target]; ok {
		opts.Target = t
	} else {
		return Options{}, fmt.Errorf("%w: unknown target %q", ErrInvalidOption, cfg.Target)
	}

	for ext, name := range cfg.Loaders {
		if !strings.HasPrefix(ext, ".") {
			return Options{}, fmt.Errorf("%w: loader extension %q must start with a dot", ErrInvalidOption, ext)
		}
		loader, ok := inlineLoaders[name]
		if !ok {
			return Options{}, fmt.Errorf("%w: loader %q for %s does not inline its payload", ErrInvalidOption, name, ext)
		}
		opts.Loaders[ext] = loader
	}

	for k, v := range cfg.Define {
		if k == "" {
			return Options{}, fmt.Errorf("%w: empty define key", ErrInvalidOption)
		}
		opts.Define[k] = v
	}

	return opts, nil
}

// buildOptions returns the esbuild options for one entry point.
func (o Options) buildOptions(entry, outfile, workDir string) api.BuildOptions {
	return api.BuildOptions{
		EntryPoints:       []string{entry},
		Outfile:           outfile,
		AbsWorkingDir:     workDir,
		Bundle:            true,
		Write:             false,
		Metafile:          true,
		LogLevel:          api.LogLevelSilent,
		Platform:          o.Platform,
		Engines:           o.Engines,
		Target:            o.Target,
		Format:            o.Format,
		Loader:            o.Loaders,
		External:          o.External,
		MinifyWhitespace:  o.Minify,
		MinifyIdentifiers: o.Minify,
		MinifySyntax:      o.Minify,
		KeepNames:         o.KeepNames,
		Define:            o.Define,
	}
}

// Describe returns a stable, human-readable summary of the options.
func (o Options) Describe() []string {
	lines := []string{
		"platform: " + platformName(o.Platform),
		"format: " + formatName(o.Format),
		fmt.Sprintf("minify: %t", o.Minify),
		fmt.Sprintf("keep names: %t", o.KeepNames),
	}
	// Only node engines are ever configured
	for _, e := range o.Engines {
		lines = append(lines, "engine: node "+e.Version)
	}
	for _, ext := range sortedKeys(o.Loaders) {
		lines = append(lines, fmt.Sprintf("loader %s: %s", ext, loaderName(o.Loaders[ext])))
	}
	for _, k := range sortedKeys(o.Define) {
		lines = append(lines, fmt.Sprintf("define %s=%s", k, o.Define[k]))
	}
	return lines
}

func platformName(p api.Platform) string {
	for name, v := range platforms {
		if v == p {
			return name
		}
	}
	return "unknown"
}

func formatName(f api.Format) string {
	for name, v := range formats {
		if v == f {
			return name
		}
	}
	return "unknown"
}

func loaderName(l api.Loader) string {
	for name, v := range inlineLoaders {
		if v == l {
			return name
		}
	}
	return "unknown"
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
