package bundler

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Metafile represents the esbuild metafile JSON structure
type Metafile struct {
	Inputs  map[string]MetafileInput  `json:"inputs"`
	Outputs map[string]MetafileOutput `json:"outputs"`
}

// MetafileInput represents an input file in the metafile
type MetafileInput struct {
	Bytes   int              `json:"bytes"`
	Imports []MetafileImport `json:"imports"`
	Format  string           `json:"format,omitempty"` // "cjs" or "esm"
}

// MetafileImport represents an import in the metafile
type MetafileImport struct {
	Path     string `json:"path"`
	Kind     string `json:"kind"`
	External bool   `json:"external,omitempty"`
	Original string `json:"original,omitempty"`
}

// MetafileOutput represents an output file in the metafile
type MetafileOutput struct {
	Bytes      int              `json:"bytes"`
	Imports    []MetafileImport `json:"imports"`
	Exports    []string         `json:"exports"`
	EntryPoint string           `json:"entryPoint,omitempty"`
}

// ExternalImports returns the sorted, de-duplicated import paths that the
// outputs in metafile leave external.
func ExternalImports(metafile string) ([]string, error) {
	if metafile == "" {
		return []string{}, nil
	}

	var meta Metafile
	if err := json.Unmarshal([]byte(metafile), &meta); err != nil {
		return nil, fmt.Errorf("failed to parse esbuild metafile: %w", err)
	}

	seen := map[string]bool{}
	externals := []string{}
	for _, out := range meta.Outputs {
		for _, imp := range out.Imports {
			if !imp.External || seen[imp.Path] {
				continue
			}
			seen[imp.Path] = true
			externals = append(externals, imp.Path)
		}
	}
	sort.Strings(externals)
	return externals, nil
}

// nodeBuiltins are the Node.js core modules. Requiring them from a bundle is
// fine: they ship with the runtime.
var nodeBuiltins = map[string]bool{
	"assert": true, "async_hooks": true, "buffer": true, "child_process": true,
	"cluster": true, "console": true, "constants": true, "crypto": true,
	"dgram": true, "diagnostics_channel": true, "dns": true, "domain": true,
	"events": true, "fs": true, "http": true, "http2": true, "https": true,
	"inspector": true, "module": true, "net": true, "os": true, "path": true,
	"perf_hooks": true, "process": true, "punycode": true, "querystring": true,
	"readline": true, "repl": true, "stream": true, "string_decoder": true,
	"timers": true, "tls": true, "trace_events": true, "tty": true, "url": true,
	"util": true, "v8": true, "vm": true, "wasi": true, "worker_threads": true,
	"zlib": true,
}

// IsRuntimeImport reports whether path names a module provided by the Node.js
// runtime, such as "fs", "node:path" or "fs/promises".
func IsRuntimeImport(path string) bool {
	if strings.HasPrefix(path, "node:") {
		return true
	}
	base, _, _ := strings.Cut(path, "/")
	return nodeBuiltins[base]
}

// UnresolvedImports filters imports down to those the runtime does not provide.
func UnresolvedImports(imports []string) []string {
	out := []string{}
	for _, imp := range imports {
		if !IsRuntimeImport(imp) {
			out = append(out, imp)
		}
	}
	return out
}
