// Package config manages hookbuild configuration and filesystem paths.
//
// The project root defaults to the enclosing git repository, or the current
// directory outside one, and can be overridden with the HOOKBUILD_ROOT
// environment variable or the --root flag. Under the
// root, hook sources live in hooks/ and artifacts are written to hooks/dist/.
// An optional hookbuild.hcl manifest at the root can change both directories,
// the hook lists and the bundler options.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danieljhkim/hookbuild/internal/gitx"
)

const (
	// RootEnv overrides the project root.
	RootEnv = "HOOKBUILD_ROOT"

	// ManifestFile is the manifest file name looked up under the root.
	ManifestFile = "hookbuild.hcl"
)

// Paths contains all the filesystem paths used by hookbuild.
type Paths struct {
	// Root is the project root (default: repository root or current directory)
	Root string

	// Hooks is the directory holding hook sources
	Hooks string

	// Dist is the output directory for artifacts, nested under Hooks by default
	Dist string

	// Manifest is the path to the optional HCL manifest
	Manifest string
}

// DefaultPaths returns the default paths for hookbuild.
// Root resolution order:
// 1. root argument, when non-empty
// 2. HOOKBUILD_ROOT environment variable
// 3. the git repository enclosing the current directory
// 4. current working directory
func DefaultPaths(root string) (*Paths, error) {
	return resolvePaths(root, gitx.NewRealGitRepo())
}

func resolvePaths(root string, repo gitx.GitRepo) (*Paths, error) {
	if root == "" {
		root = os.Getenv(RootEnv)
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		root = cwd
		if repoRoot, err := repo.Discover(cwd); err == nil {
			root = repoRoot
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root %s: %w", root, err)
	}

	return NewPaths(abs, DefaultHooksDir, DefaultDistDir), nil
}

// NewPaths builds Paths for root. Relative hooksDir and distDir are joined
// onto root.
func NewPaths(root, hooksDir, distDir string) *Paths {
	return &Paths{
		Root:     root,
		Hooks:    underRoot(root, hooksDir),
		Dist:     underRoot(root, distDir),
		Manifest: filepath.Join(root, ManifestFile),
	}
}

// WithManifest returns a copy of p with the manifest's directories applied.
func (p *Paths) WithManifest(m *Manifest) *Paths {
	out := NewPaths(p.Root, m.HooksDir, m.DistDir)
	out.Manifest = p.Manifest
	return out
}

// Source returns the input path for a hook name.
func (p *Paths) Source(name string) string {
	return filepath.Join(p.Hooks, name)
}

// Output returns the artifact path for a hook name.
func (p *Paths) Output(name string) string {
	return filepath.Join(p.Dist, name)
}

func underRoot(root, dir string) string {
	if filepath.IsAbs(dir) {
		return filepath.Clean(dir)
	}
	return filepath.Join(root, dir)
}
