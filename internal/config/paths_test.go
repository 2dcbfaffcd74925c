package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danieljhkim/hookbuild/internal/gitx"
)

// notRepo returns a GitRepo that never finds a repository.
func notRepo() gitx.GitRepo {
	repo := gitx.NewFakeGitRepo("")
	repo.SetError(gitx.ErrNotRepo)
	return repo
}

func TestDefaultPaths(t *testing.T) {
	t.Run("uses the current directory outside a repository", func(t *testing.T) {
		t.Setenv(RootEnv, "")

		tmpDir := t.TempDir()
		oldWd, err := os.Getwd()
		require.NoError(t, err)
		defer os.Chdir(oldWd)
		require.NoError(t, os.Chdir(tmpDir))

		paths, err := resolvePaths("", notRepo())
		require.NoError(t, err)

		// Use filepath.EvalSymlinks to handle /private prefix on macOS
		expectedRoot, _ := filepath.EvalSymlinks(tmpDir)
		actualRoot, _ := filepath.EvalSymlinks(paths.Root)
		assert.Equal(t, expectedRoot, actualRoot)

		assert.Equal(t, filepath.Join(paths.Root, "hooks"), paths.Hooks)
		assert.Equal(t, filepath.Join(paths.Root, "hooks", "dist"), paths.Dist)
		assert.Equal(t, filepath.Join(paths.Root, "hookbuild.hcl"), paths.Manifest)
	})

	t.Run("uses the enclosing repository root", func(t *testing.T) {
		t.Setenv(RootEnv, "")

		paths, err := resolvePaths("", gitx.NewFakeGitRepo("/repo"))
		require.NoError(t, err)
		assert.Equal(t, "/repo", paths.Root)
		assert.Equal(t, "/repo/hooks", paths.Hooks)
	})

	t.Run("HOOKBUILD_ROOT wins over the repository root", func(t *testing.T) {
		t.Setenv(RootEnv, "/from/env")

		paths, err := resolvePaths("", gitx.NewFakeGitRepo("/repo"))
		require.NoError(t, err)
		assert.Equal(t, "/from/env", paths.Root)
	})

	t.Run("respects HOOKBUILD_ROOT environment variable", func(t *testing.T) {
		customRoot := "/custom/project"
		t.Setenv(RootEnv, customRoot)

		paths, err := DefaultPaths("")
		require.NoError(t, err)
		assert.Equal(t, customRoot, paths.Root)
		assert.Equal(t, filepath.Join(customRoot, "hooks", "dist"), paths.Dist, "dist should be under the custom root")
	})

	t.Run("explicit root takes precedence over HOOKBUILD_ROOT", func(t *testing.T) {
		t.Setenv(RootEnv, "/from/env")

		paths, err := DefaultPaths("/from/flag")
		require.NoError(t, err)
		assert.Equal(t, "/from/flag", paths.Root)
	})
}

func TestPaths_WithManifest(t *testing.T) {
	base := NewPaths("/project", DefaultHooksDir, DefaultDistDir)

	tests := []struct {
		name      string
		hooksDir  string
		distDir   string
		wantHooks string
		wantDist  string
	}{
		{
			name:      "defaults",
			hooksDir:  DefaultHooksDir,
			distDir:   DefaultDistDir,
			wantHooks: "/project/hooks",
			wantDist:  "/project/hooks/dist",
		},
		{
			name:      "relative overrides",
			hooksDir:  "src/hooks",
			distDir:   "build",
			wantHooks: "/project/src/hooks",
			wantDist:  "/project/build",
		},
		{
			name:      "absolute dist",
			hooksDir:  "hooks",
			distDir:   "/tmp/out",
			wantHooks: "/project/hooks",
			wantDist:  "/tmp/out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := DefaultManifest()
			m.HooksDir = tt.hooksDir
			m.DistDir = tt.distDir

			got := base.WithManifest(m)
			assert.Equal(t, tt.wantHooks, got.Hooks)
			assert.Equal(t, tt.wantDist, got.Dist)
			assert.Equal(t, base.Manifest, got.Manifest)
		})
	}
}

func TestPaths_SourceAndOutput(t *testing.T) {
	paths := NewPaths("/project", DefaultHooksDir, DefaultDistDir)

	assert.Equal(t, "/project/hooks/a.js", paths.Source("a.js"))
	assert.Equal(t, "/project/hooks/dist/a.js", paths.Output("a.js"))
}
