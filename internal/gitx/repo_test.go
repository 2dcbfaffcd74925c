package gitx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// setupRepo creates a temporary directory that looks like a git checkout.
func setupRepo(t *testing.T, gitAsFile bool) string {
	t.Helper()

	root, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

	gitPath := filepath.Join(root, ".git")
	if gitAsFile {
		// Worktrees and submodules use a .git file pointing elsewhere
		err = os.WriteFile(gitPath, []byte("gitdir: /elsewhere\n"), 0644)
	} else {
		err = os.Mkdir(gitPath, 0755)
	}
	if err != nil {
		t.Fatalf("failed to create .git: %v", err)
	}
	return root
}

func TestRealGitRepo_Discover(t *testing.T) {
	repo := NewRealGitRepo()

	t.Run("finds git repo from root", func(t *testing.T) {
		root := setupRepo(t, false)

		got, err := repo.Discover(root)
		if err != nil {
			t.Fatalf("Discover failed: %v", err)
		}
		if got != root {
			t.Errorf("Discover returned wrong root: got %s, want %s", got, root)
		}
	})

	t.Run("finds git repo from subdirectory", func(t *testing.T) {
		root := setupRepo(t, false)
		subDir := filepath.Join(root, "hooks", "lib")
		if err := os.MkdirAll(subDir, 0755); err != nil {
			t.Fatalf("failed to create subdirectory: %v", err)
		}

		got, err := repo.Discover(subDir)
		if err != nil {
			t.Fatalf("Discover failed: %v", err)
		}
		if got != root {
			t.Errorf("Discover returned wrong root: got %s, want %s", got, root)
		}
	})

	t.Run("accepts a .git file", func(t *testing.T) {
		root := setupRepo(t, true)

		got, err := repo.Discover(root)
		if err != nil {
			t.Fatalf("Discover failed: %v", err)
		}
		if got != root {
			t.Errorf("Discover returned wrong root: got %s, want %s", got, root)
		}
	})

	t.Run("returns ErrNotRepo outside a repository", func(t *testing.T) {
		dir := t.TempDir()
		if _, err := os.Stat(filepath.Join(filepath.Dir(dir), ".git")); err == nil {
			t.Skip("temp directory is inside a git repository")
		}

		_, err := repo.Discover(dir)
		if !errors.Is(err, ErrNotRepo) {
			t.Errorf("expected ErrNotRepo, got %v", err)
		}
	})
}

func TestFakeGitRepo(t *testing.T) {
	fake := NewFakeGitRepo("/repo")

	root, err := fake.Discover("/repo/hooks")
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if root != "/repo" {
		t.Errorf("expected /repo, got %s", root)
	}

	fake.SetError(ErrNotRepo)
	if _, err := fake.Discover("/repo/hooks"); !errors.Is(err, ErrNotRepo) {
		t.Errorf("expected ErrNotRepo, got %v", err)
	}
}
