package integration

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/danieljhkim/hookbuild/internal/bundler"
	"github.com/danieljhkim/hookbuild/internal/clock"
	"github.com/danieljhkim/hookbuild/internal/config"
	"github.com/danieljhkim/hookbuild/internal/engine"
	"github.com/danieljhkim/hookbuild/internal/fsops"
	"github.com/danieljhkim/hookbuild/internal/hash"
	"github.com/danieljhkim/hookbuild/internal/planner"
)

const projectRoot = "/project"

// testFS is a filesystem implementation that tracks files in memory for testing
type testFS struct {
	files    map[string][]byte
	modes    map[string]os.FileMode
	dirs     map[string]bool
	failures map[string]error
}

func newTestFS() *testFS {
	return &testFS{
		files:    make(map[string][]byte),
		modes:    make(map[string]os.FileMode),
		dirs:     make(map[string]bool),
		failures: make(map[string]error),
	}
}

// addHook places a hook source under the project's hooks directory.
func (fs *testFS) addHook(name, content string) {
	path := filepath.Join(projectRoot, "hooks", name)
	fs.files[path] = []byte(content)
	fs.modes[path] = 0644
	fs.dirs[filepath.Dir(path)] = true
}

// failWrite makes any write to path fail with err.
func (fs *testFS) failWrite(path string, err error) {
	fs.failures[path] = err
}

func (fs *testFS) Exists(path string) (bool, error) {
	_, hasFile := fs.files[path]
	return hasFile || fs.dirs[path], nil
}

func (fs *testFS) Stat(path string) (os.FileInfo, error) {
	if content, ok := fs.files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(content)), mode: fs.modes[path]}, nil
	}
	if fs.dirs[path] {
		return &mockFileInfo{name: filepath.Base(path), mode: os.ModeDir | 0755, isDir: true}, nil
	}
	return nil, os.ErrNotExist
}

func (fs *testFS) MkdirAll(path string, perm os.FileMode) error {
	if _, ok := fs.files[path]; ok {
		return fmt.Errorf("mkdir %s: not a directory", path)
	}
	for p := path; p != "/" && p != "."; p = filepath.Dir(p) {
		fs.dirs[p] = true
	}
	return nil
}

func (fs *testFS) CopyFile(src, dst string) error {
	if err, ok := fs.failures[dst]; ok {
		return err
	}
	content, ok := fs.files[src]
	if !ok {
		return os.ErrNotExist
	}
	fs.files[dst] = append([]byte(nil), content...)
	fs.modes[dst] = fs.modes[src]
	return nil
}

func (fs *testFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	if err, ok := fs.failures[path]; ok {
		return err
	}
	fs.files[path] = append([]byte(nil), data...)
	fs.modes[path] = perm
	return nil
}

func (fs *testFS) ReadFile(path string) ([]byte, error) {
	if content, ok := fs.files[path]; ok {
		return append([]byte(nil), content...), nil
	}
	return nil, os.ErrNotExist
}

func (fs *testFS) ValidateName(name string) error {
	return fsops.NewRealFS().ValidateName(name)
}

// distFiles returns the names of the files written to dir.
func (fs *testFS) distFiles(dir string) []string {
	var names []string
	for path := range fs.files {
		if filepath.Dir(path) == dir {
			names = append(names, filepath.Base(path))
		}
	}
	return names
}

// mockFileInfo implements os.FileInfo
type mockFileInfo struct {
	name  string
	size  int64
	mode  os.FileMode
	isDir bool
}

func (m *mockFileInfo) Name() string       { return m.name }
func (m *mockFileInfo) Size() int64        { return m.size }
func (m *mockFileInfo) Mode() os.FileMode  { return m.mode }
func (m *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m *mockFileInfo) IsDir() bool        { return m.isDir }
func (m *mockFileInfo) Sys() interface{}   { return nil }

// eventLog records reporter callbacks in order.
type eventLog struct {
	events []string
}

func (l *eventLog) Started(op planner.Operation) {
	l.events = append(l.events, "start "+op.Name)
}

func (l *eventLog) Skipped(op planner.Operation) {
	l.events = append(l.events, "skip "+op.Name)
}

func (l *eventLog) Finished(outcome engine.EntryOutcome) {
	l.events = append(l.events, "done "+outcome.Name)
}

func (l *eventLog) Warning(op planner.Operation, msg string) {
	l.events = append(l.events, "warn "+op.Name)
}

// setupTestEngine creates an engine backed by in-memory fakes.
func setupTestEngine(t *testing.T) (*engine.Engine, *testFS, *bundler.FakeBundler, *eventLog, *config.Paths) {
	t.Helper()

	fs := newTestFS()
	b := bundler.NewFakeBundler()
	log := &eventLog{}
	clk := clock.NewSteppingClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Millisecond)
	paths := config.NewPaths(projectRoot, config.DefaultHooksDir, config.DefaultDistDir)

	eng := engine.New(fs, b, hash.NewFakeHasher(), clk, log)
	return eng, fs, b, log, paths
}
