package system

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// MockFS implements FileSystem for testing.
type MockFS struct {
	mu    sync.RWMutex
	files map[string]*mockFile
	dirs  map[string]bool

	// Error injection
	ReadFileErr  error
	WriteFileErr error
	RemoveErr    error
	StatErr      error
	MkdirAllErr  error
	ReadDirErr   error
}

type mockFile struct {
	data []byte
	mode fs.FileMode
}

// NewMockFS creates a new MockFS with an empty filesystem.
func NewMockFS() *MockFS {
	return &MockFS{
		files: make(map[string]*mockFile),
		dirs:  make(map[string]bool),
	}
}

// AddFile adds a file to the mock filesystem.
func (m *MockFS) AddFile(path string, data []byte, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[path] = &mockFile{data: data, mode: mode}
	dir := filepath.Dir(path)
	for dir != "." && dir != "/" {
		m.dirs[dir] = true
		dir = filepath.Dir(dir)
	}
}

// AddDir adds a directory to the mock filesystem.
func (m *MockFS) AddDir(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.dirs[path] = true
}

func (m *MockFS) ReadFile(path string) ([]byte, error) {
	if m.ReadFileErr != nil {
		return nil, m.ReadFileErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	f, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	out := make([]byte, len(f.data))
	copy(out, f.data)
	return out, nil
}

func (m *MockFS) WriteFile(path string, data []byte, perm fs.FileMode) error {
	if m.WriteFileErr != nil {
		return m.WriteFileErr
	}
	m.AddFile(path, data, perm)
	return nil
}

func (m *MockFS) Remove(path string) error {
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[path]; !ok && !m.dirs[path] {
		return fs.ErrNotExist
	}
	delete(m.files, path)
	delete(m.dirs, path)
	return nil
}

func (m *MockFS) Stat(path string) (fs.FileInfo, error) {
	if m.StatErr != nil {
		return nil, m.StatErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if f, ok := m.files[path]; ok {
		return &mockFileInfo{name: filepath.Base(path), size: int64(len(f.data)), mode: f.mode}, nil
	}
	if m.dirs[path] {
		return &mockFileInfo{name: filepath.Base(path), mode: fs.ModeDir | 0o755, dir: true}, nil
	}
	return nil, fs.ErrNotExist
}

func (m *MockFS) MkdirAll(path string, perm fs.FileMode) error {
	if m.MkdirAllErr != nil {
		return m.MkdirAllErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for path != "." && path != "/" {
		m.dirs[path] = true
		path = filepath.Dir(path)
	}
	return nil
}

func (m *MockFS) Exists(path string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if _, ok := m.files[path]; ok {
		return true
	}
	return m.dirs[path]
}

func (m *MockFS) ReadDir(path string) ([]fs.DirEntry, error) {
	if m.ReadDirErr != nil {
		return nil, m.ReadDirErr
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]bool)
	var entries []fs.DirEntry
	prefix := strings.TrimSuffix(path, "/") + "/"

	for p, f := range m.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		name := rest
		isDir := false
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			name = rest[:i]
			isDir = true
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		info := &mockFileInfo{name: name, dir: isDir}
		if !isDir {
			info.size = int64(len(f.data))
			info.mode = f.mode
		} else {
			info.mode = fs.ModeDir | 0o755
		}
		entries = append(entries, &mockDirEntry{info: info})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

type mockFileInfo struct {
	name string
	size int64
	mode fs.FileMode
	dir  bool
}

func (i *mockFileInfo) Name() string       { return i.name }
func (i *mockFileInfo) Size() int64        { return i.size }
func (i *mockFileInfo) Mode() fs.FileMode  { return i.mode }
func (i *mockFileInfo) ModTime() time.Time { return time.Time{} }
func (i *mockFileInfo) IsDir() bool        { return i.dir }
func (i *mockFileInfo) Sys() any           { return nil }

type mockDirEntry struct {
	info *mockFileInfo
}

func (e *mockDirEntry) Name() string               { return e.info.name }
func (e *mockDirEntry) IsDir() bool                { return e.info.dir }
func (e *mockDirEntry) Type() fs.FileMode          { return e.info.mode.Type() }
func (e *mockDirEntry) Info() (fs.FileInfo, error) { return e.info, nil }

// MockExecutor implements CommandExecutor for testing.
type MockExecutor struct {
	mu sync.Mutex

	// Calls records every command invocation in order.
	Calls []MockCall

	// StartErr and LookPathErr inject failures.
	StartErr    error
	LookPathErr error

	// StartPID is returned from Start. Defaults to 4242 when zero.
	StartPID int
}

// MockCall is one recorded command invocation.
type MockCall struct {
	Name string
	Args []string
}

// NewMockExecutor creates an empty MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{}
}

func (m *MockExecutor) record(name string, args []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls = append(m.Calls, MockCall{Name: name, Args: args})
}

func (m *MockExecutor) Start(name string, args ...string) (int, error) {
	m.record(name, args)
	if m.StartErr != nil {
		return 0, m.StartErr
	}
	if m.StartPID != 0 {
		return m.StartPID, nil
	}
	return 4242, nil
}

func (m *MockExecutor) LookPath(name string) (string, error) {
	if m.LookPathErr != nil {
		return "", m.LookPathErr
	}
	if strings.ContainsRune(name, '/') {
		return name, nil
	}
	return "/usr/bin/" + name, nil
}

// LastCall returns the most recent invocation, or an error if none happened.
func (m *MockExecutor) LastCall() (MockCall, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return MockCall{}, errors.New("no commands executed")
	}
	return m.Calls[len(m.Calls)-1], nil
}
