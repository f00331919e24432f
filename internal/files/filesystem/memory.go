package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory files
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
	isDir   bool
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.isDir }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

// memoryFile implements File interface for in-memory files.
// relPath is relative to the filesystem root; Walk rebases it onto the walked directory.
type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    fs.FileInfo
	readErr error
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	if f.readErr != nil {
		return nil, &fs.PathError{Op: "open", Path: f.absPath, Err: f.readErr}
	}
	return f.content, nil
}

// memoryDirectory implements Directory interface for in-memory filesystem
type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

// Walk visits entries sorted by absolute path, which keeps the order
// deterministic across runs.
func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.getEntriesUnder(d.absPath)

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].absPath < entries[j].absPath
	})

	var skipped []string
	for _, entry := range entries {
		if underAny(entry.absPath, skipped) {
			continue
		}

		rel := relativeTo(d.absPath, entry.absPath)
		visit := &memoryFile{
			absPath: entry.absPath,
			relPath: rel,
			content: entry.content,
			info:    entry.info,
			readErr: entry.readErr,
		}

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.absPath, r)
				}
			}()

			if entry.info.IsDir() && entry.readErr != nil {
				// Entries below an unreadable directory are never listed.
				skipped = append(skipped, entry.absPath)
				callbackErr = fn(nil, &WalkError{
					Path:         entry.absPath,
					RelativePath: rel,
					Err:          &fs.PathError{Op: "open", Path: entry.absPath, Err: entry.readErr},
				})
				return
			}

			callbackErr = fn(visit, nil)
		}()

		if callbackErr != nil {
			return callbackErr
		}
	}

	return nil
}

func underAny(p string, dirs []string) bool {
	for _, dir := range dirs {
		if strings.HasPrefix(p, dir+"/") {
			return true
		}
	}
	return false
}

func relativeTo(base, target string) string {
	if base == target {
		return "."
	}
	if base == "/" {
		return strings.TrimPrefix(target, "/")
	}
	return strings.TrimPrefix(target, base+"/")
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Paths use forward slashes regardless of platform.
type MemoryFileSystem struct {
	files     map[string]*memoryFile // map of absolute path -> file
	root      string                 // root directory path
	writeErrs map[string]error       // absolute path -> error returned by WriteFile
}

// NewMemoryFileSystem creates a new in-memory filesystem.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))

	mfs := &MemoryFileSystem{
		files:     make(map[string]*memoryFile),
		root:      root,
		writeErrs: make(map[string]error),
	}

	mfs.files[root] = &memoryFile{
		absPath: root,
		relPath: ".",
		info:    dirInfo(path.Base(root)),
	}

	return mfs
}

func dirInfo(name string) *memoryFileInfo {
	return &memoryFileInfo{
		name:    name,
		mode:    0755 | fs.ModeDir,
		modTime: time.Now(),
		isDir:   true,
	}
}

// resolve maps a caller path onto an absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Clean(path.Join(mfs.root, p))
}

// AddFile adds a text file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileBytes(filePath, []byte(content))
}

// AddFileBytes adds a file with raw content, which need not be valid UTF-8
func (mfs *MemoryFileSystem) AddFileBytes(filePath string, content []byte) {
	absPath := mfs.resolve(filePath)
	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: relativeTo(mfs.root, absPath),
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
	mfs.ensureDirectoriesExist(absPath)
}

// AddUnreadableFile adds a file whose ReadContent fails with err
func (mfs *MemoryFileSystem) AddUnreadableFile(filePath string, err error) {
	mfs.AddFile(filePath, "")
	mfs.files[mfs.resolve(filePath)].readErr = err
}

// AddUnreadableDir adds a directory whose listing fails with err.
// Files added below it are present but never reached by Walk.
func (mfs *MemoryFileSystem) AddUnreadableDir(dirPath string, err error) {
	absPath := mfs.resolve(dirPath)
	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: relativeTo(mfs.root, absPath),
		info:    dirInfo(path.Base(absPath)),
		readErr: err,
	}
	mfs.ensureDirectoriesExist(absPath)
}

// FailWrites makes WriteFile on filePath return err
func (mfs *MemoryFileSystem) FailWrites(filePath string, err error) {
	mfs.writeErrs[mfs.resolve(filePath)] = err
}

// ensureDirectoriesExist creates directory entries for all parent directories
func (mfs *MemoryFileSystem) ensureDirectoriesExist(filePath string) {
	dir := path.Dir(filePath)
	if dir == "." || dir == "/" || dir == mfs.root {
		return
	}

	if _, exists := mfs.files[dir]; exists {
		return
	}

	mfs.files[dir] = &memoryFile{
		absPath: dir,
		relPath: relativeTo(mfs.root, dir),
		info:    dirInfo(path.Base(dir)),
	}

	mfs.ensureDirectoriesExist(dir)
}

// getEntriesUnder returns all files and directories under the given path
func (mfs *MemoryFileSystem) getEntriesUnder(basePath string) []*memoryFile {
	var entries []*memoryFile
	for p, file := range mfs.files {
		var matched bool
		if basePath == "/" {
			matched = strings.HasPrefix(p, "/")
		} else {
			matched = p == basePath || strings.HasPrefix(p, basePath+"/")
		}
		if matched {
			entries = append(entries, file)
		}
	}
	return entries
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)

	file, exists := mfs.files[absPath]
	if !exists {
		return nil, fmt.Errorf("failed to access path: %w", &fs.PathError{Op: "stat", Path: openPath, Err: fs.ErrNotExist})
	}
	if !file.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}

	return &memoryDirectory{
		absPath: absPath,
		fs:      mfs,
	}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	file, exists := mfs.files[mfs.resolve(filePath)]
	if !exists {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if file.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return file.ReadContent()
}

// WriteFile implements FileSystemProvider.WriteFile.
// The parent directory must already exist.
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte, perm fs.FileMode) error {
	absPath := mfs.resolve(filePath)
	if err, ok := mfs.writeErrs[absPath]; ok {
		return &fs.PathError{Op: "open", Path: filePath, Err: err}
	}

	parent, exists := mfs.files[path.Dir(absPath)]
	if !exists || !parent.info.IsDir() {
		return &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if existing, ok := mfs.files[absPath]; ok && existing.info.IsDir() {
		return &fs.PathError{Op: "open", Path: filePath, Err: fmt.Errorf("is a directory")}
	}

	content := make([]byte, len(data))
	copy(content, data)
	mfs.files[absPath] = &memoryFile{
		absPath: absPath,
		relPath: relativeTo(mfs.root, absPath),
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    perm,
			modTime: time.Now(),
		},
	}
	return nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	file, exists := mfs.files[mfs.resolve(statPath)]
	if !exists {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return file.info, nil
}

// Abs implements FileSystemProvider.Abs
func (mfs *MemoryFileSystem) Abs(p string) (string, error) {
	return mfs.resolve(p), nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
