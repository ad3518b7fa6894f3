package upload

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DiskStore stages uploads in a local directory. Each file gets a
// random ID and a JSON sidecar holding its metadata, so staged files
// survive a restart.
type DiskStore struct {
	dir     string
	maxSize int64
	ttl     time.Duration

	mu    sync.Mutex
	files map[string]*fileMeta
}

type fileMeta struct {
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewDiskStore creates the staging directory if needed. A maxSize of 0
// means no size limit.
func NewDiskStore(dir string, maxSize int64) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskStore{
		dir:     dir,
		maxSize: maxSize,
		files:   make(map[string]*fileMeta),
	}, nil
}

// WithTTL makes Claim refuse files staged longer ago than d, returning
// ErrExpired. Zero, the default, disables the check.
func (s *DiskStore) WithTTL(d time.Duration) *DiskStore {
	s.ttl = d
	return s
}

// Save writes the content to a staging file and its metadata to a
// sidecar. The declared size is checked first, then the actual bytes:
// a lying Content-Length cannot smuggle an oversized body through.
func (s *DiskStore) Save(filename, contentType string, size int64, r io.Reader) (string, error) {
	if s.maxSize > 0 && size > s.maxSize {
		return "", ErrTooLarge
	}

	id := randomID()
	path := filepath.Join(s.dir, id)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	src := r
	if s.maxSize > 0 {
		src = io.LimitReader(r, s.maxSize+1) // +1 to detect overflow
	}
	written, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return "", err
	}
	if s.maxSize > 0 && written > s.maxSize {
		os.Remove(path)
		return "", ErrTooLarge
	}

	meta := &fileMeta{
		Filename:    filename,
		ContentType: contentType,
		Size:        written,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	s.files[id] = meta
	s.mu.Unlock()

	if err := s.writeMeta(id, meta); err != nil {
		os.Remove(path)
		s.mu.Lock()
		delete(s.files, id)
		s.mu.Unlock()
		return "", err
	}

	return id, nil
}

// Claim opens a staged file and removes it from the index. The content
// and sidecar are deleted when the returned File is closed.
func (s *DiskStore) Claim(id string) (*File, error) {
	s.mu.Lock()
	meta, ok := s.files[id]
	if ok {
		delete(s.files, id)
	}
	s.mu.Unlock()

	// Fall back to the sidecar for files staged by an earlier process.
	if !ok {
		var err error
		meta, err = s.readMeta(id)
		if err != nil {
			return nil, ErrNotFound
		}
	}

	path := filepath.Join(s.dir, id)
	if s.ttl > 0 && time.Since(meta.CreatedAt) > s.ttl {
		os.Remove(path)
		os.Remove(s.metaPath(id))
		return nil, ErrExpired
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &File{
		ID:          id,
		Filename:    meta.Filename,
		ContentType: meta.ContentType,
		Size:        meta.Size,
		Path:        path,
		Reader:      &removeOnClose{File: f, paths: []string{path, s.metaPath(id)}},
	}, nil
}

// Cleanup deletes staged files older than maxAge, including orphans
// left by other processes, and reports how many uploads were removed.
// Sidecars are swept alongside their content and not counted.
func (s *DiskStore) Cleanup(maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)
	removed := 0

	s.mu.Lock()
	for id, meta := range s.files {
		if meta.CreatedAt.Before(cutoff) {
			delete(s.files, id)
			os.Remove(filepath.Join(s.dir, id))
			os.Remove(s.metaPath(id))
			removed++
		}
	}
	s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return removed, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(filepath.Join(s.dir, entry.Name()))
			if !strings.HasSuffix(entry.Name(), ".meta") {
				removed++
			}
		}
	}
	return removed, nil
}

func (s *DiskStore) metaPath(id string) string {
	return filepath.Join(s.dir, id+".meta")
}

func (s *DiskStore) writeMeta(id string, meta *fileMeta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return err
	}
	return os.WriteFile(s.metaPath(id), data, 0o644)
}

func (s *DiskStore) readMeta(id string) (*fileMeta, error) {
	data, err := os.ReadFile(s.metaPath(id))
	if err != nil {
		return nil, err
	}
	var meta fileMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func randomID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// removeOnClose deletes the staged content and sidecar once the
// consumer is done reading.
type removeOnClose struct {
	*os.File
	paths []string
}

func (r *removeOnClose) Close() error {
	err := r.File.Close()
	for _, p := range r.paths {
		os.Remove(p)
	}
	return err
}
