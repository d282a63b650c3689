package archive

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DiskStore stores archives on the local filesystem. Each archive is a
// .zip file with a .meta sidecar describing it, so archives survive
// process restarts.
type DiskStore struct {
	dir string

	mu    sync.RWMutex
	metas map[string]*diskMeta
}

type diskMeta struct {
	Project   string    `json:"project"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDiskStore creates a disk-backed archive store rooted at dir.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}
	return &DiskStore{
		dir:   dir,
		metas: make(map[string]*diskMeta),
	}, nil
}

// Save stores zipped bytes and returns the new archive ID.
func (s *DiskStore) Save(project string, r io.Reader) (string, error) {
	id, err := newArchiveID()
	if err != nil {
		return "", err
	}

	path := s.archivePath(id)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating archive file: %w", err)
	}
	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("writing archive: %w", err)
	}

	meta := &diskMeta{
		Project:   project,
		Size:      size,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.saveMeta(id, meta); err != nil {
		os.Remove(path)
		return "", err
	}

	s.mu.Lock()
	s.metas[id] = meta
	s.mu.Unlock()

	return id, nil
}

// Open retrieves an archive by ID.
func (s *DiskStore) Open(id string) (*Archive, error) {
	s.mu.RLock()
	meta, ok := s.metas[id]
	s.mu.RUnlock()

	if !ok {
		// Fall back to the sidecar for archives written by an earlier
		// process.
		loaded, err := s.loadMeta(id)
		if err != nil {
			return nil, ErrNotFound
		}
		meta = loaded
		s.mu.Lock()
		s.metas[id] = meta
		s.mu.Unlock()
	}

	path := s.archivePath(id)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	return &Archive{
		ID:        id,
		Project:   meta.Project,
		Size:      meta.Size,
		Path:      path,
		Reader:    f,
		CreatedAt: meta.CreatedAt,
	}, nil
}

// Cleanup removes archives older than maxAge.
func (s *DiskStore) Cleanup(maxAge time.Duration) error {
	cutoff := time.Now().UTC().Add(-maxAge)

	s.mu.Lock()
	for id, meta := range s.metas {
		if meta.CreatedAt.Before(cutoff) {
			os.Remove(s.archivePath(id))
			os.Remove(s.metaPath(id))
			delete(s.metas, id)
		}
	}
	s.mu.Unlock()

	// Sweep orphans from earlier processes that never made it into the
	// in-memory map.
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("reading archive directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".zip") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".zip")

		s.mu.RLock()
		_, tracked := s.metas[id]
		s.mu.RUnlock()
		if tracked {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			os.Remove(s.archivePath(id))
			os.Remove(s.metaPath(id))
		}
	}

	return nil
}

func (s *DiskStore) archivePath(id string) string {
	return filepath.Join(s.dir, id+".zip")
}

func (s *DiskStore) metaPath(id string) string {
	return filepath.Join(s.dir, id+".meta")
}

func (s *DiskStore) saveMeta(id string, meta *diskMeta) error {
	data, err := json.Marshal(meta)
	if err != nil {
		return fmt.Errorf("encoding archive metadata: %w", err)
	}
	if err := os.WriteFile(s.metaPath(id), data, 0o644); err != nil {
		return fmt.Errorf("writing archive metadata: %w", err)
	}
	return nil
}

func (s *DiskStore) loadMeta(id string) (*diskMeta, error) {
	data, err := os.ReadFile(s.metaPath(id))
	if err != nil {
		return nil, err
	}
	var meta diskMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func newArchiveID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating archive ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}
