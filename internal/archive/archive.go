package archive

import (
	"archive/zip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// ErrNotFound is returned when an archive doesn't exist.
var ErrNotFound = errors.New("archive: not found")

// Archive describes one stored project archive.
type Archive struct {
	// ID is the unique identifier for this archive.
	ID string

	// Project is the project name the archive was built from.
	Project string

	// Size is the archive size in bytes.
	Size int64

	// Path is the local filesystem path (for DiskStore).
	Path string

	// URL is the remote URL (for S3 storage).
	URL string

	// Reader provides access to the archive contents.
	Reader io.ReadCloser

	// CreatedAt is when the archive was stored.
	CreatedAt time.Time
}

// Close closes the archive reader if open.
func (a *Archive) Close() error {
	if a.Reader != nil {
		return a.Reader.Close()
	}
	return nil
}

// Store is the interface for archive storage backends.
type Store interface {
	// Save stores zipped bytes and returns an archive ID.
	Save(project string, r io.Reader) (id string, err error)

	// Open retrieves an archive by ID. Archives stay available until
	// Cleanup removes them.
	Open(id string) (*Archive, error)

	// Cleanup removes archives older than maxAge.
	Cleanup(maxAge time.Duration) error
}

// Build writes a zip archive of the directory tree rooted at dir. Entries
// are prefixed with the directory's base name so extraction recreates the
// project folder.
func Build(w io.Writer, dir string) error {
	zw := zip.NewWriter(w)
	base := filepath.Base(dir)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		hdr, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		hdr.Name = base + "/" + filepath.ToSlash(rel)
		hdr.Method = zip.Deflate

		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		_, err = io.Copy(fw, f)
		f.Close()
		return err
	})
	if err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}
