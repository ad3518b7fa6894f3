package upload

import (
	"errors"
	"io"
	"time"
)

// ErrNotFound is returned when a staged file does not exist.
var ErrNotFound = errors.New("upload: file not found")

// ErrExpired is returned when a staged file has outlived the store's TTL.
var ErrExpired = errors.New("upload: file expired")

// ErrTooLarge is returned when a file exceeds the store's size limit.
var ErrTooLarge = errors.New("upload: file too large")

// Store stages uploaded files between form submission and whatever
// consumes them. A FileField saves into a Store while cleaning; the
// application claims the file once the form as a whole validates.
type Store interface {
	// Save stages the file content and returns its ID. The declared
	// size is advisory; implementations enforce their own limit on the
	// actual bytes read.
	Save(filename string, contentType string, size int64, r io.Reader) (id string, err error)

	// Claim retrieves a staged file and removes it from the store.
	Claim(id string) (*File, error)

	// Cleanup removes staged files older than maxAge and reports how
	// many were removed. Call it periodically; claimed files never
	// need it.
	Cleanup(maxAge time.Duration) (removed int, err error)
}

// File is the record a cleaned file field carries: metadata always,
// and content access when a Store holds the bytes.
type File struct {
	// ID identifies the staged content within its Store. Empty when
	// the field had no store and the record is metadata only.
	ID string

	// Filename is the client's original file name.
	Filename string

	// ContentType is the MIME type declared for the part.
	ContentType string

	// Size is the content length in bytes.
	Size int64

	// Path is the local path of the staged content, for disk stores.
	Path string

	// URL is a remote access URL, for object-storage stores.
	URL string

	// Reader streams the content of a claimed file. Nil until Claim.
	Reader io.ReadCloser
}

// Close releases the content reader, if any.
func (f *File) Close() error {
	if f.Reader != nil {
		return f.Reader.Close()
	}
	return nil
}
