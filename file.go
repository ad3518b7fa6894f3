package fieldset

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/fieldset-dev/fieldset/pkg/upload"
)

// UploadCleaner is the side interface the binder probes for when a
// multipart file part arrives under a field's name. Fields that do not
// implement it only ever see string values.
type UploadCleaner interface {
	CleanUpload(fh *multipart.FileHeader) (any, error)
}

// FileOptions configures a FileField. MaxSize is in bytes, 0 meaning
// unlimited. AllowedTypes are exact MIME types, or prefixes ending in
// "/*" such as "image/*"; empty means any type. With a nil Store the
// cleaned *upload.File is a metadata record and the part's content is
// not retained.
type FileOptions struct {
	Optional     bool
	MaxSize      int64
	AllowedTypes []string
	Store        upload.Store
	Validators   []Validator
}

// FileField cleans a multipart file part to an *upload.File.
type FileField struct {
	baseField
	maxSize int64
	allowed []string
	store   upload.Store
}

// NewFile returns a file-upload field. A nil opts means defaults.
func NewFile(name string, opts *FileOptions) *FileField {
	if opts == nil {
		opts = &FileOptions{}
	}
	return &FileField{
		baseField: baseField{name: name, optional: opts.Optional, validators: opts.Validators},
		maxSize:   opts.MaxSize,
		allowed:   opts.AllowedTypes,
		store:     opts.Store,
	}
}

// Clean handles the no-file-arrived case. File content never travels
// as a string, so a non-empty raw value is ignored.
func (f *FileField) Clean(raw string) (any, error) {
	if f.Required() {
		return nil, f.requiredError()
	}
	return nil, nil
}

// CleanUpload validates the part's declared size and content type,
// saves it into the configured store, and returns the *upload.File.
func (f *FileField) CleanUpload(fh *multipart.FileHeader) (any, error) {
	if f.maxSize > 0 && fh.Size > f.maxSize {
		return nil, ValidationError{Field: f.name, Message: fmt.Sprintf("File exceeds the maximum size of %d bytes.", f.maxSize)}
	}
	ctype := fh.Header.Get("Content-Type")
	if !f.typeAllowed(ctype) {
		return nil, ValidationError{Field: f.name, Message: fmt.Sprintf("File type %q is not allowed.", ctype)}
	}

	if f.store == nil {
		return &upload.File{
			Filename:    fh.Filename,
			ContentType: ctype,
			Size:        fh.Size,
		}, nil
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("opening upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	id, err := f.store.Save(fh.Filename, ctype, fh.Size, src)
	if err != nil {
		// The store enforces its own limit; the declared size can lie.
		if errors.Is(err, upload.ErrTooLarge) {
			return nil, ValidationError{Field: f.name, Message: "File is too large."}
		}
		return nil, fmt.Errorf("saving upload %q: %w", fh.Filename, err)
	}

	return &upload.File{
		ID:          id,
		Filename:    fh.Filename,
		ContentType: ctype,
		Size:        fh.Size,
	}, nil
}

func (f *FileField) typeAllowed(ctype string) bool {
	if len(f.allowed) == 0 {
		return true
	}
	for _, a := range f.allowed {
		if a == ctype {
			return true
		}
		if strings.HasSuffix(a, "/*") && strings.HasPrefix(ctype, a[:len(a)-1]) {
			return true
		}
	}
	return false
}
