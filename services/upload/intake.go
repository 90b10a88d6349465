package upload

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

var allowedFileExt = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
	".zip":  {},
	".rar":  {},
}

// ValidationError marks a rejected upload so handlers can answer 400
// instead of 500.
type ValidationError struct {
	msg string
}

func (s *ValidationError) Error() string {
	return s.msg
}

func validationErrorf(format string, args ...interface{}) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// Validate checks an upload against its field role: cover images must
// declare an image/* MIME type, primary files must carry an accepted
// document or archive extension.
func Validate(fh *multipart.FileHeader, field Field) error {
	switch field {
	case FieldCover:
		ct := fh.Header.Get("Content-Type")
		if !strings.HasPrefix(ct, "image/") {
			return validationErrorf("only image uploads are allowed for cover_image, got %v", ct)
		}
	case FieldFile:
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		if _, ok := allowedFileExt[ext]; !ok {
			return validationErrorf("unsupported file type %v", ext)
		}
	}
	return nil
}

// GenerateName builds a collision-resistant stored name: upload time in
// unix milliseconds plus a random component, keeping the original
// extension.
func GenerateName(original string) string {
	return fmt.Sprintf("%d-%v%v", time.Now().UnixMilli(), uuid.NewV4(), filepath.Ext(original))
}

// SavedFile describes where an accepted upload landed.
type SavedFile struct {
	// Name is the generated file name, shared with the derived thumbnail.
	Name string
	// FullPath is the absolute on-disk location.
	FullPath string
	// RelPath is the root-relative forward-slash path stored in the database.
	RelPath string
}

// Save validates the upload for its field, resolves the category
// destination, and streams the content to disk under a generated name.
// The write goes through a temp file and a rename so a failed copy
// leaves no partial file behind.
func (s *Store) Save(fh *multipart.FileHeader, field Field, categoryName string) (*SavedFile, error) {
	if err := Validate(fh, field); err != nil {
		return nil, err
	}
	slug := Slug(categoryName)
	dir := s.FieldDir(field, slug)
	if err := s.EnsureDir(dir); err != nil {
		return nil, err
	}
	if field == FieldCover {
		if err := s.EnsureDir(s.ThumbDir(slug)); err != nil {
			return nil, err
		}
	}

	name := GenerateName(fh.Filename)
	full := filepath.Join(dir, name)

	if err := s.write(fh, full); err != nil {
		return nil, err
	}

	rel, err := s.RelPath(full)
	if err != nil {
		return nil, err
	}
	return &SavedFile{
		Name:     name,
		FullPath: full,
		RelPath:  rel,
	}, nil
}

func (s *Store) write(fh *multipart.FileHeader, full string) error {
	src, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer func(src multipart.File) {
		_ = src.Close()
	}(src)

	tmp := full + ".tmp"
	dst, err := os.Create(tmp)
	if err != nil {
		return errors.Wrapf(err, "failed to create %v", tmp)
	}
	if _, err = io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "failed to write %v", tmp)
	}
	if err = dst.Close(); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "failed to close %v", tmp)
	}
	if err = os.Rename(tmp, full); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "failed to rename %v", tmp)
	}
	return nil
}
