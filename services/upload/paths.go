package upload

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Field names a multipart form field carrying an upload. Each field has
// its own storage subtree and validation rules.
type Field string

const (
	FieldFile  Field = "file"
	FieldCover Field = "cover_image"
)

const (
	coversSubtree = "covers"
	filesSubtree  = "files"
	thumbsSubtree = "thumbnails"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Slug derives the filesystem name for a category: lowercased, runs of
// whitespace collapsed to single hyphens. Applying it twice is a no-op.
// Two category names that collapse to the same slug share a directory.
func Slug(name string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(name), "-")
}

// FieldDir resolves the destination directory for a given field within
// a category: <root>/files/<slug> for primary files, <root>/covers/<slug>
// for cover images.
func (s *Store) FieldDir(field Field, slug string) string {
	subtree := filesSubtree
	if field == FieldCover {
		subtree = coversSubtree
	}
	return filepath.Join(s.root, subtree, slug)
}

// ThumbDir resolves the thumbnail directory nested under a category's
// covers directory.
func (s *Store) ThumbDir(slug string) string {
	return filepath.Join(s.root, coversSubtree, slug, thumbsSubtree)
}

// EnsureDir creates dir with all missing parents. Already existing
// directories are treated as success, so concurrent callers can race on
// a brand-new category directory safely.
func (s *Store) EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory %v", dir)
	}
	return nil
}

// Bootstrap eagerly creates the storage root, the two top-level
// subtrees and the per-category directories for every known slug.
// Categories added later get their directories lazily on first upload.
func (s *Store) Bootstrap(slugs []string) error {
	dirs := []string{
		filepath.Join(s.root, coversSubtree),
		filepath.Join(s.root, filesSubtree),
	}
	for _, slug := range slugs {
		dirs = append(dirs,
			filepath.Join(s.root, coversSubtree, slug),
			filepath.Join(s.root, filesSubtree, slug),
		)
	}
	for _, dir := range dirs {
		if err := s.EnsureDir(dir); err != nil {
			return err
		}
	}
	return nil
}

// RelPath converts an absolute destination into the root-relative,
// forward-slash form persisted in the database.
func (s *Store) RelPath(full string) (string, error) {
	rel, err := filepath.Rel(s.root, full)
	if err != nil {
		return "", errors.Wrapf(err, "failed to relativize path %v", full)
	}
	return filepath.ToSlash(rel), nil
}
