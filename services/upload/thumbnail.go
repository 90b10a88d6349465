package upload

import (
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

const (
	ThumbWidth  = 357
	ThumbHeight = 214
)

// MakeThumbnail derives the fixed-size list-view image from a stored
// cover: scaled to fill the 357×214 box, overflow cropped around the
// center. The thumbnail keeps the cover's generated name and lands in
// the thumbnails subdirectory next to it, so the pair differs only by
// directory. Returns the root-relative path of the thumbnail.
func (s *Store) MakeThumbnail(cover *SavedFile, categoryName string) (string, error) {
	slug := Slug(categoryName)
	dir := s.ThumbDir(slug)
	if err := s.EnsureDir(dir); err != nil {
		return "", err
	}

	src, err := imaging.Open(cover.FullPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to decode cover %v", cover.RelPath)
	}

	thumb := imaging.Fill(src, ThumbWidth, ThumbHeight, imaging.Center, imaging.Lanczos)

	out := filepath.Join(dir, cover.Name)
	if err = imaging.Save(thumb, out); err != nil {
		return "", errors.Wrapf(err, "failed to save thumbnail %v", out)
	}

	return s.RelPath(out)
}
