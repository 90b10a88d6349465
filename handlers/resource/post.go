package resource

import (
	"mime/multipart"
	"net/http"
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sharehub-io/web-api/models"
	"github.com/sharehub-io/web-api/services/upload"
)

// FormArgs carries a bound multipart submission: required metadata plus
// at most one primary file and one cover image.
type FormArgs struct {
	Title       string
	Description string
	CategoryID  int64
	File        *multipart.FileHeader
	CoverImage  *multipart.FileHeader
}

func (s *FormArgs) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Title, validation.Required),
	)
}

func (s *Handler) bindFormArgs(c *gin.Context) (*FormArgs, error) {
	categoryID, err := strconv.ParseInt(c.PostForm("category_id"), 10, 64)
	if err != nil {
		return nil, errors.New("Invalid category_id")
	}
	args := &FormArgs{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		CategoryID:  categoryID,
	}
	if args.File, err = formFile(c, upload.FieldFile); err != nil {
		return nil, err
	}
	if args.CoverImage, err = formFile(c, upload.FieldCover); err != nil {
		return nil, err
	}
	if err = args.Validate(); err != nil {
		return nil, err
	}
	return args, nil
}

// formFile reads an optional file part. An absent field is fine, both
// upload fields are optional; anything else is a malformed form part.
func formFile(c *gin.Context, field upload.Field) (*multipart.FileHeader, error) {
	fh, err := c.FormFile(string(field))
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read %v part", field)
	}
	return fh, nil
}

type savedUploads struct {
	file      *upload.SavedFile
	cover     *upload.SavedFile
	thumbnail string
}

// saveUploads runs the intake pipeline for whichever file fields are
// present: primary file first, then cover image, then the derived
// thumbnail. A validation failure aborts the request; files already
// written for earlier fields stay on disk. Thumbnail failures only
// degrade the result.
func (s *Handler) saveUploads(args *FormArgs, category *models.Category) (*savedUploads, error) {
	var u savedUploads
	if args.File != nil {
		saved, err := s.store.Save(args.File, upload.FieldFile, category.Name)
		if err != nil {
			return nil, err
		}
		u.file = saved
	}
	if args.CoverImage != nil {
		saved, err := s.store.Save(args.CoverImage, upload.FieldCover, category.Name)
		if err != nil {
			return nil, err
		}
		u.cover = saved
		thumbnail, err := s.store.MakeThumbnail(saved, category.Name)
		if err != nil {
			log.WithError(err).Warn("failed to generate thumbnail")
		} else {
			u.thumbnail = thumbnail
		}
	}
	return &u, nil
}

func (s *Handler) abortUploadError(c *gin.Context, err error) {
	var ve *upload.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"message": ve.Error()})
		return
	}
	log.WithError(err).Error("failed to store upload")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to store upload"})
}

func (s *Handler) post(c *gin.Context) {
	args, err := s.bindFormArgs(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	db := s.pg.Get()
	if db == nil {
		log.Error("no db")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database is not available"})
		return
	}
	ctx := c.Request.Context()
	category, err := models.GetCategoryByID(ctx, db, args.CategoryID)
	if err != nil {
		log.WithError(err).Error("failed to fetch category")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch category"})
		return
	}
	if category == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Category not found"})
		return
	}
	u, err := s.saveUploads(args, category)
	if err != nil {
		s.abortUploadError(c, err)
		return
	}
	resource := &models.Resource{
		Title:       args.Title,
		Description: args.Description,
		CategoryID:  args.CategoryID,
	}
	if u.file != nil {
		resource.FilePath = &u.file.RelPath
	}
	if u.cover != nil {
		resource.CoverImage = &u.cover.RelPath
	}
	if u.thumbnail != "" {
		resource.Thumbnail = &u.thumbnail
	}
	if err = models.CreateResource(ctx, db, resource); err != nil {
		log.WithError(err).Error("failed to create resource")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create resource"})
		return
	}
	created, err := models.GetResourceByID(ctx, db, resource.ID)
	if err != nil {
		log.WithError(err).Error("failed to fetch created resource")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch created resource"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "Resource created successfully",
		"resource": created,
	})
}
