package resource

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sharehub-io/web-api/models"
)

// applyUploads moves the path pointers for whichever files arrived in
// this request and reports the path columns the update statement should
// touch. Omitted fields stay out of the column list, so prior paths
// survive; replaced files stay on disk at their old location.
func applyUploads(resource *models.Resource, u *savedUploads) []string {
	var columns []string
	if u.file != nil {
		resource.FilePath = &u.file.RelPath
		columns = append(columns, "file_path")
	}
	if u.cover != nil {
		resource.CoverImage = &u.cover.RelPath
		columns = append(columns, "cover_image")
		if u.thumbnail != "" {
			resource.Thumbnail = &u.thumbnail
			columns = append(columns, "thumbnail")
		}
	}
	return columns
}

func (s *Handler) put(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid resource id"})
		return
	}
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
	existing, err := models.GetResourceByID(ctx, db, id)
	if err != nil {
		log.WithError(err).Error("failed to fetch resource")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch resource"})
		return
	}
	if existing == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Resource with id %v not found", id)})
		return
	}
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
		ID:          id,
		Title:       args.Title,
		Description: args.Description,
		CategoryID:  args.CategoryID,
	}
	pathColumns := applyUploads(resource, u)
	if err = models.UpdateResource(ctx, db, resource, pathColumns...); err != nil {
		log.WithError(err).Error("failed to update resource")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update resource"})
		return
	}
	updated, err := models.GetResourceByID(ctx, db, id)
	if err != nil {
		log.WithError(err).Error("failed to fetch updated resource")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch updated resource"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Resource updated successfully",
		"resource": updated,
	})
}
