package category

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sharehub-io/web-api/models"
)

// delete removes the row only. Resources referencing the category and
// files stored under its slug stay behind untouched.
func (s *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid category id"})
		return
	}
	db := s.pg.Get()
	if db == nil {
		log.Error("no db")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database is not available"})
		return
	}
	if err = models.DeleteCategory(c.Request.Context(), db, id); err != nil {
		log.WithError(err).Error("failed to delete category")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
