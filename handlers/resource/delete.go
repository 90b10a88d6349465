package resource

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sharehub-io/web-api/models"
)

// delete drops the row only. Stored files are never garbage-collected,
// the filesystem is treated as an append-mostly blob store.
func (s *Handler) delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid resource id"})
		return
	}
	db := s.pg.Get()
	if db == nil {
		log.Error("no db")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database is not available"})
		return
	}
	if err = models.DeleteResource(c.Request.Context(), db, id); err != nil {
		log.WithError(err).Error("failed to delete resource")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to delete resource"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Resource deleted successfully"})
}
