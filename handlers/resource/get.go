package resource

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sharehub-io/web-api/models"
)

func (s *Handler) get(c *gin.Context) {
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
	resource, err := models.GetResourceByID(c.Request.Context(), db, id)
	if err != nil {
		log.WithError(err).Error("failed to fetch resource")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch resource"})
		return
	}
	if resource == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Resource not found"})
		return
	}
	c.JSON(http.StatusOK, resource)
}
