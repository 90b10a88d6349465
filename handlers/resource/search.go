package resource

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sharehub-io/web-api/models"
)

func (s *Handler) search(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		log.Error("no db")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database is not available"})
		return
	}
	list, err := models.SearchResources(c.Request.Context(), db, c.Query("q"))
	if err != nil {
		log.WithError(err).Error("failed to search resources")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to search resources"})
		return
	}
	c.JSON(http.StatusOK, list)
}
