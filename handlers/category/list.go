package category

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sharehub-io/web-api/models"
)

func (s *Handler) list(c *gin.Context) {
	db := s.pg.Get()
	if db == nil {
		log.Error("no db")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database is not available"})
		return
	}
	list, err := models.GetCategoryList(c.Request.Context(), db)
	if err != nil {
		log.WithError(err).Error("failed to fetch categories")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to fetch categories"})
		return
	}
	c.JSON(http.StatusOK, list)
}
