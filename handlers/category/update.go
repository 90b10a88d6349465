package category

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sharehub-io/web-api/models"
)

func (s *Handler) update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid category id"})
		return
	}
	var args CreateArgs
	if err = c.ShouldBindJSON(&args); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	if err = args.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	db := s.pg.Get()
	if db == nil {
		log.Error("no db")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database is not available"})
		return
	}
	category, err := models.UpdateCategory(c.Request.Context(), db, id, args.Name, args.Description)
	if err != nil {
		log.WithError(err).Error("failed to update category")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update category"})
		return
	}
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}
