package category

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/sharehub-io/web-api/models"
)

type CreateArgs struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *CreateArgs) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Name, validation.Required),
	)
}

func (s *Handler) create(c *gin.Context) {
	var args CreateArgs
	if err := c.ShouldBindJSON(&args); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	if err := args.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	db := s.pg.Get()
	if db == nil {
		log.Error("no db")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database is not available"})
		return
	}
	category, err := models.CreateCategory(c.Request.Context(), db, args.Name, args.Description)
	if err != nil {
		log.WithError(err).Error("failed to create category")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, category)
}
