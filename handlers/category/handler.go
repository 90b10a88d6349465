package category

import (
	"github.com/gin-gonic/gin"
	cs "github.com/webtor-io/common-services"
)

type Handler struct {
	pg *cs.PG
}

func RegisterHandler(r *gin.Engine, pg *cs.PG) {
	h := &Handler{
		pg: pg,
	}
	r.GET("/categories", h.list)
	r.POST("/categories", h.create)
	r.PUT("/categories/:id", h.update)
	r.DELETE("/categories/:id", h.delete)
}
